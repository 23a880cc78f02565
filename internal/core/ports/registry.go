package ports

// ExtensionRegistry exposes the registered content-type handlers.
//
//go:generate go run go.uber.org/mock/mockgen -source=registry.go -destination=mocks/mock_registry.go -package=mocks
type ExtensionRegistry interface {
	// Extensions returns a snapshot of the registered extensions in precedence order.
	Extensions() []string
}
