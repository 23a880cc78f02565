package ports

// TextReader reads small text files such as package manifests.
//
//go:generate go run go.uber.org/mock/mockgen -source=reader.go -destination=mocks/mock_reader.go -package=mocks
type TextReader interface {
	// ReadText returns the file contents and true, or "" and false when the file
	// is absent or unreadable.
	ReadText(path string) (string, bool)
}
