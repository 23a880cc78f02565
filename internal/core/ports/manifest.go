package ports

import "go.trai.ch/modfind/internal/core/domain"

// ManifestDecoder parses the raw contents of a package manifest.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks
type ManifestDecoder interface {
	// Decode parses data. The returned error message describes the syntax
	// problem, including its position when known.
	Decode(data []byte) (domain.Manifest, error)
}
