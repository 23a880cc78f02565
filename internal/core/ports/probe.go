// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/modfind/internal/core/domain"

// FileProbe inspects the filesystem on behalf of the resolver.
//
//go:generate go run go.uber.org/mock/mockgen -source=probe.go -destination=mocks/mock_probe.go -package=mocks
type FileProbe interface {
	// Classify reports whether path is absent, a file or a directory.
	// Any error while inspecting the path is reported as domain.KindAbsent.
	Classify(path string) domain.Kind

	// Realpath returns the canonical absolute path with all symlinks resolved.
	// It fails if the path does not exist.
	Realpath(path string) (string, error)
}
