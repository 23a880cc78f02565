package ports

import "go.trai.ch/modfind/internal/core/domain"

// PathResolver locates the file a module request refers to.
//
//go:generate mockgen -destination=mocks/resolver_mock.go -package=mocks -source=resolver.go
type PathResolver interface {
	// Resolve returns the absolute filename for the request, or "" if no
	// candidate directory yields a match. Errors are reserved for broken
	// package manifests.
	Resolve(req domain.Request) (string, error)

	// Stats reports the resolver's cache counters.
	Stats() domain.CacheStats
}

// ResolverFactory builds a PathResolver with an empty cache.
type ResolverFactory func() PathResolver
