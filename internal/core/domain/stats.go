package domain

// CacheStats is a snapshot of the resolution cache counters.
type CacheStats struct {
	// Resolutions is the number of cached resolution outcomes, including failures.
	Resolutions int
	// Manifests is the number of package directories whose manifest was read.
	Manifests int
	// Hits counts lookups answered from the cache.
	Hits uint64
	// Misses counts lookups that had to probe the filesystem.
	Misses uint64
}
