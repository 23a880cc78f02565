package resolver

import (
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/modfind/internal/core/domain"
)

const shardCount = 16

// Cache memoizes resolution results and package manifest main fields.
// It is unbounded and additive-only. Use NewCache to create one.
type Cache struct {
	resolutions [shardCount]resolutionShard
	manifests   [shardCount]manifestShard

	hits   atomic.Uint64
	misses atomic.Uint64
}

type resolutionShard struct {
	mu      sync.RWMutex
	entries map[domain.ResolutionKey]string
}

type manifestShard struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	c := &Cache{}
	for i := range c.resolutions {
		c.resolutions[i].entries = make(map[domain.ResolutionKey]string)
		c.manifests[i].entries = make(map[string]string)
	}
	return c
}

// Lookup returns the cached filename for key. An empty filename with ok set
// records an earlier failed resolution.
func (c *Cache) Lookup(key domain.ResolutionKey) (filename string, ok bool) {
	shard := &c.resolutions[keyShard(key)]
	shard.mu.RLock()
	filename, ok = shard.entries[key]
	shard.mu.RUnlock()

	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return filename, ok
}

// Store records the outcome of a resolution.
func (c *Cache) Store(key domain.ResolutionKey, filename string) {
	shard := &c.resolutions[keyShard(key)]
	shard.mu.Lock()
	shard.entries[key] = filename
	shard.mu.Unlock()
}

// Manifest returns the cached main field for a package directory.
func (c *Cache) Manifest(dir string) (main string, ok bool) {
	shard := &c.manifests[xxhash.Sum64String(dir)%shardCount]
	shard.mu.RLock()
	defer shard.mu.RUnlock()
	main, ok = shard.entries[dir]
	return main, ok
}

// StoreManifest records the main field of a package directory, "" if it has none.
func (c *Cache) StoreManifest(dir, main string) {
	shard := &c.manifests[xxhash.Sum64String(dir)%shardCount]
	shard.mu.Lock()
	defer shard.mu.Unlock()
	shard.entries[dir] = main
}

// Stats returns the current sizes and hit/miss counters.
func (c *Cache) Stats() domain.CacheStats {
	stats := domain.CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
	}
	for i := range c.resolutions {
		shard := &c.resolutions[i]
		shard.mu.RLock()
		stats.Resolutions += len(shard.entries)
		shard.mu.RUnlock()
	}
	for i := range c.manifests {
		shard := &c.manifests[i]
		shard.mu.RLock()
		stats.Manifests += len(shard.entries)
		shard.mu.RUnlock()
	}
	return stats
}

// keyShard only distributes keys; equality is decided by the map.
// The explicit bit is hashed so default and empty extension lists spread apart.
func keyShard(key domain.ResolutionKey) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(key.Specifier())
	_, _ = d.WriteString(key.Dirs())
	exts, explicit := key.Extensions()
	_, _ = d.WriteString(exts)
	if explicit {
		_, _ = d.Write([]byte{1})
	}
	return d.Sum64() % shardCount
}
