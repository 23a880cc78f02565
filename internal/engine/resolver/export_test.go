package resolver

// IsDirectoryOnly exposes isDirectoryOnly.
// This is exported for testing purposes only.
func IsDirectoryOnly(specifier string, backslash bool) bool {
	return isDirectoryOnly(specifier, backslash)
}

// ShardOf returns the shard index a cache key maps to.
// This is exported for testing purposes only.
var ShardOf = keyShard

// ShardCount is the number of cache shards.
const ShardCount = shardCount
