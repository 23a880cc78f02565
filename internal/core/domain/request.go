package domain

// Request describes a single module path resolution.
type Request struct {
	// Specifier is the requested module, e.g. "./lib/util", "pkg/" or "/abs/file.js".
	Specifier string

	// Dirs are the candidate base directories, searched in order.
	Dirs []string

	// IsEntryPoint marks the program's main module. Entry points are always
	// resolved to their real path regardless of the preserve-symlinks setting.
	IsEntryPoint bool

	// Extensions is the ordered list of suffixes to probe.
	// A nil slice selects the registry default; an empty non-nil slice probes nothing.
	Extensions []string
}

// HasExplicitExtensions reports whether the caller supplied its own extension list.
func (r Request) HasExplicitExtensions() bool {
	return r.Extensions != nil
}
