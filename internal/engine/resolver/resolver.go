// Package resolver locates the file a module specifier refers to.
package resolver

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"go.trai.ch/modfind/internal/core/domain"
	"go.trai.ch/modfind/internal/core/ports"
	"go.trai.ch/zerr"
)

// mainMarker must appear in a manifest before it is worth decoding.
const mainMarker = `"main"`

const indexName = "index"

var _ ports.PathResolver = (*Resolver)(nil)

// Options holds the process-wide settings that influence resolution.
type Options struct {
	// PreserveSymlinks keeps symlinked paths as found for non-entry requests.
	PreserveSymlinks bool

	// BackslashSeparator treats '\' as a path separator in specifiers.
	BackslashSeparator bool
}

// OptionsFromConfig derives resolver options from the loaded configuration
// and the current platform.
func OptionsFromConfig(cfg domain.Config) Options {
	return Options{
		PreserveSymlinks:   cfg.PreserveSymlinks,
		BackslashSeparator: runtime.GOOS == "windows",
	}
}

// Resolver turns module requests into absolute filenames.
type Resolver struct {
	probe    ports.FileProbe
	reader   ports.TextReader
	decoder  ports.ManifestDecoder
	registry ports.ExtensionRegistry
	logger   ports.Logger
	cache    *Cache
	opts     Options
}

// New creates a Resolver. A nil cache gets a fresh one.
func New(
	probe ports.FileProbe,
	reader ports.TextReader,
	decoder ports.ManifestDecoder,
	registry ports.ExtensionRegistry,
	logger ports.Logger,
	cache *Cache,
	opts Options,
) *Resolver {
	if cache == nil {
		cache = NewCache()
	}
	return &Resolver{
		probe:    probe,
		reader:   reader,
		decoder:  decoder,
		registry: registry,
		logger:   logger,
		cache:    cache,
		opts:     opts,
	}
}

// Stats returns the counters of the resolver's cache.
func (r *Resolver) Stats() domain.CacheStats {
	return r.cache.Stats()
}

// Resolve returns the absolute filename for req, or "" when nothing matches.
// The outcome is cached either way, so repeating a request never touches the
// filesystem again. The only error is a package manifest that fails to parse.
func (r *Resolver) Resolve(req domain.Request) (string, error) {
	dirs := req.Dirs
	if filepath.IsAbs(req.Specifier) {
		dirs = []string{""}
	} else if len(dirs) == 0 {
		return "", nil
	}

	key := domain.NewResolutionKey(req.Specifier, dirs, req.Extensions)
	if filename, ok := r.cache.Lookup(key); ok {
		return filename, nil
	}

	call := &resolution{
		Resolver:   r,
		isEntry:    req.IsEntryPoint,
		exts:       req.Extensions,
		extsLoaded: req.HasExplicitExtensions(),
	}
	dirOnly := isDirectoryOnly(req.Specifier, r.opts.BackslashSeparator)

	for _, dir := range dirs {
		filename, err := call.tryDir(dir, req.Specifier, dirOnly)
		if err != nil {
			return "", err
		}
		if filename != "" {
			r.cache.Store(key, filename)
			return filename, nil
		}
	}

	r.cache.Store(key, "")
	return "", nil
}

// resolution carries the per-call state of a single Resolve.
type resolution struct {
	*Resolver

	isEntry    bool
	exts       []string
	extsLoaded bool
}

func (c *resolution) extensions() []string {
	if !c.extsLoaded {
		c.exts = c.registry.Extensions()
		c.extsLoaded = true
	}
	return c.exts
}

func (c *resolution) tryDir(dir, specifier string, dirOnly bool) (string, error) {
	if dir != "" && c.probe.Classify(dir) != domain.KindDirectory {
		return "", nil
	}

	basePath, err := filepath.Abs(filepath.Join(dir, specifier))
	if err != nil {
		c.logger.Warn(fmt.Sprintf("failed to make %s absolute: %v", filepath.Join(dir, specifier), err))
		return "", nil
	}

	kind := c.probe.Classify(basePath)

	var filename string
	if !dirOnly {
		switch kind {
		case domain.KindFile:
			filename = c.finalize(basePath)
		case domain.KindDirectory, domain.KindAbsent:
		}
		if filename == "" {
			filename = c.tryExtensions(basePath)
		}
	}

	switch kind {
	case domain.KindDirectory:
		if filename == "" {
			filename, err = c.tryPackage(basePath)
			if err != nil {
				return "", err
			}
		}
		if filename == "" {
			filename = c.tryExtensions(filepath.Join(basePath, indexName))
		}
	case domain.KindFile, domain.KindAbsent:
	}

	return filename, nil
}

// tryFile returns the finalized path if path is a regular file.
func (c *resolution) tryFile(path string) string {
	switch c.probe.Classify(path) {
	case domain.KindFile:
		return c.finalize(path)
	case domain.KindDirectory, domain.KindAbsent:
	}
	return ""
}

// tryExtensions probes base with each extension appended, in order.
func (c *resolution) tryExtensions(base string) string {
	for _, ext := range c.extensions() {
		if filename := c.tryFile(base + ext); filename != "" {
			return filename
		}
	}
	return ""
}

// tryPackage follows the main field of the manifest in dir.
func (c *resolution) tryPackage(dir string) (string, error) {
	main, err := c.readPackage(dir)
	if err != nil || main == "" {
		return "", err
	}

	target := filepath.Clean(main)
	if !filepath.IsAbs(target) {
		target = filepath.Join(dir, main)
	}

	if filename := c.tryFile(target); filename != "" {
		return filename, nil
	}
	if filename := c.tryExtensions(target); filename != "" {
		return filename, nil
	}
	return c.tryExtensions(filepath.Join(target, indexName)), nil
}

// readPackage returns the main field declared in dir's manifest, "" if there is none.
func (r *Resolver) readPackage(dir string) (string, error) {
	if main, ok := r.cache.Manifest(dir); ok {
		return main, nil
	}

	manifestPath := filepath.Join(dir, domain.ManifestFile)
	text, ok := r.reader.ReadText(manifestPath)
	if !ok || !strings.Contains(text, mainMarker) {
		r.cache.StoreManifest(dir, "")
		return "", nil
	}

	manifest, err := r.decoder.Decode([]byte(text))
	if err != nil {
		msg := fmt.Sprintf("error parsing %s: %s", manifestPath, err.Error())
		return "", zerr.With(zerr.Wrap(domain.ErrInvalidManifest, msg), "path", manifestPath)
	}

	r.cache.StoreManifest(dir, manifest.Main)
	return manifest.Main, nil
}

// finalize applies the symlink policy to an existing file path.
func (c *resolution) finalize(path string) string {
	if c.opts.PreserveSymlinks && !c.isEntry {
		return filepath.Clean(path)
	}

	resolved, err := c.probe.Realpath(path)
	if err != nil {
		c.logger.Warn(fmt.Sprintf("failed to resolve real path of %s: %v", path, err))
		return ""
	}
	return resolved
}
