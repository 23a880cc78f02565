// Package fs provides file system adapters for probing paths and reading manifests.
package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/modfind/internal/core/domain"
	"go.trai.ch/modfind/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileProbe = (*Probe)(nil)

// Probe implements the FileProbe interface using os.Stat and filepath.EvalSymlinks.
type Probe struct{}

// NewProbe creates a new Probe.
func NewProbe() *Probe {
	return &Probe{}
}

// Classify reports whether path is absent, a file or a directory.
// Symlinks are followed; permission and I/O errors count as absent.
func (p *Probe) Classify(path string) domain.Kind {
	info, err := os.Stat(path)
	if err != nil {
		return domain.KindAbsent
	}
	if info.IsDir() {
		return domain.KindDirectory
	}
	return domain.KindFile
}

// Realpath returns the absolute path of path with every symlink resolved.
func (p *Probe) Realpath(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve real path"), "path", path)
	}

	abs, err := filepath.Abs(resolved)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to make path absolute"), "path", resolved)
	}
	return abs, nil
}
