package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
)

// DefaultIgnores are directory names never descended into.
// node_modules is not among them: packages are resolved from there.
var DefaultIgnores = []string{".git", ".jj", ".hg"}

// Walker enumerates directory trees.
type Walker struct {
	ignores []string
}

// NewWalker creates a Walker that skips directories matching any of the
// given glob patterns. A nil list means DefaultIgnores.
func NewWalker(ignores []string) *Walker {
	if ignores == nil {
		ignores = DefaultIgnores
	}
	return &Walker{ignores: ignores}
}

// WalkDirs yields root and every directory below it, in lexical order.
// Unreadable entries are skipped. A root that is not a directory yields nothing.
func (w *Walker) WalkDirs(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil //nolint:nilerr // unreadable directories are skipped
			}
			if !d.IsDir() {
				return nil
			}
			if path != root && w.Ignored(d.Name()) {
				return filepath.SkipDir
			}
			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

// Ignored reports whether a directory with the given base name is skipped.
func (w *Walker) Ignored(name string) bool {
	for _, ignore := range w.ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			return true
		}
	}
	return false
}
