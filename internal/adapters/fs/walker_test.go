package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/modfind/internal/adapters/fs"
)

func TestWalker_WalkDirs(t *testing.T) {
	tmpDir := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "lib", "util"), 0o750))
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "node_modules", "pkg"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "index.js"), nil, 0o600))

	walker := fs.NewWalker(nil)
	dirs := make([]string, 0)
	for dir := range walker.WalkDirs(tmpDir) {
		dirs = append(dirs, dir)
	}

	assert.Equal(t, []string{
		tmpDir,
		filepath.Join(tmpDir, "lib"),
		filepath.Join(tmpDir, "lib", "util"),
		filepath.Join(tmpDir, "node_modules"),
		filepath.Join(tmpDir, "node_modules", "pkg"),
	}, dirs)
}

func TestWalker_WalkDirs_SkipsVersionControl(t *testing.T) {
	tmpDir := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, ".git", "objects"), 0o750))
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, ".jj"), 0o750))
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "src"), 0o750))

	walker := fs.NewWalker(nil)
	dirs := make([]string, 0)
	for dir := range walker.WalkDirs(tmpDir) {
		dirs = append(dirs, dir)
	}

	assert.Equal(t, []string{tmpDir, filepath.Join(tmpDir, "src")}, dirs)
}

func TestWalker_WalkDirs_WithIgnores(t *testing.T) {
	tmpDir := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "build"), 0o750))
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "cache-1"), 0o750))
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, ".git"), 0o750))

	walker := fs.NewWalker([]string{"build", "cache-*"})
	dirs := make([]string, 0)
	for dir := range walker.WalkDirs(tmpDir) {
		dirs = append(dirs, dir)
	}

	// An explicit list replaces the defaults.
	assert.Equal(t, []string{tmpDir, filepath.Join(tmpDir, ".git")}, dirs)
}

func TestWalker_WalkDirs_RootNotDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "index.js")
	require.NoError(t, os.WriteFile(file, nil, 0o600))

	walker := fs.NewWalker(nil)
	for dir := range walker.WalkDirs(file) {
		t.Errorf("unexpected directory %s", dir)
	}
	for dir := range walker.WalkDirs(filepath.Join(tmpDir, "missing")) {
		t.Errorf("unexpected directory %s", dir)
	}
}

func TestWalker_WalkDirs_StopsEarly(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "a"), 0o750))
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "b"), 0o750))

	walker := fs.NewWalker(nil)
	var count int
	for range walker.WalkDirs(tmpDir) {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestWalker_Ignored(t *testing.T) {
	walker := fs.NewWalker(nil)
	assert.True(t, walker.Ignored(".git"))
	assert.True(t, walker.Ignored(".hg"))
	assert.False(t, walker.Ignored("node_modules"))
	assert.False(t, walker.Ignored("src"))
}
