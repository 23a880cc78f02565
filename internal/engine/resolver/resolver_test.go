package resolver_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/modfind/internal/adapters/fs"
	"go.trai.ch/modfind/internal/adapters/handlers"
	"go.trai.ch/modfind/internal/adapters/logger"
	"go.trai.ch/modfind/internal/adapters/manifest"
	"go.trai.ch/modfind/internal/core/domain"
	"go.trai.ch/modfind/internal/core/ports"
	"go.trai.ch/modfind/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// countingProbe records how often the filesystem is touched.
type countingProbe struct {
	ports.FileProbe
	classified int
	realpaths  int
}

func (p *countingProbe) Classify(path string) domain.Kind {
	p.classified++
	return p.FileProbe.Classify(path)
}

func (p *countingProbe) Realpath(path string) (string, error) {
	p.realpaths++
	return p.FileProbe.Realpath(path)
}

func (p *countingProbe) reset() {
	p.classified = 0
	p.realpaths = 0
}

// countingReader records how often manifests are read.
type countingReader struct {
	ports.TextReader
	reads int
}

func (r *countingReader) ReadText(path string) (string, bool) {
	r.reads++
	return r.TextReader.ReadText(path)
}

type fixture struct {
	resolver *resolver.Resolver
	probe    *countingProbe
	reader   *countingReader
}

func newFixture(t *testing.T, opts resolver.Options) fixture {
	t.Helper()
	registry, err := handlers.NewRegistry(domain.DefaultExtensions...)
	require.NoError(t, err)

	probe := &countingProbe{FileProbe: fs.NewProbe()}
	reader := &countingReader{TextReader: fs.NewReader()}
	r := resolver.New(
		probe,
		reader,
		manifest.NewJSONDecoder(),
		registry,
		logger.NewWithLevel(io.Discard, domain.LogLevelDebug),
		resolver.NewCache(),
		opts,
	)
	return fixture{resolver: r, probe: probe, reader: reader}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func realpath(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	require.NoError(t, err)
	abs, err := filepath.Abs(resolved)
	require.NoError(t, err)
	return abs
}

func resolve(t *testing.T, r *resolver.Resolver, specifier string, dirs ...string) string {
	t.Helper()
	filename, err := r.Resolve(domain.Request{Specifier: specifier, Dirs: dirs})
	require.NoError(t, err)
	return filename
}

func TestResolve_ExactFileBeatsExtensions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a"), "exact")
	writeFile(t, filepath.Join(dir, "a.js"), "js")

	f := newFixture(t, resolver.Options{})
	assert.Equal(t, realpath(t, filepath.Join(dir, "a")), resolve(t, f.resolver, "a", dir))
}

func TestResolve_ExtensionPrecedence(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.js"), "js")
	writeFile(t, filepath.Join(dir, "a.json"), "{}")

	t.Run("Default Order", func(t *testing.T) {
		f := newFixture(t, resolver.Options{})
		assert.Equal(t, realpath(t, filepath.Join(dir, "a.js")), resolve(t, f.resolver, "./a", dir))
	})

	t.Run("Explicit Order", func(t *testing.T) {
		f := newFixture(t, resolver.Options{})
		filename, err := f.resolver.Resolve(domain.Request{
			Specifier:  "./a",
			Dirs:       []string{dir},
			Extensions: []string{".json", ".js"},
		})
		require.NoError(t, err)
		assert.Equal(t, realpath(t, filepath.Join(dir, "a.json")), filename)
	})

	t.Run("Explicit Empty List", func(t *testing.T) {
		f := newFixture(t, resolver.Options{})
		filename, err := f.resolver.Resolve(domain.Request{
			Specifier:  "./a",
			Dirs:       []string{dir},
			Extensions: []string{},
		})
		require.NoError(t, err)
		assert.Empty(t, filename)
	})
}

func TestResolve_FileBeforeDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "pkg.js"), "file")
	writeFile(t, filepath.Join(dir, "pkg", "index.js"), "dir")

	f := newFixture(t, resolver.Options{})
	assert.Equal(t, realpath(t, filepath.Join(dir, "pkg.js")), resolve(t, f.resolver, "pkg", dir))
	assert.Equal(t, realpath(t, filepath.Join(dir, "pkg", "index.js")), resolve(t, f.resolver, "pkg/", dir))
}

func TestResolve_ManifestMainBeatsIndex(t *testing.T) {
	dir := t.TempDir()
	pkg := filepath.Join(dir, "pkg")
	writeFile(t, filepath.Join(pkg, domain.ManifestFile), `{"name": "pkg", "main": "lib/entry.js"}`)
	writeFile(t, filepath.Join(pkg, "lib", "entry.js"), "entry")
	writeFile(t, filepath.Join(pkg, "index.js"), "index")

	f := newFixture(t, resolver.Options{})
	assert.Equal(t, realpath(t, filepath.Join(pkg, "lib", "entry.js")), resolve(t, f.resolver, "pkg", dir))
}

func TestResolve_ManifestMainVariants(t *testing.T) {
	tests := []struct {
		name     string
		main     string
		files    []string
		expected string
	}{
		{"Without Extension", `"lib/entry"`, []string{"lib/entry.js"}, "lib/entry.js"},
		{"Directory With Index", `"lib"`, []string{"lib/index.json"}, "lib/index.json"},
		{"Dot Slash Prefix", `"./main.js"`, []string{"main.js"}, "main.js"},
		{"Missing Target Falls Back To Index", `"nope.js"`, []string{"index.js"}, "index.js"},
		{"Non String Main", `42`, []string{"index.js"}, "index.js"},
		{"Empty Main", `""`, []string{"index.node"}, "index.node"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			pkg := filepath.Join(dir, "pkg")
			writeFile(t, filepath.Join(pkg, domain.ManifestFile), `{"main": `+tt.main+`}`)
			for _, file := range tt.files {
				writeFile(t, filepath.Join(pkg, filepath.FromSlash(file)), "x")
			}

			f := newFixture(t, resolver.Options{})
			expected := realpath(t, filepath.Join(pkg, filepath.FromSlash(tt.expected)))
			assert.Equal(t, expected, resolve(t, f.resolver, "./pkg", dir))
		})
	}
}

func TestResolve_IndexWithoutManifest(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "pkg", "index.js"), "index")

	f := newFixture(t, resolver.Options{})
	assert.Equal(t, realpath(t, filepath.Join(dir, "pkg", "index.js")), resolve(t, f.resolver, "pkg", dir))
}

func TestResolve_ManifestWithoutMainMarker(t *testing.T) {
	dir := t.TempDir()
	// Not valid JSON, but without a "main" marker it is never decoded.
	writeFile(t, filepath.Join(dir, "pkg", domain.ManifestFile), `{name: broken`)
	writeFile(t, filepath.Join(dir, "pkg", "index.js"), "index")

	f := newFixture(t, resolver.Options{})
	assert.Equal(t, realpath(t, filepath.Join(dir, "pkg", "index.js")), resolve(t, f.resolver, "pkg", dir))
}

func TestResolve_TrailingSlashSkipsFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "pkg"), "a file, not a directory")
	writeFile(t, filepath.Join(dir, "pkg.js"), "file")

	f := newFixture(t, resolver.Options{})
	assert.Empty(t, resolve(t, f.resolver, "pkg/", dir))
	assert.Equal(t, realpath(t, filepath.Join(dir, "pkg")), resolve(t, f.resolver, "pkg", dir))
}

func TestResolve_TrailingDotSegments(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "index.js"), "root index")
	writeFile(t, filepath.Join(dir, "sub", "x.js"), "x")

	f := newFixture(t, resolver.Options{})
	sub := filepath.Join(dir, "sub")
	assert.Equal(t, realpath(t, filepath.Join(dir, "index.js")), resolve(t, f.resolver, "./", dir))
	assert.Equal(t, realpath(t, filepath.Join(dir, "index.js")), resolve(t, f.resolver, "..", sub))
	assert.Equal(t, realpath(t, filepath.Join(dir, "index.js")), resolve(t, f.resolver, "../", sub))
}

func TestResolve_AbsoluteSpecifierIgnoresDirs(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "abs.js")
	writeFile(t, target, "abs")

	f := newFixture(t, resolver.Options{})

	filename, err := f.resolver.Resolve(domain.Request{Specifier: filepath.Join(dir, "abs")})
	require.NoError(t, err)
	assert.Equal(t, realpath(t, target), filename)

	filename, err = f.resolver.Resolve(domain.Request{
		Specifier: target,
		Dirs:      []string{filepath.Join(dir, "does-not-exist")},
	})
	require.NoError(t, err)
	assert.Equal(t, realpath(t, target), filename)
}

func TestResolve_NoCandidateDirs(t *testing.T) {
	f := newFixture(t, resolver.Options{})

	filename, err := f.resolver.Resolve(domain.Request{Specifier: "./a"})
	require.NoError(t, err)
	assert.Empty(t, filename)
	assert.Zero(t, f.probe.classified)
	assert.Zero(t, f.resolver.Stats().Resolutions)
}

func TestResolve_DirectoryOrder(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	writeFile(t, filepath.Join(second, "a.js"), "second")
	missing := filepath.Join(first, "missing")
	notDir := filepath.Join(first, "file.txt")
	writeFile(t, notDir, "x")

	f := newFixture(t, resolver.Options{})
	assert.Equal(t, realpath(t, filepath.Join(second, "a.js")), resolve(t, f.resolver, "a", missing, notDir, first, second))

	writeFile(t, filepath.Join(first, "b.js"), "first")
	writeFile(t, filepath.Join(second, "b.js"), "second")
	assert.Equal(t, realpath(t, filepath.Join(first, "b.js")), resolve(t, f.resolver, "b", first, second))
}

func TestResolve_MalformedManifest(t *testing.T) {
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "pkg", domain.ManifestFile)
	writeFile(t, manifestPath, `{"main": "index.js",`)
	writeFile(t, filepath.Join(dir, "pkg", "index.js"), "index")

	f := newFixture(t, resolver.Options{})
	_, err := f.resolver.Resolve(domain.Request{Specifier: "pkg", Dirs: []string{dir}})
	require.Error(t, err)

	assert.True(t, errors.Is(err, domain.ErrInvalidManifest), "expected ErrInvalidManifest, got %v", err)
	assert.Contains(t, err.Error(), "error parsing "+manifestPath)

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr), "expected *zerr.Error, got %T", err)
	assert.Equal(t, manifestPath, zErr.Metadata()["path"])

	// Parse failures are not cached; the manifest is read again.
	reads := f.reader.reads
	_, err = f.resolver.Resolve(domain.Request{Specifier: "pkg", Dirs: []string{dir}})
	require.Error(t, err)
	assert.Greater(t, f.reader.reads, reads)
}

func TestResolve_Symlinks(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "real", "target.js")
	writeFile(t, target, "target")
	link := filepath.Join(dir, "link.js")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	tests := []struct {
		name     string
		preserve bool
		isEntry  bool
		expected string
	}{
		{"Preserve Non Entry", true, false, link},
		{"Preserve Entry", true, true, realpath(t, target)},
		{"Resolve Non Entry", false, false, realpath(t, target)},
		{"Resolve Entry", false, true, realpath(t, target)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, resolver.Options{PreserveSymlinks: tt.preserve})
			filename, err := f.resolver.Resolve(domain.Request{
				Specifier:    "./link",
				Dirs:         []string{dir},
				IsEntryPoint: tt.isEntry,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, filename)
		})
	}
}

func TestResolve_BrokenSymlinkIsNotFound(t *testing.T) {
	dir := t.TempDir()
	link := filepath.Join(dir, "dangling.js")
	if err := os.Symlink(filepath.Join(dir, "gone.js"), link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	f := newFixture(t, resolver.Options{})
	assert.Empty(t, resolve(t, f.resolver, "./dangling", dir))
}

func TestResolve_Idempotent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "pkg", domain.ManifestFile), `{"main": "main.js"}`)
	writeFile(t, filepath.Join(dir, "pkg", "main.js"), "main")

	f := newFixture(t, resolver.Options{})
	first := resolve(t, f.resolver, "pkg", dir)
	require.NotEmpty(t, first)
	require.NotZero(t, f.probe.classified)

	f.probe.reset()
	second := resolve(t, f.resolver, "pkg", dir)
	assert.Equal(t, first, second)
	assert.Zero(t, f.probe.classified)
	assert.Zero(t, f.probe.realpaths)

	stats := f.resolver.Stats()
	assert.Equal(t, 1, stats.Resolutions)
	assert.Equal(t, 1, stats.Manifests)
	assert.Equal(t, uint64(1), stats.Hits)
	assert.Equal(t, uint64(1), stats.Misses)
}

func TestResolve_NotFoundIsCached(t *testing.T) {
	dir := t.TempDir()

	f := newFixture(t, resolver.Options{})
	assert.Empty(t, resolve(t, f.resolver, "missing", dir))
	require.NotZero(t, f.probe.classified)

	// Creating the file afterwards does not change the cached outcome.
	writeFile(t, filepath.Join(dir, "missing.js"), "late")

	f.probe.reset()
	assert.Empty(t, resolve(t, f.resolver, "missing", dir))
	assert.Zero(t, f.probe.classified)
}

func TestResolve_ManifestReadOncePerDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "pkg", domain.ManifestFile), `{"version": "1.0.0"}`)
	writeFile(t, filepath.Join(dir, "pkg", "index.js"), "index")

	f := newFixture(t, resolver.Options{})
	expected := realpath(t, filepath.Join(dir, "pkg", "index.js"))
	assert.Equal(t, expected, resolve(t, f.resolver, "pkg", dir))
	assert.Equal(t, expected, resolve(t, f.resolver, "./pkg", dir))
	assert.Equal(t, expected, resolve(t, f.resolver, "pkg/", dir))

	assert.Equal(t, 1, f.reader.reads)
}

func TestResolve_EntryFlagSharesCacheKey(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "real.js")
	writeFile(t, target, "target")
	link := filepath.Join(dir, "link.js")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	f := newFixture(t, resolver.Options{PreserveSymlinks: true})
	nonEntry, err := f.resolver.Resolve(domain.Request{Specifier: "./link", Dirs: []string{dir}})
	require.NoError(t, err)
	entry, err := f.resolver.Resolve(domain.Request{Specifier: "./link", Dirs: []string{dir}, IsEntryPoint: true})
	require.NoError(t, err)

	assert.Equal(t, link, nonEntry)
	assert.Equal(t, nonEntry, entry)
}
