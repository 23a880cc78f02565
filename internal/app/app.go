// Package app implements the application layer for modfind.
package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"sync"

	"go.trai.ch/modfind/internal/core/domain"
	"go.trai.ch/modfind/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// ResolveOptions configures a batch resolution.
type ResolveOptions struct {
	// Dirs are the candidate base directories. Relative entries are taken
	// relative to the working directory.
	Dirs []string
	// IsMain resolves every specifier as the program's entry point.
	IsMain bool
	// Extensions overrides the configured extension list when non-nil.
	Extensions []string
}

// Result is the outcome for one specifier. Filename is empty when the
// specifier could not be resolved.
type Result struct {
	Specifier string
	Filename  string
}

// App represents the main application logic.
type App struct {
	newResolver ports.ResolverFactory
	newWatcher  ports.WatcherFactory
	logger      ports.Logger

	mu       sync.RWMutex
	resolver ports.PathResolver
}

// New creates a new App instance.
func New(newResolver ports.ResolverFactory, newWatcher ports.WatcherFactory, logger ports.Logger) *App {
	return &App{
		newResolver: newResolver,
		newWatcher:  newWatcher,
		logger:      logger,
		resolver:    newResolver(),
	}
}

// Stats reports the cache counters of the current resolver.
func (a *App) Stats() domain.CacheStats {
	return a.current().Stats()
}

// SetVerbose switches the logger to debug level when verbose is set and the
// logger supports levels. Otherwise the configured level is left alone.
func (a *App) SetVerbose(verbose bool) {
	if !verbose {
		return
	}
	if leveled, ok := a.logger.(interface{ SetLevel(domain.LogLevel) }); ok {
		leveled.SetLevel(domain.LogLevelDebug)
	}
}

func (a *App) current() ports.PathResolver {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.resolver
}

// reset replaces the resolver with one that has an empty cache.
func (a *App) reset() {
	r := a.newResolver()
	a.mu.Lock()
	a.resolver = r
	a.mu.Unlock()
}

// Resolve resolves every specifier concurrently and returns the results in
// argument order. Unresolvable specifiers yield domain.ErrModuleNotFound,
// joined into the returned error alongside the complete result list.
// A broken package manifest aborts the batch.
func (a *App) Resolve(ctx context.Context, specifiers []string, opts ResolveOptions) ([]Result, error) {
	if len(specifiers) == 0 {
		return nil, domain.ErrNoSpecifiers
	}

	dirs, err := absoluteDirs(opts.Dirs)
	if err != nil {
		return nil, err
	}

	r := a.current()
	results := make([]Result, len(specifiers))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, specifier := range specifiers {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			filename, err := r.Resolve(domain.Request{
				Specifier:    specifier,
				Dirs:         dirs,
				IsEntryPoint: opts.IsMain,
				Extensions:   opts.Extensions,
			})
			if err != nil {
				return zerr.With(err, "specifier", specifier)
			}
			results[i] = Result{Specifier: specifier, Filename: filename}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var missing []error
	for _, res := range results {
		if res.Filename == "" {
			notFound := zerr.Wrap(domain.ErrModuleNotFound, "cannot find module "+res.Specifier)
			missing = append(missing, zerr.With(notFound, "specifier", res.Specifier))
			continue
		}
		a.logger.Debug(fmt.Sprintf("resolved %s to %s", res.Specifier, res.Filename))
	}

	return results, errors.Join(missing...)
}

// Watch resolves the specifiers once, then again with a fresh cache every
// time files below the candidate directories change. Each outcome is handed
// to report. Watch returns when ctx is done.
func (a *App) Watch(
	ctx context.Context,
	specifiers []string,
	opts ResolveOptions,
	report func([]Result, error),
) error {
	if len(specifiers) == 0 {
		return domain.ErrNoSpecifiers
	}

	roots, err := watchRoots(specifiers, opts.Dirs)
	if err != nil {
		return err
	}

	w, err := a.newWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = w.Stop() }()

	if err := w.Start(ctx, roots); err != nil {
		return zerr.Wrap(err, "failed to start watching")
	}

	report(a.Resolve(ctx, specifiers, opts))

	for paths := range w.Changes() {
		a.logger.Debug(fmt.Sprintf("%d paths changed, resolving again", len(paths)))
		a.reset()
		report(a.Resolve(ctx, specifiers, opts))
	}

	return nil
}

// absoluteDirs resolves relative candidate directories against the working directory.
// An empty entry is kept as is.
func absoluteDirs(dirs []string) ([]string, error) {
	if dirs == nil {
		return nil, nil
	}
	out := make([]string, len(dirs))
	for i, dir := range dirs {
		if dir == "" || filepath.IsAbs(dir) {
			out[i] = dir
			continue
		}
		abs, err := filepath.Abs(dir)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to resolve directory"), "path", dir)
		}
		out[i] = abs
	}
	return out, nil
}

// watchRoots lists the directories whose changes can affect the specifiers.
func watchRoots(specifiers, dirs []string) ([]string, error) {
	roots, err := absoluteDirs(dirs)
	if err != nil {
		return nil, err
	}
	for _, specifier := range specifiers {
		if filepath.IsAbs(specifier) {
			roots = append(roots, filepath.Dir(specifier))
		}
	}
	seen := make(map[string]struct{}, len(roots))
	unique := roots[:0]
	for _, root := range roots {
		if root == "" {
			continue
		}
		if _, ok := seen[root]; ok {
			continue
		}
		seen[root] = struct{}{}
		unique = append(unique, root)
	}
	return unique, nil
}
