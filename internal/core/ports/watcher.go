package ports

import (
	"context"
	"iter"
)

// Watcher reports changes below a set of directories.
//
//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Start begins watching the given root directories recursively.
	// It returns an error if the watcher fails to start.
	Start(ctx context.Context, roots []string) error

	// Stop stops the watcher and releases all resources.
	Stop() error

	// Changes returns an iterator of debounced batches of changed paths.
	// The iterator ends once the watcher is stopped or its context is done.
	Changes() iter.Seq[[]string]
}

// WatcherFactory creates a Watcher that has not been started yet.
type WatcherFactory func() (Watcher, error)
