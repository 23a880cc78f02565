// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/modfind/internal/adapters/config"
	_ "go.trai.ch/modfind/internal/adapters/fs"
	_ "go.trai.ch/modfind/internal/adapters/handlers"
	_ "go.trai.ch/modfind/internal/adapters/logger"
	_ "go.trai.ch/modfind/internal/adapters/manifest"
	_ "go.trai.ch/modfind/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/modfind/internal/app"
	_ "go.trai.ch/modfind/internal/engine/resolver"
)
