// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/tsload/internal/adapters/cas"
	_ "go.trai.ch/tsload/internal/adapters/compiler"
	_ "go.trai.ch/tsload/internal/adapters/config"
	_ "go.trai.ch/tsload/internal/adapters/fs"
	_ "go.trai.ch/tsload/internal/adapters/logger"
	_ "go.trai.ch/tsload/internal/adapters/shell"
	_ "go.trai.ch/tsload/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/tsload/internal/app"
	_ "go.trai.ch/tsload/internal/engine/loader"
)
