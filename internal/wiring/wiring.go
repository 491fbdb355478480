// Package wiring registers all Graft nodes for livetree.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/livetree/internal/adapters/config"
	_ "go.trai.ch/livetree/internal/adapters/fs"
	_ "go.trai.ch/livetree/internal/adapters/logger"
	_ "go.trai.ch/livetree/internal/adapters/tui"
	_ "go.trai.ch/livetree/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/livetree/internal/app"
)
