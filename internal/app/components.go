package app

import "go.trai.ch/livetree/internal/core/ports"

// Components holds the wired application and the adapters the entry point needs directly.
type Components struct {
	App    *App
	Logger ports.Logger
}
