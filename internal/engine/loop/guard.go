package loop

import (
	"sync"

	"go.trai.ch/livetree/internal/core/ports"
)

// Guard releases the terminal surface exactly once, whichever exit path runs first.
type Guard struct {
	surface ports.Surface
	once    sync.Once
	err     error
}

// NewGuard creates a Guard for surface. It may be created before the surface is
// initialized as long as the surface's Restore does nothing in that state.
func NewGuard(surface ports.Surface) *Guard {
	return &Guard{surface: surface}
}

// Release restores the surface. Later calls return the first result.
func (g *Guard) Release() error {
	g.once.Do(func() {
		g.err = g.surface.Restore()
	})
	return g.err
}

// Recover must be deferred directly. On panic it restores the surface
// so the message is readable, then panics again with the same value.
func (g *Guard) Recover() {
	if r := recover(); r != nil {
		_ = g.Release()
		panic(r)
	}
}
