package ports

import (
	"time"

	"go.trai.ch/livetree/internal/core/domain"
)

// Surface defines the interface for the full-screen terminal the tree is drawn on.
//
//go:generate mockgen -source=surface.go -destination=mocks/mock_surface.go -package=mocks
type Surface interface {
	// Init enters raw mode and the alternate screen and hides the cursor.
	Init() error
	// Restore undoes Init. It is safe to call more than once.
	Restore() error
	// Size returns the terminal dimensions, falling back to 80x24.
	Size() (cols, rows int)
	// Draw replaces the screen content with the frame in one write.
	Draw(frame domain.Frame) error
	// Poll waits up to timeout for input. ok is false when nothing arrived.
	Poll(timeout time.Duration) (event domain.InputEvent, ok bool, err error)
	// SetTitle sets the terminal window title.
	SetTitle(title string)
}
