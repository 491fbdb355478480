package ports

import (
	"context"
	"time"

	"go.trai.ch/livetree/internal/core/domain"
)

// Watcher defines the interface for watching a directory tree for changes.
//
//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Watch starts watching root recursively. Changes are batched over the debounce window
	// and delivered on the returned channel, which is closed when watching stops.
	Watch(ctx context.Context, root string, debounce time.Duration) (<-chan domain.WatchEvent, error)
	// SetPanicHandler installs a handler that the watcher defers directly in each of its
	// goroutines, so it may call recover. It must be called before Watch.
	SetPanicHandler(handler func())
	// Close stops the watcher and releases all resources.
	Close() error
}
