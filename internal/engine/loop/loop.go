// Package loop implements the event loop that keeps the tree view in sync with the filesystem.
package loop

import (
	"context"
	"time"

	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"go.trai.ch/livetree/internal/core/domain"
	"go.trai.ch/livetree/internal/core/ports"
	"go.trai.ch/livetree/internal/ui/render"
)

const (
	// PollTimeout bounds each input poll so the reader notices cancellation.
	PollTimeout = 100 * time.Millisecond

	lastChangeLayout = "15:04:05"
	highlightStep    = time.Second
)

// Options describes what the loop watches and how it is shown.
type Options struct {
	// Root is the canonical directory being watched.
	Root string
	// DisplayPath is Root as shown in the status bar and messages.
	DisplayPath string
	// Tree configures every snapshot build.
	Tree domain.TreeConfig
	// Highlight is the initial highlight duration.
	Highlight time.Duration
	// Quiet suppresses watcher error warnings.
	Quiet bool
}

// Loop owns the view state and renders it on the main goroutine.
type Loop struct {
	surface  ports.Surface
	builder  ports.TreeBuilder
	logger   ports.Logger
	renderer *render.Renderer
	guard    *Guard
	opts     Options

	tracker    *domain.HighlightTracker
	scroll     domain.ScrollState
	snapshot   *domain.TreeSnapshot
	lastChange string
	watchErr   string
	lastActive int
}

// New creates a Loop. guard is used to restore the terminal if the input reader panics.
func New(
	surface ports.Surface,
	builder ports.TreeBuilder,
	logger ports.Logger,
	renderer *render.Renderer,
	guard *Guard,
	opts Options,
) *Loop {
	return &Loop{
		surface:  surface,
		builder:  builder,
		logger:   logger,
		renderer: renderer,
		guard:    guard,
		opts:     opts,
		tracker:  domain.NewHighlightTracker(domain.ClampHighlight(opts.Highlight)),
	}
}

// Run draws the tree and processes watch events, keys and ticks until the user quits,
// the root is deleted, a channel closes, or ctx is cancelled. Cancellation is noticed on the tick.
// The input reader is always joined before Run returns; its failure is returned.
func (l *Loop) Run(ctx context.Context, events <-chan domain.WatchEvent) error {
	inputCtx, cancelInput := context.WithCancel(ctx)
	defer cancelInput()

	keys := make(chan domain.InputEvent)
	g, gctx := errgroup.WithContext(inputCtx)
	g.Go(func() error {
		return l.readInput(gctx, keys)
	})

	l.runEvents(ctx, events, keys)

	cancelInput()
	if err := g.Wait(); err != nil {
		return zerr.Wrap(err, domain.ErrInputReaderFailed.Error())
	}
	return nil
}

func (l *Loop) runEvents(ctx context.Context, events <-chan domain.WatchEvent, keys <-chan domain.InputEvent) {
	ticker := time.NewTicker(domain.TickInterval)
	defer ticker.Stop()

	l.render()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				l.logger.Debug("watcher channel closed")
				return
			}
			if !l.handleWatch(ev) {
				return
			}

		case ev, ok := <-keys:
			if !ok {
				return
			}
			if !l.handleInput(ev) {
				return
			}

		case <-ticker.C:
			if ctx.Err() != nil {
				return
			}
			l.expireHighlights()
		}
	}
}

// readInput polls the surface and forwards events until ctx is cancelled.
// It closes keys on return so the loop observes the reader stopping.
func (l *Loop) readInput(ctx context.Context, keys chan<- domain.InputEvent) error {
	defer close(keys)
	defer l.guard.Recover()

	for ctx.Err() == nil {
		ev, ok, err := l.surface.Poll(PollTimeout)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		select {
		case keys <- ev:
		case <-ctx.Done():
			return nil
		}
	}
	return nil
}

// handleWatch applies one watcher event and reports whether the loop keeps running.
func (l *Loop) handleWatch(ev domain.WatchEvent) bool {
	switch ev.Kind {
	case domain.WatchChanged:
		now := time.Now()
		l.snapshot = nil
		for _, p := range ev.Paths {
			l.tracker.Insert(p, now)
		}
		l.lastChange = now.Format(lastChangeLayout)
		l.watchErr = ""
		l.render()

	case domain.WatchRootDeleted:
		cols, _ := l.surface.Size()
		if err := l.surface.Draw(l.renderer.RootDeletedFrame(l.opts.DisplayPath, cols)); err != nil {
			l.logger.Debug("draw failed", "error", err)
		}
		l.logger.Info("watched directory was deleted", "path", l.opts.DisplayPath)
		return false

	case domain.WatchError:
		if !l.opts.Quiet {
			l.logger.Warn("watcher error", "error", ev.Message)
		}
		l.watchErr = ev.Message
		l.render()
	}
	return true
}

// handleInput applies one key or resize and reports whether the loop keeps running.
func (l *Loop) handleInput(ev domain.InputEvent) bool {
	if ev.Kind == domain.InputResize {
		l.render()
		return true
	}

	switch ev.Key {
	case "q", domain.KeyCtrlC:
		return false
	case "r":
		l.tracker.Clear()
	case domain.KeyUp, "k":
		l.scroll.ScrollUp(1)
	case domain.KeyDown, "j":
		l.scroll.ScrollDown(1)
	case domain.KeyPageUp:
		l.scroll.ScrollUp(l.viewport())
	case domain.KeyPageDown:
		l.scroll.ScrollDown(l.viewport())
	case domain.KeyHome, "g":
		l.scroll.ScrollHome()
	case domain.KeyEnd, "G":
		l.scroll.ScrollEnd()
	case "+", "=":
		l.tracker.SetDuration(domain.ClampHighlight(l.tracker.Duration() + highlightStep))
	case "-":
		l.tracker.SetDuration(domain.ClampHighlight(l.tracker.Duration() - highlightStep))
	default:
		return true
	}

	l.render()
	return true
}

// expireHighlights redraws once highlights have run out so they do not linger until the next event.
func (l *Loop) expireHighlights() {
	if l.lastActive == 0 {
		return
	}
	if len(l.tracker.ActiveSet(time.Now())) < l.lastActive {
		l.render()
	}
}

func (l *Loop) viewport() int {
	_, rows := l.surface.Size()
	return max(rows-render.ChromeRows, 0)
}

// render draws one frame, rebuilding the snapshot only when it was invalidated.
func (l *Loop) render() {
	if l.snapshot == nil {
		snap := l.builder.Build(l.opts.Root, l.opts.Tree)
		l.snapshot = &snap
		l.logger.Debug("tree rebuilt", "entries", snap.Shown(), "total", snap.TotalEntries)
	}

	active := l.tracker.ActiveSet(time.Now())
	l.lastActive = len(active)

	lines := l.renderer.TreeToLines(l.snapshot.Entries, active)
	if trunc := l.renderer.TruncationLine(l.snapshot.Shown(), l.snapshot.TotalEntries); trunc != "" {
		lines = append(lines, trunc)
	}

	cols, rows := l.surface.Size()
	viewport := max(rows-render.ChromeRows, 0)
	l.scroll.UpdateTotalAndClamp(len(lines), viewport)

	status := l.renderer.StatusBar(render.Status{
		Path:       l.opts.DisplayPath,
		Info:       render.EntryInfo(l.snapshot.Shown(), l.snapshot.TotalEntries, len(lines), viewport, l.scroll.Offset()),
		LastChange: l.lastChange,
		Error:      l.watchErr,
	}, cols)

	frame := l.renderer.Compose(render.View{
		Lines:  lines,
		Offset: l.scroll.Offset(),
		Status: status,
		Help:   l.renderer.HelpBar(l.tracker.Duration(), cols),
		Cols:   cols,
		Rows:   rows,
	})

	if err := l.surface.Draw(frame); err != nil {
		l.logger.Debug("draw failed", "error", err)
	}
}
