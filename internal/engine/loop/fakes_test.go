package loop_test

import (
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/muesli/termenv"
	"go.uber.org/mock/gomock"

	"go.trai.ch/livetree/internal/core/domain"
	"go.trai.ch/livetree/internal/core/ports/mocks"
	"go.trai.ch/livetree/internal/engine/loop"
	"go.trai.ch/livetree/internal/ui/render"
)

// fakeSurface records frames and serves input from a channel.
type fakeSurface struct {
	mu       sync.Mutex
	cols     int
	rows     int
	frames   []domain.Frame
	restores int

	input   chan domain.InputEvent
	pollErr chan error
}

func newFakeSurface(cols, rows int) *fakeSurface {
	return &fakeSurface{
		cols:    cols,
		rows:    rows,
		input:   make(chan domain.InputEvent),
		pollErr: make(chan error, 1),
	}
}

func (f *fakeSurface) Init() error { return nil }

func (f *fakeSurface) Restore() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.restores++
	return nil
}

func (f *fakeSurface) Size() (int, int) { return f.cols, f.rows }

func (f *fakeSurface) Draw(frame domain.Frame) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.frames = append(f.frames, frame)
	return nil
}

func (f *fakeSurface) Poll(timeout time.Duration) (domain.InputEvent, bool, error) {
	select {
	case ev := <-f.input:
		return ev, true, nil
	case err := <-f.pollErr:
		return domain.InputEvent{}, false, err
	case <-time.After(timeout):
		return domain.InputEvent{}, false, nil
	}
}

func (f *fakeSurface) SetTitle(string) {}

func (f *fakeSurface) frameCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.frames)
}

func (f *fakeSurface) lastFrame() domain.Frame {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.frames) == 0 {
		return domain.Frame{}
	}
	return f.frames[len(f.frames)-1]
}

func (f *fakeSurface) restoreCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.restores
}

// press sends a key to the input reader.
func (f *fakeSurface) press(key string) {
	f.input <- domain.Key(key)
}

func entriesSnapshot(n int) domain.TreeSnapshot {
	entries := make([]domain.TreeEntry, n)
	for i := range entries {
		name := fmt.Sprintf("file%03d.txt", i)
		entries[i] = domain.TreeEntry{Name: name, Path: "/p/" + name, Depth: 1}
	}
	domain.Layout(entries)
	return domain.TreeSnapshot{Entries: entries, TotalEntries: n}
}

func scenarioASnapshot() domain.TreeSnapshot {
	entries := []domain.TreeEntry{
		{Name: "src", Path: "/p/src", Depth: 1, IsDir: true},
		{Name: "main.rs", Path: "/p/src/main.rs", Depth: 2},
		{Name: "README.md", Path: "/p/README.md", Depth: 1},
	}
	domain.Layout(entries)
	return domain.TreeSnapshot{Entries: entries, TotalEntries: len(entries)}
}

type harness struct {
	surface *fakeSurface
	builder *mocks.MockTreeBuilder
	logger  *mocks.MockLogger
	guard   *loop.Guard
}

func newHarness(t *testing.T, cols, rows int) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := &harness{
		surface: newFakeSurface(cols, rows),
		builder: mocks.NewMockTreeBuilder(ctrl),
		logger:  mocks.NewMockLogger(ctrl),
	}
	h.guard = loop.NewGuard(h.surface)
	h.logger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	h.logger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	return h
}

func (h *harness) loop(opts loop.Options) *loop.Loop {
	if opts.Root == "" {
		opts.Root = "/p"
	}
	if opts.DisplayPath == "" {
		opts.DisplayPath = opts.Root
	}
	r := render.NewWithProfile(io.Discard, termenv.Ascii)
	return loop.New(h.surface, h.builder, h.logger, r, h.guard, opts)
}
