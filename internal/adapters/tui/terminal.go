// Package tui implements the full-screen terminal surface the tree is drawn on.
package tui

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/zerr"
	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"go.trai.ch/livetree/internal/core/domain"
	"go.trai.ch/livetree/internal/ui/output"
)

const (
	fallbackCols = 80
	fallbackRows = 24
	readBufSize  = 256
)

// Terminal implements ports.Surface on a pair of terminal files using raw mode
// and the alternate screen.
type Terminal struct {
	in     *os.File
	out    *os.File
	output *termenv.Output

	mu     sync.Mutex
	state  *term.State
	active bool
	winch  chan os.Signal

	decoder keyDecoder
	readBuf []byte
}

// NewTerminal creates a Terminal reading keys from in and drawing to out.
func NewTerminal(in, out *os.File) *Terminal {
	return &Terminal{
		in:      in,
		out:     out,
		output:  output.New(out),
		winch:   make(chan os.Signal, 1),
		readBuf: make([]byte, readBufSize),
	}
}

// Init enters raw mode and the alternate screen, hides the cursor and starts
// listening for size changes.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.active {
		return nil
	}

	fd := int(t.in.Fd()) //nolint:gosec // file descriptors fit in int
	if !term.IsTerminal(fd) {
		return domain.ErrNotATerminal
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return zerr.Wrap(err, domain.ErrTerminalInitFailed.Error())
	}
	t.state = state
	t.active = true

	signal.Notify(t.winch, syscall.SIGWINCH)

	t.output.AltScreen()
	t.output.HideCursor()
	t.output.ClearScreen()
	return nil
}

// Restore leaves the alternate screen, shows the cursor and restores the saved terminal mode.
// Calling it again, or without a successful Init, does nothing.
func (t *Terminal) Restore() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.active {
		return nil
	}
	t.active = false

	signal.Stop(t.winch)

	t.output.ShowCursor()
	t.output.ExitAltScreen()

	fd := int(t.in.Fd()) //nolint:gosec // file descriptors fit in int
	if err := term.Restore(fd, t.state); err != nil {
		return zerr.Wrap(err, domain.ErrTerminalRestoreFailed.Error())
	}
	return nil
}

// Size returns the terminal dimensions, or 80x24 when they cannot be determined.
func (t *Terminal) Size() (cols, rows int) {
	cols, rows, err := term.GetSize(int(t.out.Fd())) //nolint:gosec // file descriptors fit in int
	if err != nil || cols <= 0 || rows <= 0 {
		return fallbackCols, fallbackRows
	}
	return cols, rows
}

// Draw replaces the screen with frame in a single write.
// Each row is followed by an erase to the end of the line, and everything below the last row is cleared.
func (t *Terminal) Draw(frame domain.Frame) error {
	_, err := t.out.Write(encodeFrame(frame))
	return err
}

func encodeFrame(frame domain.Frame) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, termenv.CSI+termenv.CursorPositionSeq, 1, 1)
	for i, row := range frame.Rows {
		if i > 0 {
			b.WriteString("\r\n")
		}
		b.WriteString(row)
		b.WriteString(termenv.CSI + termenv.EraseLineRightSeq)
	}
	fmt.Fprintf(&b, termenv.CSI+termenv.EraseDisplaySeq, 0)
	return b.Bytes()
}

// SetTitle sets the terminal window title.
func (t *Terminal) SetTitle(title string) {
	t.output.SetWindowTitle(title)
}

// Poll waits up to timeout for a key or a size change.
func (t *Terminal) Poll(timeout time.Duration) (domain.InputEvent, bool, error) {
	if ev, ok := t.pendingEvent(); ok {
		return ev, true, nil
	}

	fd := int(t.in.Fd()) //nolint:gosec // file descriptors fit in int
	fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}} //nolint:gosec // file descriptors fit in int32

	n, err := unix.Poll(fds, int(timeout/time.Millisecond))
	if err != nil {
		if errors.Is(err, unix.EINTR) {
			ev, ok := t.pendingEvent()
			return ev, ok, nil
		}
		return domain.InputEvent{}, false, zerr.Wrap(err, domain.ErrInputReadFailed.Error())
	}

	if n == 0 {
		t.decoder.flush()
		ev, ok := t.pendingEvent()
		return ev, ok, nil
	}

	rn, err := unix.Read(fd, t.readBuf)
	if err != nil {
		if errors.Is(err, unix.EINTR) || errors.Is(err, unix.EAGAIN) {
			return domain.InputEvent{}, false, nil
		}
		return domain.InputEvent{}, false, zerr.Wrap(err, domain.ErrInputReadFailed.Error())
	}
	if rn == 0 {
		return domain.InputEvent{}, false, zerr.Wrap(io.EOF, domain.ErrInputReadFailed.Error())
	}

	t.decoder.feed(t.readBuf[:rn])
	ev, ok := t.pendingEvent()
	return ev, ok, nil
}

// pendingEvent reports a size change first, then the oldest decoded key.
func (t *Terminal) pendingEvent() (domain.InputEvent, bool) {
	select {
	case <-t.winch:
		return domain.Resize(), true
	default:
	}
	return t.decoder.next()
}
