// Package logger implements a logging adapter using log/slog.
package logger

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/zerr"
	"gopkg.in/natefinch/lumberjack.v2"

	"go.trai.ch/livetree/internal/core/domain"
	"go.trai.ch/livetree/internal/core/ports"
	"go.trai.ch/livetree/internal/ui/output"
)

const (
	logFileMaxSizeMB  = 10
	logFileMaxBackups = 3
	logFileMaxAgeDays = 28
)

// messager describes an error that can report its own message without the chain.
// This matches the Message() method provided by zerr.Error.
type messager interface {
	Message() string
}

// metadataer describes an error that carries structured key/value context.
type metadataer interface {
	Metadata() map[string]any
}

// ErrorEntry is one link of an error chain prepared for display.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	level    *slog.LevelVar
	jsonMode bool
	noColor  bool
	term     *holdWriter
	file     *lumberjack.Logger
}

// New creates a new Logger instance writing to stderr at Info level.
func New() ports.Logger {
	l := &Logger{
		level: &slog.LevelVar{},
		term:  &holdWriter{w: os.Stderr},
	}
	l.level.Set(slog.LevelInfo)
	l.rebuildLocked()
	return l
}

// SetOutput updates the logger's terminal destination.
// If w is nil, os.Stderr is used as the default.
func (l *Logger) SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	l.term.setWriter(w)
}

// SetJSON switches the terminal output between JSON and pretty logging.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.rebuildLocked()
}

// Configure applies verbosity, color and the optional log file.
func (l *Logger) Configure(settings domain.Settings) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch {
	case settings.Quiet:
		l.level.Set(slog.LevelWarn)
	case settings.Verbose > 0:
		l.level.Set(slog.LevelDebug)
	default:
		l.level.Set(slog.LevelInfo)
	}
	l.noColor = settings.NoColor

	if settings.LogFile != "" {
		if err := prepareLogFile(settings.LogFile); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrLogFileOpenFailed.Error()), "path", settings.LogFile)
		}
		if l.file != nil {
			_ = l.file.Close()
		}
		l.file = &lumberjack.Logger{
			Filename:   settings.LogFile,
			MaxSize:    logFileMaxSizeMB,
			MaxBackups: logFileMaxBackups,
			MaxAge:     logFileMaxAgeDays,
		}
	}

	l.rebuildLocked()
	return nil
}

// prepareLogFile creates the log directory and checks the file is writable,
// so a bad path fails at startup rather than on the first record.
func prepareLogFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, domain.PrivateFilePerm) //nolint:gosec // user-chosen path
	if err != nil {
		return err
	}
	return f.Close()
}

func (l *Logger) rebuildLocked() {
	var handler slog.Handler
	if l.jsonMode {
		handler = slog.NewJSONHandler(l.term, &slog.HandlerOptions{Level: l.level})
	} else {
		handler = NewPrettyHandlerWithProfile(l.term, &slog.HandlerOptions{Level: l.level}, output.ProfileFor(l.noColor))
	}

	if l.file != nil {
		handler = teeHandler{handler, slog.NewJSONHandler(l.file, &slog.HandlerOptions{Level: slog.LevelDebug})}
	}
	l.logger = slog.New(handler)
}

// Hold buffers terminal output until Release is called.
func (l *Logger) Hold() {
	l.term.hold()
}

// Release writes any held output and stops buffering.
func (l *Logger) Release() {
	l.term.release()
}

// Debug logs a message that is shown only in verbose mode.
func (l *Logger) Debug(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg, args...)
}

// Info logs an informational message.
func (l *Logger) Info(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg, args...)
}

// Error logs an error message with its cause chain.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err == nil {
		return
	}

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err)
		return
	}

	l.logger.Error(formatErrorEntries(collectErrorEntries(err)))
}

// collectErrorEntries walks the error chain. zerr errors contribute their own
// message and metadata; the first standard error ends the walk with its full text.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry
	current := err

	for current != nil {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, ErrorEntry{Message: current.Error()})
			break
		}

		entry := ErrorEntry{Message: m.Message()}
		if md, ok := current.(metadataer); ok {
			entry.Metadata = md.Metadata()
		}
		entries = append(entries, entry)
		current = errors.Unwrap(current)
	}
	return entries
}

// formatErrorEntries renders the entries hierarchically: the main error first,
// then every cause under a "Caused by:" header. Metadata keys are sorted.
func formatErrorEntries(entries []ErrorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		head, indent := "Error: ", "       "
		if i > 0 {
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
			head, indent = "    → ", "      "
		}

		lines = append(lines, head+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, indent+strings.TrimLeft(line, " \t"))
		}

		keys := make([]string, 0, len(entry.Metadata))
		for k := range entry.Metadata {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			lines = append(lines, fmt.Sprintf("%s%s: %v", indent, k, entry.Metadata[k]))
		}
	}

	return strings.Join(lines, "\n")
}

// holdWriter forwards writes to w, or buffers them while held.
type holdWriter struct {
	mu   sync.Mutex
	w    io.Writer
	held bool
	buf  bytes.Buffer
}

func (h *holdWriter) Write(p []byte) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.held {
		return h.buf.Write(p)
	}
	return h.w.Write(p)
}

func (h *holdWriter) setWriter(w io.Writer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.w = w
}

func (h *holdWriter) hold() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.held = true
}

func (h *holdWriter) release() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.held = false
	if h.buf.Len() > 0 {
		_, _ = h.w.Write(h.buf.Bytes())
		h.buf.Reset()
	}
}
