package domain

import "go.trai.ch/zerr"

var (
	// ErrNotADirectory is returned when the watched path exists but is not a directory.
	ErrNotADirectory = zerr.New("Not a directory")

	// ErrFailedToResolveRoot is returned when the watched path cannot be made absolute or canonical.
	ErrFailedToResolveRoot = zerr.New("failed to resolve path")

	// ErrWatcherStartFailed is returned when the filesystem watcher cannot be created or attached.
	ErrWatcherStartFailed = zerr.New("failed to start watcher")

	// ErrWatcherAlreadyStarted is returned when Watch is called twice on the same watcher.
	ErrWatcherAlreadyStarted = zerr.New("watcher already started")

	// ErrTerminalInitFailed is returned when raw mode or the alternate screen cannot be entered.
	ErrTerminalInitFailed = zerr.New("failed to initialize terminal")

	// ErrNotATerminal is returned when stdin is not attached to a terminal.
	ErrNotATerminal = zerr.New("stdin is not a terminal")

	// ErrTerminalRestoreFailed is returned when the terminal state cannot be restored.
	ErrTerminalRestoreFailed = zerr.New("failed to restore terminal")

	// ErrInputReadFailed is returned when the keyboard input poll fails.
	ErrInputReadFailed = zerr.New("failed to read terminal input")

	// ErrInputReaderFailed is returned when the input goroutine could not be joined cleanly.
	ErrInputReaderFailed = zerr.New("input reader terminated abnormally")

	// ErrInvalidIgnorePattern is returned for an ignore glob that cannot be parsed.
	ErrInvalidIgnorePattern = zerr.New("invalid ignore pattern")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrLogFileOpenFailed is returned when the log file directory cannot be prepared.
	ErrLogFileOpenFailed = zerr.New("failed to open log file")
)
