package ports

import "go.trai.ch/livetree/internal/core/domain"

// Logger defines the interface for logging.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Debug logs a message shown only in verbose mode.
	Debug(msg string, args ...any)
	// Info logs an informational message.
	Info(msg string, args ...any)
	// Warn logs a warning message.
	Warn(msg string, args ...any)
	// Error logs an error with its full cause chain.
	Error(err error)
	// Configure applies the verbosity and log file from the resolved settings.
	Configure(settings domain.Settings) error
	// Hold buffers terminal output until Release is called.
	// Records written to a log file are not held.
	Hold()
	// Release writes any held output and stops buffering.
	Release()
}
