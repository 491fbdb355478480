// Package output provides utilities for creating termenv.Output with consistent
// color profile and TTY handling across livetree.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"

	"go.trai.ch/livetree/internal/core/domain"
)

// ColorProfile returns the color profile to use for interactive environments.
// It returns Ascii if NO_COLOR is set and detects the terminal's capabilities otherwise.
func ColorProfile() termenv.Profile {
	if NoColorEnv() {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// ProfileFor returns Ascii when color is disabled and the detected profile otherwise.
func ProfileFor(noColor bool) termenv.Profile {
	if noColor {
		return termenv.Ascii
	}
	return ColorProfile()
}

// NoColorEnv reports whether the NO_COLOR convention is in effect.
func NoColorEnv() bool {
	return os.Getenv(domain.NoColorEnvVar) != ""
}

// New creates a new termenv.Output with the default profile logic.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	return NewWithProfile(w, ColorProfile, opts...)
}

// NewWithProfile creates a new termenv.Output with a custom profile selector.
func NewWithProfile(w io.Writer, profileFn func() termenv.Profile, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(profileFn()),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}
