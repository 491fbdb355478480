package domain

import "time"

const (
	// DefaultDebounce is the default quiet period before a batch of changes is reported.
	DefaultDebounce = 200 * time.Millisecond

	// MinDebounce is the smallest accepted debounce window.
	MinDebounce = 50 * time.Millisecond

	// DefaultMaxEntries is the default cap on entries kept in a snapshot.
	DefaultMaxEntries = 10000

	// TickInterval is the liveness tick of the event loop and the input poll timeout.
	TickInterval = 100 * time.Millisecond
)

// DefaultIgnores are the names excluded unless default ignores are disabled.
var DefaultIgnores = []string{".git", "node_modules", "__pycache__", ".DS_Store"}

// Settings is the resolved runtime configuration of one livetree invocation.
type Settings struct {
	// Path is the directory to watch as given by the user.
	Path string
	// MaxDepth limits tree depth; 0 means unlimited.
	MaxDepth int
	// Ignore holds the user's glob patterns.
	Ignore []string
	// NoDefaultIgnores disables DefaultIgnores.
	NoDefaultIgnores bool
	ShowHidden       bool
	DirsOnly         bool
	FollowSymlinks   bool
	// Debounce is the watcher batching window.
	Debounce time.Duration
	NoColor  bool
	// Verbose is the repeat count of the verbose flag.
	Verbose int
	Quiet   bool
	NoTitle bool
	// MaxEntries caps the snapshot size; 0 means unlimited.
	MaxEntries int
	// Highlight is how long changed entries stay highlighted.
	Highlight time.Duration
	// LogFile, when set, receives JSON log records.
	LogFile string
}

// DefaultSettings returns the settings used when no flag or config value is given.
func DefaultSettings() Settings {
	return Settings{
		Path:       ".",
		Debounce:   DefaultDebounce,
		MaxEntries: DefaultMaxEntries,
		Highlight:  DefaultHighlight,
	}
}

// Validated returns a copy with every value normalized.
// noColorEnv reports whether NO_COLOR is set in the environment.
func (s Settings) Validated(noColorEnv bool) Settings {
	out := s
	if out.Path == "" {
		out.Path = "."
	}
	out.MaxDepth = max(out.MaxDepth, 0)
	out.MaxEntries = max(out.MaxEntries, 0)
	out.Debounce = max(out.Debounce, MinDebounce)
	out.Highlight = ClampHighlight(out.Highlight)
	if noColorEnv {
		out.NoColor = true
	}
	if out.Quiet {
		out.Verbose = 0
	}
	out.Ignore = append([]string(nil), s.Ignore...)
	return out
}

// IgnorePatterns returns the effective ignore globs, default ignores first.
func (s *Settings) IgnorePatterns() []string {
	patterns := make([]string, 0, len(DefaultIgnores)+len(s.Ignore))
	if !s.NoDefaultIgnores {
		patterns = append(patterns, DefaultIgnores...)
	}
	return append(patterns, s.Ignore...)
}

// TreeConfig derives the tree build configuration. The ignore matcher is supplied by the caller.
func (s *Settings) TreeConfig(ignore Matcher) TreeConfig {
	return TreeConfig{
		MaxDepth:       s.MaxDepth,
		ShowHidden:     s.ShowHidden,
		DirsOnly:       s.DirsOnly,
		FollowSymlinks: s.FollowSymlinks,
		Ignore:         ignore,
		MaxEntries:     s.MaxEntries,
	}
}
