package domain

import (
	"maps"
	"time"
)

// DefaultHighlight is how long a changed path stays highlighted.
const DefaultHighlight = 3 * time.Second

// MaxHighlight bounds the highlight duration.
const MaxHighlight = time.Hour

// HighlightTracker remembers when paths were last touched and expires them after a TTL.
// It is owned by a single goroutine and is not safe for concurrent use.
type HighlightTracker struct {
	touched  map[string]time.Time
	duration time.Duration
}

// NewHighlightTracker creates a tracker with the given TTL. A zero TTL disables highlighting.
func NewHighlightTracker(duration time.Duration) *HighlightTracker {
	return &HighlightTracker{
		touched:  make(map[string]time.Time),
		duration: max(duration, 0),
	}
}

// Insert records a touch of path at now. The latest touch wins.
func (h *HighlightTracker) Insert(path string, now time.Time) {
	h.touched[path] = now
}

// ActiveSet drops expired entries and returns the paths still within the TTL.
// The returned map is a copy the caller may keep.
func (h *HighlightTracker) ActiveSet(now time.Time) map[string]struct{} {
	maps.DeleteFunc(h.touched, func(_ string, at time.Time) bool {
		return now.Sub(at) >= h.duration
	})

	active := make(map[string]struct{}, len(h.touched))
	for path := range h.touched {
		active[path] = struct{}{}
	}
	return active
}

// Duration returns the current TTL.
func (h *HighlightTracker) Duration() time.Duration {
	return h.duration
}

// SetDuration replaces the TTL. Negative values are treated as zero.
func (h *HighlightTracker) SetDuration(d time.Duration) {
	h.duration = max(d, 0)
}

// Clear forgets every touched path.
func (h *HighlightTracker) Clear() {
	clear(h.touched)
}

// Len returns the number of tracked paths, including ones not yet pruned.
func (h *HighlightTracker) Len() int {
	return len(h.touched)
}

// ClampHighlight bounds d to [0, MaxHighlight].
func ClampHighlight(d time.Duration) time.Duration {
	return min(max(d, 0), MaxHighlight)
}
