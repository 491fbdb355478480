package fs

import (
	"errors"
	"fmt"

	"github.com/bmatcuk/doublestar/v4"

	"go.trai.ch/livetree/internal/core/domain"
	"go.trai.ch/livetree/internal/core/ports"
)

var _ ports.IgnoreCompiler = (*IgnoreCompiler)(nil)

// IgnoreCompiler compiles ignore globs with doublestar syntax.
type IgnoreCompiler struct{}

// NewIgnoreCompiler creates a new IgnoreCompiler.
func NewIgnoreCompiler() *IgnoreCompiler {
	return &IgnoreCompiler{}
}

// Compile implements ports.IgnoreCompiler.
func (c *IgnoreCompiler) Compile(patterns []string) (domain.Matcher, error) {
	return CompileIgnore(patterns)
}

// IgnoreSet is a compiled list of doublestar glob patterns.
type IgnoreSet struct {
	patterns []string
}

// CompileIgnore validates patterns and returns the set of the valid ones.
// Each invalid pattern contributes one error, naming the pattern, to the joined result.
func CompileIgnore(patterns []string) (*IgnoreSet, error) {
	set := &IgnoreSet{patterns: make([]string, 0, len(patterns))}
	var errs error
	for _, p := range patterns {
		if p == "" || !doublestar.ValidatePattern(p) {
			errs = errors.Join(errs, fmt.Errorf("%w: %q", domain.ErrInvalidIgnorePattern, p))
			continue
		}
		set.patterns = append(set.patterns, p)
	}
	return set, errs
}

// Match reports whether any pattern matches the entry name or its root-relative path.
func (s *IgnoreSet) Match(name, rel string) bool {
	if s == nil {
		return false
	}
	for _, p := range s.patterns {
		if doublestar.MatchUnvalidated(p, rel) || doublestar.MatchUnvalidated(p, name) {
			return true
		}
	}
	return false
}

// Patterns returns the valid patterns in the set.
func (s *IgnoreSet) Patterns() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.patterns...)
}
