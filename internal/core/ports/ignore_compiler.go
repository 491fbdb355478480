package ports

import "go.trai.ch/livetree/internal/core/domain"

// IgnoreCompiler turns ignore globs into a matcher for tree builds.
//
//go:generate mockgen -source=ignore_compiler.go -destination=mocks/mock_ignore_compiler.go -package=mocks
type IgnoreCompiler interface {
	// Compile compiles glob patterns into a matcher. Invalid patterns are skipped
	// and reported in the returned error; the matcher is always usable.
	Compile(patterns []string) (domain.Matcher, error)
}
