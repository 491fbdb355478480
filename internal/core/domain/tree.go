// Package domain holds the core types and algorithms of livetree.
package domain

// TreeEntry is a single row of the rendered directory tree.
type TreeEntry struct {
	// Name is the final path element.
	Name string
	// Path is the full filesystem path.
	Path string
	// Depth is the nesting level; direct children of the root have depth 1.
	Depth int
	// IsDir reports whether the entry is (or resolves to) a directory.
	IsDir bool
	// IsSymlink reports whether the entry itself is a symbolic link.
	IsSymlink bool
	// SymlinkTarget is the best-effort link target, "?" when unreadable.
	SymlinkTarget string
	// IsLast marks the final entry of its sibling group.
	IsLast bool
	// Prefix is the box-drawing string derived from the ancestors' IsLast flags.
	Prefix string
	// Err holds the read failure for this entry, if any.
	Err string
}

// HasError reports whether the entry carries a read failure.
func (e *TreeEntry) HasError() bool {
	return e.Err != ""
}

// Matcher decides whether an entry is excluded from the tree.
// name is the final path element and rel the slash-separated path relative to the root.
type Matcher interface {
	Match(name, rel string) bool
}

// TreeConfig controls a single tree build.
type TreeConfig struct {
	// MaxDepth limits traversal depth; 0 means unlimited.
	MaxDepth int
	// ShowHidden includes dot-prefixed entries.
	ShowHidden bool
	// DirsOnly drops non-directory entries from the output.
	DirsOnly bool
	// FollowSymlinks descends into symlinked directories.
	FollowSymlinks bool
	// Ignore excludes matching entries and their subtrees. May be nil.
	Ignore Matcher
	// MaxEntries caps the number of retained entries; 0 means unlimited.
	MaxEntries int
}

// TreeSnapshot is the immutable result of one build.
type TreeSnapshot struct {
	Entries []TreeEntry
	// TotalEntries counts every entry discovered before MaxEntries was applied.
	TotalEntries int
}

// Truncated reports whether the snapshot holds fewer entries than were discovered.
func (s *TreeSnapshot) Truncated() bool {
	return s.TotalEntries > len(s.Entries)
}

// Shown returns the number of retained entries.
func (s *TreeSnapshot) Shown() int {
	return len(s.Entries)
}
