package domain

import (
	"cmp"
	"strings"
)

// Sibling is the minimal view of a directory entry needed to order it.
type Sibling struct {
	Name  string
	IsDir bool
}

// CompareSiblings orders two entries of the same directory.
// Directories come before files, then non-dot names before dot names, then names
// compare case-insensitively with exact byte order as the final tie-break.
func CompareSiblings(a, b Sibling) int {
	if a.IsDir != b.IsDir {
		if a.IsDir {
			return -1
		}
		return 1
	}

	aDot := strings.HasPrefix(a.Name, ".")
	bDot := strings.HasPrefix(b.Name, ".")
	if aDot != bDot {
		if bDot {
			return -1
		}
		return 1
	}

	if c := cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); c != 0 {
		return c
	}
	return cmp.Compare(a.Name, b.Name)
}
