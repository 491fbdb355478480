package domain

import "strings"

// Box-drawing segments used to build entry prefixes.
const (
	GlyphBranch   = "├── "
	GlyphLast     = "└── "
	GlyphVertical = "│   "
	GlyphBlank    = "    "
)

// Layout computes IsLast and Prefix for a pre-order sequence of entries.
// Only Depth is read; the result depends on nothing else, so repeated calls are idempotent.
func Layout(entries []TreeEntry) {
	markLastSiblings(entries)
	buildPrefixes(entries)
}

// markLastSiblings sets IsLast in a single reverse pass.
// Scanning forward from i, the first later entry at the same depth makes i a middle sibling
// and the first later entry at a lower depth (or the end) makes it the last one. Walking
// backwards, seen[d] records whether an entry at depth d was met since the last shallower one.
func markLastSiblings(entries []TreeEntry) {
	seen := make([]bool, 0, 16)
	for i := len(entries) - 1; i >= 0; i-- {
		d := entries[i].Depth
		if d < 0 {
			d = 0
		}
		for len(seen) <= d {
			seen = append(seen, false)
		}
		entries[i].IsLast = !seen[d]
		seen[d] = true
		seen = seen[:d+1]
	}
}

// buildPrefixes derives every prefix from the ancestor-is-last stack.
// The stack is resized to the entry depth before use, which covers depth jumps left by
// filtered-out intermediates.
func buildPrefixes(entries []TreeEntry) {
	ancestorIsLast := make([]bool, 0, 16)
	var b strings.Builder

	for i := range entries {
		depth := entries[i].Depth
		if depth <= 0 {
			entries[i].Prefix = ""
			continue
		}

		for len(ancestorIsLast) < depth {
			ancestorIsLast = append(ancestorIsLast, false)
		}
		ancestorIsLast = ancestorIsLast[:depth]

		b.Reset()
		for level := 1; level < depth; level++ {
			if ancestorIsLast[level-1] {
				b.WriteString(GlyphBlank)
			} else {
				b.WriteString(GlyphVertical)
			}
		}
		if entries[i].IsLast {
			b.WriteString(GlyphLast)
		} else {
			b.WriteString(GlyphBranch)
		}
		entries[i].Prefix = b.String()

		ancestorIsLast[depth-1] = entries[i].IsLast
	}
}
