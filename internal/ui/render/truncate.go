package render

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

const ellipsis = "..."

// TruncateMiddle shortens s to at most width display cells by replacing its middle with
// "...". The head keeps the larger half of the remaining cells. Wide runes are never split.
func TruncateMiddle(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= len(ellipsis) {
		return strings.Repeat(".", width)
	}

	keep := width - len(ellipsis)
	headWidth := keep/2 + keep%2
	tailWidth := keep / 2

	runes := []rune(s)

	var head strings.Builder
	used := 0
	for _, r := range runes {
		w := runewidth.RuneWidth(r)
		if used+w > headWidth {
			break
		}
		head.WriteRune(r)
		used += w
	}

	start := len(runes)
	used = 0
	for start > 0 {
		w := runewidth.RuneWidth(runes[start-1])
		if used+w > tailWidth {
			break
		}
		start--
		used += w
	}

	return head.String() + ellipsis + string(runes[start:])
}

// TruncateEnd shortens plain text to width display cells, ending in "..." when cut.
func TruncateEnd(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if width <= len(ellipsis) {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, ellipsis)
}

// ClipLine cuts a styled line to width display cells without breaking escape sequences.
func ClipLine(line string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(line, width, "")
}
