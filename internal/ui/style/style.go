// Package style provides shared UI styling primitives including brand colors
// and icons for consistent visual presentation across livetree.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	White  = lipgloss.Color("#FFFFFF")
	Ink    = lipgloss.Color("#0B0F19")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Tree Colors use the terminal's own ANSI palette so entries match ls and tree output.
var (
	Directory = lipgloss.Color("4")
	Symlink   = lipgloss.Color("6")
	Failure   = lipgloss.Color("1")
	Bar       = lipgloss.Color("8")
	BarText   = lipgloss.Color("15")
)

// Icons.
const (
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
)
