package render

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"go.trai.ch/livetree/internal/ui/style"
)

// Styles holds every style used to draw a frame.
type Styles struct {
	Prefix         lipgloss.Style
	File           lipgloss.Style
	Directory      lipgloss.Style
	Symlink        lipgloss.Style
	Error          lipgloss.Style
	ChangedFile    lipgloss.Style
	ChangedDir     lipgloss.Style
	Truncation     lipgloss.Style
	StatusBar      lipgloss.Style
	StatusError    lipgloss.Style
	HelpBar        lipgloss.Style
	HelpKey        lipgloss.Style
	MessageHeading lipgloss.Style
}

// NewStyles builds the styles on r. A renderer bound to the Ascii profile yields plain text.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Prefix: r.NewStyle().
			Faint(true),

		File: r.NewStyle(),

		Directory: r.NewStyle().
			Foreground(style.Directory).
			Bold(true),

		Symlink: r.NewStyle().
			Foreground(style.Symlink),

		Error: r.NewStyle().
			Foreground(style.Failure),

		ChangedFile: r.NewStyle().
			Foreground(style.Ink).
			Background(style.Yellow).
			Bold(true),

		ChangedDir: r.NewStyle().
			Foreground(style.White).
			Background(style.Iris).
			Bold(true),

		Truncation: r.NewStyle().
			Foreground(style.Yellow).
			Italic(true),

		StatusBar: r.NewStyle().
			Foreground(style.BarText).
			Background(style.Bar).
			Bold(true),

		StatusError: r.NewStyle().
			Foreground(style.White).
			Background(style.Red).
			Bold(true),

		HelpBar: r.NewStyle().
			Foreground(style.Slate),

		HelpKey: r.NewStyle().
			Foreground(style.Iris).
			Bold(true),

		MessageHeading: r.NewStyle().
			Foreground(style.Red).
			Bold(true),
	}
}

// NewLipglossRenderer creates a lipgloss renderer writing to w with the given profile.
func NewLipglossRenderer(w io.Writer, profile termenv.Profile) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)
	// The frame is drawn on the alternate screen; querying the background would block on input.
	r.SetHasDarkBackground(true)
	return r
}
