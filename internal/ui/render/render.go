// Package render turns tree snapshots and loop state into terminal frames.
package render

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/muesli/termenv"

	"go.trai.ch/livetree/internal/core/domain"
	"go.trai.ch/livetree/internal/ui/output"
)

// ChromeRows is the number of rows reserved below the tree for the status and help bars.
const ChromeRows = 2

// Renderer converts tree entries and loop state into styled lines and frames.
type Renderer struct {
	styles Styles
}

// New creates a Renderer for w. Colors are disabled when noColor is set or NO_COLOR is present.
func New(w io.Writer, noColor bool) *Renderer {
	return NewWithProfile(w, output.ProfileFor(noColor))
}

// NewWithProfile creates a Renderer with an explicit color profile.
func NewWithProfile(w io.Writer, profile termenv.Profile) *Renderer {
	return &Renderer{styles: NewStyles(NewLipglossRenderer(w, profile))}
}

// TreeToLines renders one line per entry, preserving order.
// active holds the paths that are currently highlighted.
func (r *Renderer) TreeToLines(entries []domain.TreeEntry, active map[string]struct{}) []string {
	lines := make([]string, len(entries))
	for i := range entries {
		lines[i] = r.entryLine(&entries[i], active)
	}
	return lines
}

func (r *Renderer) entryLine(e *domain.TreeEntry, active map[string]struct{}) string {
	var b strings.Builder
	if e.Prefix != "" {
		b.WriteString(r.styles.Prefix.Render(e.Prefix))
	}

	name := output.Sanitize(e.Name)
	_, changed := active[e.Path]

	switch {
	case changed:
		text := name
		if e.HasError() {
			text += " [" + output.Sanitize(e.Err) + "]"
		}
		if e.IsDir {
			b.WriteString(r.styles.ChangedDir.Render(text))
		} else {
			b.WriteString(r.styles.ChangedFile.Render(text))
		}
		if !e.HasError() && e.IsSymlink {
			b.WriteString(" -> " + output.Sanitize(e.SymlinkTarget))
		}
	case e.HasError():
		b.WriteString(r.styles.Error.Render(name + " [" + output.Sanitize(e.Err) + "]"))
	case e.IsSymlink:
		b.WriteString(r.styles.Symlink.Render(name))
		b.WriteString(" -> " + output.Sanitize(e.SymlinkTarget))
	case e.IsDir:
		b.WriteString(r.styles.Directory.Render(name))
	default:
		b.WriteString(r.styles.File.Render(name))
	}
	return b.String()
}

// TruncationLine returns the notice appended below a capped tree, or "" when nothing was cut.
func (r *Renderer) TruncationLine(shown, total int) string {
	if shown >= total {
		return ""
	}
	return r.styles.Truncation.Render(
		fmt.Sprintf("... %d more entries not shown (showing %d of %d, see --max-entries)", total-shown, shown, total),
	)
}

// EntryInfo describes the entry count and scroll position for the status bar.
func EntryInfo(shown, total, totalLines, viewport, offset int) string {
	switch {
	case total > shown:
		return fmt.Sprintf("showing %d of %d entries (truncated)", shown, total)
	case totalLines > viewport:
		return fmt.Sprintf("%d entries (%d visible, scroll %d/%d)",
			total, min(viewport, totalLines), offset+1, max(totalLines-viewport, 0)+1)
	default:
		return fmt.Sprintf("%d entries", total)
	}
}

// Status is the content of the status bar.
type Status struct {
	// Path is the watched directory as displayed.
	Path string
	// Info is the entry count description.
	Info string
	// LastChange is the formatted time of the last change, empty when none happened.
	LastChange string
	// Error is the last watcher error, empty when none is pending.
	Error string
}

// StatusBar renders the status bar padded or cut to width.
func (r *Renderer) StatusBar(s Status, width int) string {
	change := "No changes yet"
	if s.LastChange != "" {
		change = "Last change: " + s.LastChange
	}
	text := fmt.Sprintf(" Watching: %s  |  %s  |  %s", output.Sanitize(s.Path), output.Sanitize(s.Info), change)

	st := r.styles.StatusBar
	if s.Error != "" {
		text += "  |  Error: " + output.Sanitize(s.Error)
		st = r.styles.StatusError
	}
	return st.Width(max(width, 0)).Render(TruncateEnd(text, width))
}

// HelpBar renders the key binding summary with the current highlight duration.
func (r *Renderer) HelpBar(highlight time.Duration, width int) string {
	duration := "off"
	if highlight > 0 {
		duration = fmt.Sprintf("%ds", int(highlight/time.Second))
	}

	bindings := []struct{ key, action string }{
		{"q", "quit"},
		{"r", "reset"},
		{"↑↓/jk", "scroll"},
		{"PgUp/PgDn", "page"},
		{"Home/End", "jump"},
		{"+/-", "highlight " + duration},
	}

	var b strings.Builder
	b.WriteString(" ")
	used := 1
	for i, kb := range bindings {
		sep := ""
		if i > 0 {
			sep = "  "
		}
		plain := sep + kb.key + " " + kb.action
		if used+len([]rune(plain)) > width {
			break
		}
		b.WriteString(r.styles.HelpBar.Render(sep))
		b.WriteString(r.styles.HelpKey.Render(kb.key))
		b.WriteString(r.styles.HelpBar.Render(" " + kb.action))
		used += len([]rune(plain))
	}
	return b.String()
}

// View is everything needed to compose one tree frame.
type View struct {
	Lines  []string
	Offset int
	Status string
	Help   string
	Cols   int
	Rows   int
}

// Compose lays out the visible slice of the tree above the status and help bars.
func (r *Renderer) Compose(v View) domain.Frame {
	height := max(v.Rows-ChromeRows, 0)
	rows := make([]string, 0, max(v.Rows, 0))

	start := min(max(v.Offset, 0), len(v.Lines))
	end := min(start+height, len(v.Lines))
	for _, line := range v.Lines[start:end] {
		rows = append(rows, ClipLine(line, v.Cols))
	}
	for len(rows) < height {
		rows = append(rows, "")
	}

	if v.Rows >= 1 {
		rows = append(rows, ClipLine(v.Status, v.Cols))
	}
	if v.Rows >= ChromeRows {
		rows = append(rows, ClipLine(v.Help, v.Cols))
	}
	return domain.Frame{Rows: rows, Width: v.Cols}
}

// RootDeletedFrame is drawn when the watched directory disappears.
func (r *Renderer) RootDeletedFrame(path string, cols int) domain.Frame {
	return domain.Frame{
		Rows: []string{
			ClipLine(r.styles.MessageHeading.Render("Directory deleted: "+output.Sanitize(path)), cols),
			ClipLine("Exiting...", cols),
		},
		Width: cols,
	}
}

// Title builds the terminal window title for root, cut to cols display cells.
// It returns "" when there is no room.
func Title(root string, cols int) string {
	if cols <= 0 {
		return ""
	}
	name := filepath.Base(root)
	if name == "." || name == string(filepath.Separator) {
		name = root
	}
	return TruncateMiddle(output.Sanitize(domain.TitleFor(name)), cols)
}

// DisplayPath collapses the home directory prefix of path to "~".
func DisplayPath(path, home string) string {
	if home == "" {
		return path
	}
	home = filepath.Clean(home)
	if path == home {
		return "~"
	}
	rel, err := filepath.Rel(home, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return "~" + string(filepath.Separator) + rel
}
