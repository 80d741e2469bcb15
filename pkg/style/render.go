package style

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
)

// DetectProfile determines the color profile to use for output, honoring
// NO_COLOR and falling back to Ascii when output is piped or redirected.
func DetectProfile(output *os.File) termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}

	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return termenv.Ascii
	}

	return termenv.NewOutput(output).ColorProfile()
}

// NewRenderer returns a lipgloss renderer pinned to profile.
func NewRenderer(w io.Writer, profile termenv.Profile) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)
	return r
}

// ColumnWidth is the width of a column taking pct percent of total, never
// narrower than minWidth.
func ColumnWidth(total int, pct, minWidth uint16) int {
	w := total * int(pct) / 100
	if w < int(minWidth) {
		return int(minWidth)
	}
	return w
}

// Column renders text on one line, padded or truncated to exactly width
// cells, in color c.
func Column(r *lipgloss.Renderer, text string, width int, c Color) string {
	if width <= 0 {
		return ""
	}
	text = runewidth.Truncate(strings.ReplaceAll(text, "\n", " "), width, "…")
	return r.NewStyle().
		Foreground(c.Lipgloss()).
		Width(width).
		Render(text)
}
