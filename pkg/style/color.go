// Package style resolves configured color names to terminal colors and
// renders the styled columns of the cheat list.
package style

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/cheatnav/pkg/errors"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

// Color is one of the 16 standard terminal colors. The numeric value is the
// ANSI palette index.
type Color int

const (
	Black Color = iota
	DarkRed
	DarkGreen
	DarkYellow
	DarkBlue
	DarkMagenta
	DarkCyan
	Grey
	DarkGrey
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

var colorNames = [...]string{
	Black:       "black",
	DarkRed:     "dark_red",
	DarkGreen:   "dark_green",
	DarkYellow:  "dark_yellow",
	DarkBlue:    "dark_blue",
	DarkMagenta: "dark_magenta",
	DarkCyan:    "dark_cyan",
	Grey:        "grey",
	DarkGrey:    "dark_grey",
	Red:         "red",
	Green:       "green",
	Yellow:      "yellow",
	Blue:        "blue",
	Magenta:     "magenta",
	Cyan:        "cyan",
	White:       "white",
}

// aliases accepted on input only; String always returns the canonical name.
var colorAliases = map[string]Color{
	"gray":      Grey,
	"dark_gray": DarkGrey,
}

// Colors returns every accepted color in palette order.
func Colors() []Color {
	colors := make([]Color, len(colorNames))
	for i := range colorNames {
		colors[i] = Color(i)
	}
	return colors
}

// ParseColor resolves a color name, case-insensitively.
func ParseColor(name string) (Color, error) {
	lower := strings.ToLower(name)
	for i, n := range colorNames {
		if n == lower {
			return Color(i), nil
		}
	}
	if c, ok := colorAliases[lower]; ok {
		return c, nil
	}
	return 0, errors.Newf(errors.ErrInvalidInput, "unknown color name %q", name).
		WithDetail("color", name)
}

// String returns the canonical color name.
func (c Color) String() string {
	if c < 0 || int(c) >= len(colorNames) {
		return "Color(" + strconv.Itoa(int(c)) + ")"
	}
	return colorNames[c]
}

// ANSI returns the ANSI 16-color palette index.
func (c Color) ANSI() int {
	return int(c)
}

// Lipgloss returns the color for use in lipgloss styles.
func (c Color) Lipgloss() lipgloss.TerminalColor {
	return lipgloss.ANSIColor(uint(c))
}

// Termenv returns the color degraded to the given profile. The Ascii
// profile yields a NoColor.
func (c Color) Termenv(p termenv.Profile) termenv.Color {
	return p.Color(strconv.Itoa(c.ANSI()))
}

// Render paints s in this color using the default lipgloss renderer.
func (c Color) Render(s string) string {
	return lipgloss.NewStyle().Foreground(c.Lipgloss()).Render(s)
}

// UnmarshalYAML decodes a color name. Unknown names fail the whole document
// with ErrConfigInvalid.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return errors.Wrapf(err, errors.ErrConfigInvalid, "Failed to deserialize color: %s", s).
			WithDetail("line", value.Line)
	}
	*c = parsed
	return nil
}

// MarshalYAML encodes the canonical color name.
func (c Color) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}
