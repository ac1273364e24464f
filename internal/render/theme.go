package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-derived palette shared by every frame.
const (
	ColorBackground      = lipgloss.Color("#282828")
	ColorFocusBackground = lipgloss.Color("#3c3836")
	ColorText            = lipgloss.Color("#ebdbb2")
	ColorMuted           = lipgloss.Color("#928374")
	ColorBorder          = lipgloss.Color("#665c54")
	ColorTitle           = lipgloss.Color("#fabd2f")
	ColorDirectory       = lipgloss.Color("#83a598")
	ColorSeparator       = lipgloss.Color("#458588")
	ColorAccent          = lipgloss.Color("#8ec07c")
	ColorModified        = lipgloss.Color("#fe8019")
	ColorError           = lipgloss.Color("#fb4934")
)

type swatch struct {
	name  string
	color lipgloss.Color
}

var palette = []swatch{
	{"background", ColorBackground},
	{"focus", ColorFocusBackground},
	{"text", ColorText},
	{"muted", ColorMuted},
	{"border", ColorBorder},
	{"title", ColorTitle},
	{"directory", ColorDirectory},
	{"separator", ColorSeparator},
	{"accent", ColorAccent},
	{"modified", ColorModified},
	{"error", ColorError},
}

// ColorTest writes one sample line per palette entry, foreground on the
// default background followed by the same color as a background block.
func ColorTest(w io.Writer) error {
	for _, s := range palette {
		fg := lipgloss.NewStyle().Foreground(s.color).Width(12).Render(s.name)
		bg := lipgloss.NewStyle().Background(s.color).Render("        ")
		if _, err := fmt.Fprintf(w, "%s %s %s\n", fg, bg, s.color); err != nil {
			return err
		}
	}
	return nil
}
