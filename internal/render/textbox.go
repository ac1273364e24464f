package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// BoxStyle selects how a TextBox draws.
type BoxStyle int

const (
	// Plain writes the text and pads it with spaces to the box width.
	Plain BoxStyle = iota
	// Bordered ignores the text and draws a top and a bottom border.
	Bordered
)

// TextBox is a fixed-width, single-line colored cell.
type TextBox struct {
	Color lipgloss.Color
	Width int
	Style BoxStyle
}

// NewTextBox returns a plain box.
func NewTextBox(color lipgloss.Color, width int) TextBox {
	return TextBox{Color: color, Width: max(width, 0), Style: Plain}
}

// Put draws the box at the surface cursor. Plain text wider than the box is
// written in full; trimming it is up to the caller.
func (b TextBox) Put(s Surface, text string) {
	switch b.Style {
	case Bordered:
		b.putBorders(s)
	default:
		s.SetForeground(b.Color)
		s.Print(text)
		if pad := b.Width - runewidth.StringWidth(text); pad > 0 {
			s.Print(strings.Repeat(" ", pad))
		}
	}
}

func (b TextBox) putBorders(s Surface) {
	row, col := s.Position()
	s.SetForeground(b.Color)
	s.Print(borderRow("┌", "┐", b.Width))
	s.MoveTo(row+1, col)
	s.Print(borderRow("└", "┘", b.Width))
}

// borderRow builds a horizontal rule exactly width columns wide.
func borderRow(left, right string, width int) string {
	switch {
	case width <= 0:
		return ""
	case width == 1:
		return "─"
	}
	return left + strings.Repeat("─", width-2) + right
}
