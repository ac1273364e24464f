package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// WindowConfig places and sizes a Window. Height counts content rows only;
// zero means unbounded.
type WindowConfig struct {
	Row, Col int
	Width    int
	Height   int
	Title    string
	Color    lipgloss.Color
}

// AnchorBottom moves the window so its last content row sits directly above
// row bottom.
func (c WindowConfig) AnchorBottom(bottom int) WindowConfig {
	c.Row = max(bottom-c.Height-1, 0)
	return c
}

// Window is a titled, bordered overlay drawn row by row from the top.
type Window struct {
	s      Surface
	cfg    WindowConfig
	color  lipgloss.Color
	offset int
	rows   int
}

func NewWindow(s Surface, cfg WindowConfig) *Window {
	cfg.Width = max(cfg.Width, 0)
	cfg.Height = max(cfg.Height, 0)
	color := cfg.Color
	if color == "" {
		color = ColorText
	}
	return &Window{s: s, cfg: cfg, color: color}
}

// SetColor changes the color used by later Put calls.
func (w *Window) SetColor(c lipgloss.Color) *Window {
	w.color = c
	return w
}

// ContentWidth is the usable width between the side borders.
func (w *Window) ContentWidth() int {
	return max(w.cfg.Width-3, 0)
}

// TopLine draws the upper rule with the title left-justified in it.
func (w *Window) TopLine() {
	w.rule("┌", "┐", w.cfg.Title)
}

// BottomLine closes the window, optionally with a label in the rule.
func (w *Window) BottomLine(label string) {
	w.rule("└", "┘", label)
}

// Put writes one content row in the window's current color.
func (w *Window) Put(text string) {
	w.PutLine(func(l *TextLine) {
		width := l.Width()
		l.CreateTextBox(w.color, width)
		l.Put(clip(text, width))
	})
}

// PutMarked writes one content row like Put, drawing the runes that start at
// the given byte offsets of text in mark.
func (w *Window) PutMarked(text string, offsets []int, mark lipgloss.Color) {
	w.PutLine(func(l *TextLine) {
		shown := clip(text, l.Width())
		kept := len(shown)
		if shown != text {
			kept -= len(ellipsis)
		}
		marked := make(map[int]bool, len(offsets))
		for _, o := range offsets {
			marked[o] = true
		}
		for i, r := range shown {
			color := w.color
			if i < kept && marked[i] {
				color = mark
			}
			l.CreateTextBox(color, runewidth.RuneWidth(r))
			l.Put(string(r))
		}
	})
}

// PutLine draws the side borders of the next content row and lets compose
// fill the space between them. Rows beyond the configured height are dropped.
func (w *Window) PutLine(compose func(l *TextLine)) {
	if w.cfg.Height > 0 && w.rows >= w.cfg.Height {
		return
	}
	row := w.cfg.Row + w.offset
	w.offset++
	w.rows++
	if w.cfg.Width < 2 {
		return
	}

	w.s.MoveTo(row, w.cfg.Col)
	w.s.ResetStyle()
	w.s.SetForeground(ColorBorder)
	w.s.Print("│")
	if w.cfg.Width > 2 {
		w.s.Print(" ")
	}
	line := NewTextLine(w.s, w.ContentWidth())
	compose(line)
	line.Blank()
	w.s.ResetStyle()
	w.s.SetForeground(ColorBorder)
	w.s.MoveTo(row, w.cfg.Col+w.cfg.Width-1)
	w.s.Print("│")
	w.s.ResetStyle()
}

func (w *Window) rule(left, right, label string) {
	row := w.cfg.Row + w.offset
	w.offset++
	w.s.MoveTo(row, w.cfg.Col)
	w.s.ResetStyle()
	w.s.SetForeground(ColorBorder)
	defer w.s.ResetStyle()

	if w.cfg.Width < 4 {
		w.s.Print(borderRow(left, right, w.cfg.Width))
		return
	}
	line := NewTextLine(w.s, w.cfg.Width-1).SetFill(FillDash)
	line.CreateTextBox(ColorBorder, 2)
	line.Put(left + "─")
	if label = clip(label, w.cfg.Width-6); label != "" {
		label = " " + label + " "
		line.CreateTextBox(ColorTitle, runewidth.StringWidth(label))
		line.Put(label)
	}
	w.s.SetForeground(ColorBorder)
	line.Blank()
	w.s.Print(right)
}

const ellipsis = "…"

// clip shortens text to width display columns, marking the cut with an ellipsis.
func clip(text string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(text, width, ellipsis)
}
