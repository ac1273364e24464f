package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Fill is the glyph Blank uses to pad a line.
type Fill int

const (
	FillSpace Fill = iota
	FillDash
)

func (f Fill) glyph() string {
	if f == FillDash {
		return "─"
	}
	return " "
}

// TextLine composes TextBoxes left to right and tracks the width they claim
// so the remainder of the line can be filled up to a target width.
type TextLine struct {
	s        Surface
	width    int
	consumed int
	fill     Fill
	box      TextBox
}

func NewTextLine(s Surface, width int) *TextLine {
	return &TextLine{s: s, width: max(width, 0), box: NewTextBox(ColorText, width)}
}

// SetFill switches the padding glyph used by Blank.
func (l *TextLine) SetFill(f Fill) *TextLine {
	l.fill = f
	return l
}

func (l *TextLine) Width() int { return l.width }

func (l *TextLine) Consumed() int { return l.consumed }

// Remaining is the width left before the target is reached, never negative.
func (l *TextLine) Remaining() int { return max(l.width-l.consumed, 0) }

// CreateTextBox makes the box the next Put writes through and claims its
// width on the line.
func (l *TextLine) CreateTextBox(color lipgloss.Color, width int) TextBox {
	l.box = NewTextBox(color, width)
	l.consumed += l.box.Width
	return l.box
}

// Put writes text through the most recently created box.
func (l *TextLine) Put(text string) {
	l.box.Put(l.s, text)
}

// Focus writes the two-column focus marker. A focused marker also switches
// the background so the rest of the row is highlighted.
func (l *TextLine) Focus(focused bool) {
	l.consumed += 2
	if focused {
		l.s.SetBackground(ColorFocusBackground)
		l.s.SetForeground(ColorTitle)
		l.s.Print("> ")
		return
	}
	l.s.Print("  ")
}

// Separate writes a three-column vertical divider.
func (l *TextLine) Separate() {
	l.consumed += 3
	l.s.SetForeground(ColorSeparator)
	l.s.Print(" │ ")
	l.s.SetForeground(ColorText)
}

// Blank pads the line with the fill glyph up to its target width.
func (l *TextLine) Blank() {
	n := l.Remaining()
	if n == 0 {
		return
	}
	l.s.Print(strings.Repeat(l.fill.glyph(), n))
	l.consumed += n
}
