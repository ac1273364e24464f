package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Surface is the drawing half of the terminal: absolute positioning, colors
// and text output. Raw mode and the alternate screen are owned by the
// program that hosts the surface.
type Surface interface {
	MoveTo(row, col int)
	Position() (row, col int)
	SetForeground(c lipgloss.Color)
	SetBackground(c lipgloss.Color)
	ResetStyle()
	Print(text string)
	ClearLine()
	Size() (width, height int)
}

type cell struct {
	text string // "" marks the right half of a wide rune
	fg   lipgloss.Color
	bg   lipgloss.Color
}

var blankCell = cell{text: " "}

// Canvas is an in-memory Surface. Output that falls outside the grid is
// dropped; the cursor keeps advancing so callers can still measure.
type Canvas struct {
	width, height int
	cells         [][]cell
	row, col      int
	fg, bg        lipgloss.Color
}

// NewCanvas returns a blank canvas. Negative sizes are clamped to zero.
func NewCanvas(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	c := &Canvas{width: width, height: height, cells: make([][]cell, height)}
	for r := range c.cells {
		c.cells[r] = make([]cell, width)
		for i := range c.cells[r] {
			c.cells[r][i] = blankCell
		}
	}
	return c
}

func (c *Canvas) Size() (int, int) { return c.width, c.height }

func (c *Canvas) MoveTo(row, col int) {
	c.row, c.col = row, col
}

func (c *Canvas) Position() (int, int) { return c.row, c.col }

func (c *Canvas) SetForeground(color lipgloss.Color) { c.fg = color }

func (c *Canvas) SetBackground(color lipgloss.Color) { c.bg = color }

func (c *Canvas) ResetStyle() {
	c.fg, c.bg = "", ""
}

// ClearLine blanks the cursor's row with the current background.
func (c *Canvas) ClearLine() {
	if !c.rowVisible(c.row) {
		return
	}
	for i := range c.cells[c.row] {
		c.cells[c.row][i] = cell{text: " ", bg: c.bg}
	}
}

func (c *Canvas) Print(text string) {
	for _, r := range text {
		if r < ' ' || r == 0x7f {
			continue
		}
		w := runewidth.RuneWidth(r)
		switch {
		case w == 0:
			// combining mark joins the previous cell
			if c.rowVisible(c.row) && c.col > 0 && c.col-1 < c.width {
				c.cells[c.row][c.col-1].text += string(r)
			}
		case w == 2 && c.col+1 >= c.width:
			c.put(c.col, cell{text: " ", fg: c.fg, bg: c.bg})
			c.col += 2
		default:
			c.put(c.col, cell{text: string(r), fg: c.fg, bg: c.bg})
			if w == 2 {
				c.put(c.col+1, cell{fg: c.fg, bg: c.bg})
			}
			c.col += w
		}
	}
}

func (c *Canvas) put(col int, cl cell) {
	if !c.rowVisible(c.row) || col < 0 || col >= c.width {
		return
	}
	c.cells[c.row][col] = cl
}

func (c *Canvas) rowVisible(row int) bool {
	return row >= 0 && row < c.height
}

// Line returns the plain text of a row.
func (c *Canvas) Line(row int) string {
	if !c.rowVisible(row) {
		return ""
	}
	var b strings.Builder
	for _, cl := range c.cells[row] {
		b.WriteString(cl.text)
	}
	return b.String()
}

// Colors reports the foreground and background of a single cell.
func (c *Canvas) Colors(row, col int) (fg, bg lipgloss.Color) {
	if !c.rowVisible(row) || col < 0 || col >= c.width {
		return "", ""
	}
	cl := c.cells[row][col]
	return cl.fg, cl.bg
}

// String renders the grid with lipgloss, one styled run per color change.
func (c *Canvas) String() string {
	lines := make([]string, c.height)
	for r, row := range c.cells {
		var b strings.Builder
		start := 0
		for i := 1; i <= len(row); i++ {
			if i < len(row) && row[i].fg == row[start].fg && row[i].bg == row[start].bg {
				continue
			}
			b.WriteString(renderRun(row[start:i]))
			start = i
		}
		lines[r] = b.String()
	}
	return strings.Join(lines, "\n")
}

func renderRun(run []cell) string {
	if len(run) == 0 {
		return ""
	}
	var text strings.Builder
	for _, cl := range run {
		text.WriteString(cl.text)
	}
	if run[0].fg == "" && run[0].bg == "" {
		return text.String()
	}
	style := lipgloss.NewStyle()
	if run[0].fg != "" {
		style = style.Foreground(run[0].fg)
	}
	if run[0].bg != "" {
		style = style.Background(run[0].bg)
	}
	return style.Render(text.String())
}
