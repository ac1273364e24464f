package browser

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/LFroesch/lsl/internal/mode"
	"github.com/LFroesch/lsl/internal/render"
)

const (
	markerWidth = 2
	permWidth   = 10

	// Popups never draw more than this many rows.
	maxPopupRows  = 8
	minPopupWidth = 24
)

const normalHint = "j/k move  enter open  esc up  : cmd  n new  d del  / find  q quit"

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	canvas := render.NewCanvas(m.width, m.height)
	m.draw(canvas)
	return canvas.String()
}

// draw renders one frame: the listing panel, any popup for the active mode
// and the input line on the last row.
func (m *Model) draw(s render.Surface) {
	width, height := s.Size()
	if width <= 0 || height <= 0 {
		return
	}

	if m.mode.Kind() == mode.Preview {
		m.drawPreview(s, width)
	} else {
		m.drawListing(s, width)
	}

	switch m.mode.Kind() {
	case mode.ChangeDirectory, mode.AddEntry:
		m.drawCandidates(s, width, height)
	case mode.Search:
		m.drawMatches(s, width, height)
	case mode.DeleteConfirm:
		m.drawConfirm(s, width, height)
	}

	m.drawInputLine(s, width, height)
}

func (m *Model) title() string {
	if m.branch == "" {
		return m.cwd
	}
	return fmt.Sprintf("%s (%s)", m.cwd, m.branch)
}

func (m *Model) drawListing(s render.Surface, width int) {
	win := render.NewWindow(s, render.WindowConfig{
		Width:  width,
		Height: m.capacity(),
		Title:  m.title(),
	})
	win.TopLine()

	page := m.listing.Page(m.cursor.Page)
	if len(page) == 0 {
		win.SetColor(render.ColorMuted).Put("(empty)")
	}
	cols := m.columns(win.ContentWidth())
	for row, name := range page {
		focused := row == m.cursor.Row
		win.PutLine(func(l *render.TextLine) {
			m.drawEntry(l, cols, name, focused)
		})
	}
	for i := max(len(page), 1); i < m.capacity(); i++ {
		win.Put("")
	}

	label := "empty"
	if n := m.listing.PageCount(); n > 0 {
		label = fmt.Sprintf("page %d/%d", m.cursor.Page+1, n)
	}
	if k := m.mode.Kind(); k != mode.Normal {
		label = k.String()
	}
	win.BottomLine(label)
}

// columnSet is the width given to each part of an entry row. A zero width
// means the column does not fit and is left out.
type columnSet struct {
	name, size, perm, time int
}

func (m *Model) columns(content int) columnSet {
	cols := columnSet{
		name: m.listing.MaxNameWidth(),
		size: m.listing.MaxSizeWidth(),
		perm: permWidth,
		time: runewidth.StringWidth(time.Unix(0, 0).Format(m.config.TimeFormat)),
	}
	const sep = 3
	fixed := markerWidth + markerWidth
	extra := func() int {
		n := 0
		for _, w := range []int{cols.size, cols.perm, cols.time} {
			if w > 0 {
				n += w + sep
			}
		}
		return n
	}
	// Drop columns from the right until the name gets at least a little room.
	for _, drop := range []*int{&cols.time, &cols.perm, &cols.size} {
		if fixed+min(cols.name, 8)+extra() <= content {
			break
		}
		*drop = 0
	}
	cols.name = max(min(cols.name, content-fixed-extra()), 0)
	return cols
}

func (m *Model) drawEntry(l *render.TextLine, cols columnSet, name string, focused bool) {
	l.Focus(focused)

	info, err := m.fsys.Stat(filepath.Join(m.cwd, name))
	marker := ""
	if m.modified[name] {
		marker = "●"
	}
	l.CreateTextBox(render.ColorModified, markerWidth)
	l.Put(marker)

	nameColor := render.ColorText
	if err == nil && info.IsDir {
		nameColor = render.ColorDirectory
	}
	l.CreateTextBox(nameColor, cols.name)
	l.Put(runewidth.Truncate(name, cols.name, "…"))

	size, perm, modTime := "?", "?", ""
	if err == nil {
		size = strconv.FormatInt(info.Size, 10)
		perm = info.Mode.String()
		modTime = info.ModTime.Format(m.config.TimeFormat)
	}
	if cols.size > 0 {
		l.Separate()
		l.CreateTextBox(render.ColorMuted, cols.size)
		l.Put(fmt.Sprintf("%*s", cols.size, size))
	}
	if cols.perm > 0 {
		l.Separate()
		l.CreateTextBox(render.ColorMuted, cols.perm)
		l.Put(perm)
	}
	if cols.time > 0 {
		l.Separate()
		l.CreateTextBox(render.ColorMuted, cols.time)
		l.Put(modTime)
	}
}

func (m *Model) drawPreview(s render.Surface, width int) {
	win := render.NewWindow(s, render.WindowConfig{
		Width:  width,
		Height: m.capacity(),
		Title:  "preview: " + m.mode.Target(),
	})
	win.TopLine()
	lines := m.mode.Lines()
	if len(lines) == 0 {
		win.SetColor(render.ColorMuted).Put("(empty file)")
	}
	for _, line := range lines {
		win.Put(strings.ReplaceAll(line, "\t", "    "))
	}
	for i := max(len(lines), 1); i < m.capacity(); i++ {
		win.Put("")
	}
	win.BottomLine("any key to return")
}

// popupRow is one popup entry; marked holds byte offsets drawn highlighted.
type popupRow struct {
	text   string
	marked []int
}

func plainRows(lines ...string) []popupRow {
	rows := make([]popupRow, len(lines))
	for i, line := range lines {
		rows[i] = popupRow{text: line}
	}
	return rows
}

// popup draws a titled window whose last row sits just above the panel's
// bottom rule. Rows that do not fit collapse into a trailing "+N more".
func (m *Model) popup(s render.Surface, width, height int, title string, color lipgloss.Color, rows []popupRow) {
	n := min(len(rows), maxPopupRows, max(m.capacity()-1, 1))
	shown, more := rows[:n], ""
	if len(rows) > n {
		shown = rows[:n-1]
		more = fmt.Sprintf("+%d more", len(rows)-len(shown))
	}
	w := max(runewidth.StringWidth(title)+6, runewidth.StringWidth(more)+4, minPopupWidth)
	for _, row := range shown {
		w = max(w, runewidth.StringWidth(row.text)+4)
	}
	w = min(w, max(width-4, 0))

	cfg := render.WindowConfig{Col: 2, Width: w, Height: n, Title: title, Color: color}
	win := render.NewWindow(s, cfg.AnchorBottom(height-2))
	win.TopLine()
	for _, row := range shown {
		win.PutMarked(row.text, row.marked, render.ColorTitle)
	}
	if more != "" {
		win.SetColor(render.ColorMuted).Put(more)
	}
}

func (m *Model) drawCandidates(s render.Surface, width, height int) {
	if len(m.candidates) == 0 {
		m.popup(s, width, height, "", render.ColorError, plainRows("not found"))
		return
	}
	m.popup(s, width, height, "matches", render.ColorAccent, plainRows(m.candidates...))
}

func (m *Model) drawMatches(s render.Surface, width, height int) {
	if m.mode.Buffer() == "" {
		return
	}
	if len(m.matches) == 0 {
		m.popup(s, width, height, "", render.ColorError, plainRows("not found"))
		return
	}
	rows := make([]popupRow, len(m.matches))
	for i, match := range m.matches {
		rows[i] = popupRow{text: match.Name, marked: match.MatchedIndexes}
	}
	m.popup(s, width, height, "search", render.ColorAccent, rows)
}

func (m *Model) drawConfirm(s render.Surface, width, height int) {
	prompt := fmt.Sprintf(`remove "%s" ? [Y/N]`, m.mode.Target())
	m.popup(s, width, height, "delete", render.ColorError, plainRows(prompt))
}

// drawInputLine fills the last row with the live buffer, a status message
// or the key hint.
func (m *Model) drawInputLine(s render.Surface, width, height int) {
	s.MoveTo(height-1, 0)
	s.ResetStyle()
	s.ClearLine()
	line := render.NewTextLine(s, width)

	switch {
	case m.mode.Kind().Buffered():
		label := m.mode.Kind().String() + " "
		line.CreateTextBox(render.ColorTitle, runewidth.StringWidth(label))
		line.Put(label)
		text := "[" + m.mode.Buffer() + "]"
		line.CreateTextBox(render.ColorText, runewidth.StringWidth(text))
		line.Put(text)
	case m.status != "":
		color := render.ColorAccent
		if m.statusIsErr {
			color = render.ColorError
		}
		line.CreateTextBox(color, width)
		line.Put(runewidth.Truncate(m.status, width, "…"))
	case m.mode.Kind() == mode.DeleteConfirm:
		line.CreateTextBox(render.ColorMuted, width)
		line.Put("y remove  n/esc keep")
	default:
		line.CreateTextBox(render.ColorMuted, width)
		line.Put(runewidth.Truncate(normalHint, width, "…"))
	}
	line.Blank()
	s.ResetStyle()
}
