// Package mode holds the browser's input mode: which kind of interaction is
// active and the state that kind owns.
package mode

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type Kind int

const (
	Normal Kind = iota
	Command
	ChangeDirectory
	AddEntry
	DeleteConfirm
	Search
	Preview
	// Edit is reserved and never entered.
	Edit
)

func (k Kind) String() string {
	switch k {
	case Normal:
		return "normal"
	case Command:
		return "command"
	case ChangeDirectory:
		return "cd"
	case AddEntry:
		return "new"
	case DeleteConfirm:
		return "delete"
	case Search:
		return "search"
	case Preview:
		return "preview"
	case Edit:
		return "edit"
	}
	return "unknown"
}

// Buffered reports whether the kind collects typed text.
func (k Kind) Buffered() bool {
	switch k {
	case Command, ChangeDirectory, AddEntry, Search:
		return true
	}
	return false
}

// Mode is a value; transitions replace it wholesale so no buffer survives
// leaving a mode.
type Mode struct {
	kind   Kind
	input  textinput.Model
	leader bool
	target string
	lines  []string
}

// NewNormal returns the idle mode with no pending leader.
func NewNormal() Mode {
	return Mode{kind: Normal}
}

// NewPrompt enters a buffered kind with an empty, focused buffer. A kind
// that takes no text falls back to Normal.
func NewPrompt(kind Kind) Mode {
	if !kind.Buffered() {
		return NewNormal()
	}
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 256
	ti.Focus()
	return Mode{kind: kind, input: ti}
}

// NewConfirm asks whether target should be deleted.
func NewConfirm(target string) Mode {
	return Mode{kind: DeleteConfirm, target: target}
}

// NewPreview shows lines read from target until the next key.
func NewPreview(target string, lines []string) Mode {
	return Mode{kind: Preview, target: target, lines: lines}
}

func (m Mode) Kind() Kind { return m.kind }

// Buffer is the text typed so far, empty for kinds without a buffer.
func (m Mode) Buffer() string {
	if !m.kind.Buffered() {
		return ""
	}
	return m.input.Value()
}

// Target is the entry a DeleteConfirm or Preview refers to.
func (m Mode) Target() string { return m.target }

func (m Mode) Lines() []string { return m.lines }

// Leader reports whether space was pressed in Normal and the next key
// completes a chord.
func (m Mode) Leader() bool { return m.leader }

// WithLeader sets or clears the pending leader. Only Normal carries one.
func (m Mode) WithLeader(on bool) Mode {
	if m.kind == Normal {
		m.leader = on
	}
	return m
}

// Update feeds a key to the buffer. Printable keys append, backspace
// removes the character before the cursor. Kinds without a buffer ignore
// the key.
func (m Mode) Update(msg tea.KeyMsg) Mode {
	if !m.kind.Buffered() {
		return m
	}
	m.input, _ = m.input.Update(msg)
	return m
}
