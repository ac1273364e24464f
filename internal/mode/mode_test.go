package mode

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(m Mode, s string) Mode {
	for _, r := range s {
		if r == ' ' {
			m = m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		m = m.Update(runes(string(r)))
	}
	return m
}

func TestPromptStartsEmpty(t *testing.T) {
	for _, k := range []Kind{Command, ChangeDirectory, AddEntry, Search} {
		m := NewPrompt(k)
		assert.Equal(t, k, m.Kind())
		assert.Empty(t, m.Buffer(), k.String())
	}
}

func TestPromptRejectsUnbufferedKinds(t *testing.T) {
	assert.Equal(t, Normal, NewPrompt(DeleteConfirm).Kind())
	assert.Equal(t, Normal, NewPrompt(Edit).Kind())
}

func TestBufferAppendsAndPops(t *testing.T) {
	m := typeText(NewPrompt(Command), "ls -la")
	assert.Equal(t, "ls -la", m.Buffer())

	m = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "ls -", m.Buffer())
}

func TestBackspaceOnEmptyBuffer(t *testing.T) {
	m := NewPrompt(AddEntry).Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, AddEntry, m.Kind())
	assert.Empty(t, m.Buffer())
}

func TestModesAreValues(t *testing.T) {
	before := typeText(NewPrompt(ChangeDirectory), "src")
	after := typeText(before, "/x")
	assert.Equal(t, "src", before.Buffer())
	assert.Equal(t, "src/x", after.Buffer())
}

func TestFreshPromptDiscardsPreviousBuffer(t *testing.T) {
	old := typeText(NewPrompt(Command), "make")
	assert.Equal(t, "make", old.Buffer())
	assert.Empty(t, NewNormal().Buffer())
	assert.Empty(t, NewPrompt(Command).Buffer())
}

func TestUnbufferedKindsIgnoreKeys(t *testing.T) {
	m := NewConfirm("notes.txt").Update(runes("x"))
	assert.Equal(t, DeleteConfirm, m.Kind())
	assert.Equal(t, "notes.txt", m.Target())
	assert.Empty(t, m.Buffer())

	p := NewPreview("main.go", []string{"package main"})
	assert.Equal(t, []string{"package main"}, p.Update(runes("j")).Lines())
}

func TestLeaderOnlyInNormal(t *testing.T) {
	m := NewNormal().WithLeader(true)
	assert.True(t, m.Leader())
	assert.False(t, m.WithLeader(false).Leader())

	assert.False(t, NewPrompt(Search).WithLeader(true).Leader())
}

func TestKindNames(t *testing.T) {
	assert.Equal(t, "cd", ChangeDirectory.String())
	assert.Equal(t, "unknown", Kind(99).String())
	assert.True(t, Search.Buffered())
	assert.False(t, Preview.Buffered())
}
