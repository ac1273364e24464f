package browser

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/LFroesch/lsl/internal/fileops"
	"github.com/LFroesch/lsl/internal/listing"
	"github.com/LFroesch/lsl/internal/logger"
	"github.com/LFroesch/lsl/internal/mode"
	"github.com/LFroesch/lsl/internal/search"
	"github.com/LFroesch/lsl/internal/utils"
)

func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle("lsl")
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case processExitMsg:
		if msg.err != nil {
			logger.Warn("%s exited: %v", msg.name, msg.err)
			m.setError(fmt.Errorf("%s: %w", msg.name, msg.err))
		}
		if msg.rebuild {
			_ = m.rebuild()
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m.quit()
		}
		switch m.mode.Kind() {
		case mode.Normal:
			return m.handleNormalKey(msg)
		case mode.DeleteConfirm:
			return m.handleConfirmKey(msg)
		case mode.Preview:
			m.mode = mode.NewNormal()
			return m, nil
		default:
			return m.handleBufferedKey(msg)
		}
	}
	return m, nil
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

func (m *Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode.Leader() {
		m.mode = m.mode.WithLeader(false)
		if msg.Type != tea.KeyRunes {
			return m, nil
		}
		switch string(msg.Runes) {
		case "f":
			m.enterPrompt(mode.ChangeDirectory)
		case "v":
			m.preview()
		}
		return m, nil
	}

	switch msg.Type {
	case tea.KeySpace:
		m.mode = m.mode.WithLeader(true)
		return m, nil
	case tea.KeyEnter:
		return m.enter()
	case tea.KeyEsc:
		m.escape()
		return m, nil
	case tea.KeyDown:
		m.cursor = m.cursor.Down(m.listing)
		return m, nil
	case tea.KeyUp:
		m.cursor = m.cursor.Up(m.listing)
		return m, nil
	case tea.KeyRunes:
	default:
		return m, nil
	}

	switch string(msg.Runes) {
	case "j":
		m.cursor = m.cursor.Down(m.listing)
	case "k":
		m.cursor = m.cursor.Up(m.listing)
	case "g":
		m.cursor = listing.Cursor{}
	case "G":
		m.cursor = listing.Last(m.listing)
	case ":":
		m.enterPrompt(mode.Command)
	case "n":
		m.enterPrompt(mode.AddEntry)
	case "/":
		m.enterPrompt(mode.Search)
	case "d":
		if name, _, ok := m.focused(); ok {
			m.clearStatus()
			m.mode = mode.NewConfirm(name)
		}
	case "y":
		m.copyFocusedPath()
	case "o":
		m.openFocused()
	case "q":
		return m.quit()
	}
	return m, nil
}

func (m *Model) enterPrompt(kind mode.Kind) {
	m.clearStatus()
	m.mode = mode.NewPrompt(kind)
	m.refreshMatches()
}

// refreshMatches recomputes what the popup above the input line shows for
// the active prompt.
func (m *Model) refreshMatches() {
	m.candidates, m.matches = nil, nil
	switch m.mode.Kind() {
	case mode.ChangeDirectory, mode.AddEntry:
		m.candidates = search.PrefixMatchNames(m.mode.Buffer(), m.listing.Page(m.cursor.Page))
	case mode.Search:
		m.matches = search.FuzzyMatchNames(m.mode.Buffer(), m.listing.Names())
	}
}

func (m *Model) handleBufferedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.leavePrompt()
		return m, nil
	case tea.KeyEnter:
		buffer := m.mode.Buffer()
		kind := m.mode.Kind()
		m.leavePrompt()
		return m.submit(kind, buffer)
	}

	m.mode = m.mode.Update(msg)
	m.refreshMatches()
	return m, nil
}

func (m *Model) leavePrompt() {
	m.mode = mode.NewNormal()
	m.candidates, m.matches = nil, nil
}

func (m *Model) submit(kind mode.Kind, buffer string) (tea.Model, tea.Cmd) {
	switch kind {
	case mode.Command:
		return m.runCommand(buffer)
	case mode.ChangeDirectory:
		m.changeDirectory(buffer)
	case mode.AddEntry:
		m.addEntry(buffer)
	case mode.Search:
		m.focusBestMatch(buffer)
	}
	return m, nil
}

func (m *Model) runCommand(buffer string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(buffer) == "q" {
		return m.quit()
	}
	fields := strings.Fields(buffer)
	if len(fields) == 0 {
		return m, nil
	}

	name, args := fields[0], fields[1:]
	cmd, err := m.launcher.Launch(name, args, func(err error) tea.Msg {
		return processExitMsg{name: name, rebuild: true, err: err}
	})
	if err != nil {
		logger.Warn("Cannot launch %s: %v", name, err)
		m.setError(err)
		_ = m.rebuild()
		return m, nil
	}
	logger.Info("Running %s %s", name, strings.Join(args, " "))
	return m, cmd
}

func (m *Model) changeDirectory(target string) {
	if target == "" {
		return
	}
	path := utils.ExpandPath(target)
	if !filepath.IsAbs(path) {
		path = filepath.Join(m.cwd, path)
	}
	if err := m.moveTo(path); err != nil {
		m.setError(fileops.FormatError(err, path, "cd"))
	}
}

func (m *Model) addEntry(name string) {
	if name == "" {
		return
	}
	path := filepath.Join(m.cwd, name)
	if err := m.fsys.CreateFile(path); err != nil {
		if errors.Is(err, fs.ErrExist) {
			m.setError(fileops.FormatError(err, path, "new"))
			return
		}
		logger.Info("Create file %s failed (%v), creating directory", name, err)
		if err := m.fsys.CreateDir(path); err != nil {
			m.setError(fileops.FormatError(err, path, "new"))
			return
		}
	}
	if m.rebuild() == nil {
		m.setStatus("created %s", name)
	}
}

func (m *Model) focusBestMatch(query string) {
	matches := search.FuzzyMatchNames(query, m.listing.Names())
	if len(matches) == 0 {
		if query != "" {
			m.setError(fmt.Errorf("no match for %q", query))
		}
		return
	}
	m.cursor = m.listing.Locate(matches[0].Index)
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		m.mode = mode.NewNormal()
		return m, nil
	}
	if msg.Type != tea.KeyRunes {
		return m, nil
	}
	switch strings.ToLower(string(msg.Runes)) {
	case "y":
		target := m.mode.Target()
		m.mode = mode.NewNormal()
		m.remove(target)
	case "n":
		m.mode = mode.NewNormal()
	}
	return m, nil
}

func (m *Model) remove(name string) {
	path := filepath.Join(m.cwd, name)
	info, err := m.fsys.Stat(path)
	if err != nil {
		m.setError(fileops.FormatError(err, path, "remove"))
		return
	}
	if info.IsDir {
		err = m.fsys.RemoveAll(path)
	} else {
		err = m.fsys.Remove(path)
	}
	if err != nil {
		m.setError(fileops.FormatError(err, path, "remove"))
		return
	}
	logger.Info("Removed %s", path)
	if m.rebuild() == nil {
		m.setStatus("removed %s", name)
	}
}

// enter descends into the focused directory. Anything Chdir refuses is
// opened in the editor instead.
func (m *Model) enter() (tea.Model, tea.Cmd) {
	_, path, ok := m.focused()
	if !ok {
		return m, nil
	}
	if err := m.moveTo(path); err != nil {
		return m, m.edit(path)
	}
	return m, nil
}

func (m *Model) escape() {
	parent := filepath.Dir(m.cwd)
	if err := m.moveTo(parent); err != nil {
		m.setError(fileops.FormatError(err, parent, "cd"))
	}
}

// moveTo changes into path and lists it. Only a failed Chdir is returned; a
// directory that cannot be listed is reported in the status line and the
// browser steps back to where it was.
func (m *Model) moveTo(path string) error {
	if err := m.fsys.Chdir(path); err != nil {
		return err
	}
	m.clearStatus()
	if err := m.rebuild(); err != nil {
		if back := m.fsys.Chdir(m.cwd); back != nil {
			logger.Error("Cannot return to %s: %v", m.cwd, back)
		}
	}
	return nil
}

func (m *Model) edit(path string) tea.Cmd {
	if m.editor == "" {
		m.setError(fmt.Errorf("no editor found, set one in the config file"))
		return nil
	}
	cmd, err := m.launcher.Launch(m.editor, []string{path}, func(err error) tea.Msg {
		return processExitMsg{name: m.editor, err: err}
	})
	if err != nil {
		m.setError(err)
		return nil
	}
	m.clearStatus()
	return cmd
}
