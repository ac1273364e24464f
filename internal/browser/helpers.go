package browser

import (
	"fmt"
	"os/exec"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/LFroesch/lsl/internal/fileops"
	"github.com/LFroesch/lsl/internal/logger"
	"github.com/LFroesch/lsl/internal/mode"
)

// ExecLauncher runs programs from PATH in the foreground. While the child
// runs, bubbletea leaves the alternate screen and shows the cursor, then
// restores both once it exits.
type ExecLauncher struct{}

func (ExecLauncher) Launch(name string, args []string, done func(error) tea.Msg) (tea.Cmd, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return nil, fmt.Errorf("%s: command not found", name)
	}
	return tea.ExecProcess(exec.Command(path, args...), done), nil
}

func (m *Model) preview() {
	name, path, ok := m.focused()
	if !ok {
		return
	}
	info, err := m.fsys.Stat(path)
	if err != nil {
		m.setError(fileops.FormatError(err, path, "preview"))
		return
	}
	if info.IsDir {
		m.setError(fmt.Errorf("preview: %s is a directory", name))
		return
	}
	lines, err := m.fsys.ReadLines(path, previewLines)
	if err != nil {
		logger.Warn("Preview of %s failed: %v", path, err)
		if len(lines) == 0 {
			m.setError(fileops.FormatError(err, path, "preview"))
			return
		}
	}
	m.clearStatus()
	m.mode = mode.NewPreview(name, lines)
}

func (m *Model) copyFocusedPath() {
	_, path, ok := m.focused()
	if !ok {
		return
	}
	if err := m.copyText(path); err != nil {
		m.setError(fmt.Errorf("failed to copy: %w", err))
		return
	}
	m.setStatus("copied: %s", path)
}

func (m *Model) openFocused() {
	name, path, ok := m.focused()
	if !ok {
		return
	}
	if err := m.openPath(path); err != nil {
		logger.Warn("Open %s failed: %v", path, err)
		m.setError(fmt.Errorf("failed to open %s: %w", name, err))
		return
	}
	m.setStatus("opened %s", name)
}
