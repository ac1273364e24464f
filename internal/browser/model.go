// Package browser is the interactive directory browser: it owns the listing,
// the focus cursor and the active mode, and turns key presses into
// filesystem and process actions.
package browser

import (
	"fmt"
	"path/filepath"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/skratchdot/open-golang/open"

	"github.com/LFroesch/lsl/internal/config"
	"github.com/LFroesch/lsl/internal/fileops"
	"github.com/LFroesch/lsl/internal/git"
	"github.com/LFroesch/lsl/internal/listing"
	"github.com/LFroesch/lsl/internal/logger"
	"github.com/LFroesch/lsl/internal/mode"
	"github.com/LFroesch/lsl/internal/search"
	"github.com/LFroesch/lsl/internal/utils"
)

// Rows that never hold entries: the panel's top rule, its bottom rule and
// the input line.
const reservedRows = 3

// Size used until the terminal reports its own.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

const previewLines = 200

// Filesystem is everything the browser does to disk.
type Filesystem interface {
	listing.Lister
	CreateFile(path string) error
	CreateDir(path string) error
	Remove(path string) error
	RemoveAll(path string) error
	Getwd() (string, error)
	Chdir(path string) error
	ReadLines(path string, n int) ([]string, error)
}

var _ Filesystem = fileops.OS{}

// Launcher runs external programs with the terminal handed over to them.
// Launch fails when the program cannot be started at all; otherwise the
// returned command reports the exit through done.
type Launcher interface {
	Launch(name string, args []string, done func(error) tea.Msg) (tea.Cmd, error)
}

// processExitMsg arrives once an editor or command has finished.
type processExitMsg struct {
	name    string
	rebuild bool
	err     error
}

// Option customizes a Model.
type Option func(*Model)

// WithClipboard replaces the system clipboard writer.
func WithClipboard(write func(string) error) Option {
	return func(m *Model) { m.copyText = write }
}

// WithOpener replaces the desktop "open with default application" call.
func WithOpener(run func(string) error) Option {
	return func(m *Model) { m.openPath = run }
}

// WithGit replaces the git lookups used for the title and row markers.
func WithGit(branch func(dir string) string, modified func(dir string) map[string]bool) Option {
	return func(m *Model) {
		m.gitBranch = branch
		m.gitModified = modified
	}
}

// Model is the bubbletea model of the browser.
type Model struct {
	fsys     Filesystem
	launcher Launcher
	config   *config.Config
	editor   string
	visible  func(name string) bool
	order    listing.Order

	copyText    func(string) error
	openPath    func(string) error
	gitBranch   func(dir string) string
	gitModified func(dir string) map[string]bool

	cwd        string
	listing    *listing.Listing
	cursor     listing.Cursor
	mode       mode.Mode
	candidates []string
	matches    []search.MatchResult
	branch     string
	modified   map[string]bool

	status      string
	statusIsErr bool

	width, height int
	quitting      bool
}

// New builds the browser over the current working directory.
func New(fsys Filesystem, launcher Launcher, cfg *config.Config, opts ...Option) (*Model, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	editor := cfg.Editor
	if editor == "" {
		editor = utils.FirstCommand("nvim", "vim", "nano", "vi")
	}

	m := &Model{
		fsys:        fsys,
		launcher:    launcher,
		config:      cfg,
		editor:      editor,
		visible:     cfg.Visible(),
		order:       listing.ParseOrder(cfg.Sort),
		copyText:    clipboard.WriteAll,
		openPath:    open.Run,
		gitBranch:   git.GetBranch,
		gitModified: git.ModifiedEntries,
		mode:        mode.NewNormal(),
		modified:    map[string]bool{},
		width:       defaultWidth,
		height:      defaultHeight,
	}
	for _, opt := range opts {
		opt(m)
	}

	cwd, err := fsys.Getwd()
	if err != nil {
		return nil, fmt.Errorf("cannot read working directory: %w", err)
	}
	m.cwd = cwd
	if err := m.rebuild(); err != nil {
		return nil, err
	}
	logger.Info("Browsing %s", cwd)
	return m, nil
}

// capacity is the number of entry rows that fit in the current viewport.
func (m *Model) capacity() int {
	return max(m.height-reservedRows, 1)
}

// rebuild rereads the working directory and resets focus to the first
// entry. On failure the previous listing and cursor stay in place.
func (m *Model) rebuild() error {
	cwd, err := m.fsys.Getwd()
	if err != nil {
		m.setError(fmt.Errorf("cannot read working directory: %w", err))
		return err
	}

	l, err := listing.Build(m.fsys, cwd, m.capacity(),
		listing.WithOrder(m.order),
		listing.WithFilter(m.visible),
	)
	if err != nil {
		logger.Warn("Rebuild of %s failed: %v", cwd, err)
		m.setError(err)
		return err
	}

	m.cwd = l.Dir()
	m.listing = l
	m.cursor = listing.Cursor{}
	m.refreshGit()
	return nil
}

func (m *Model) refreshGit() {
	m.branch = ""
	m.modified = map[string]bool{}
	if !m.config.GitStatus {
		return
	}
	if m.gitBranch != nil {
		m.branch = m.gitBranch(m.cwd)
	}
	if m.gitModified != nil {
		if mod := m.gitModified(m.cwd); mod != nil {
			m.modified = mod
		}
	}
}

// resize repaginates for the new viewport and keeps focus on the same entry.
func (m *Model) resize(width, height int) {
	m.width, m.height = max(width, 0), max(height, 0)
	if m.listing == nil {
		return
	}
	index := m.listing.Index(m.cursor)
	m.listing = m.listing.Repaginate(m.capacity())
	m.cursor = m.listing.Locate(index)
	m.refreshMatches()
}

// focused returns the name under the cursor and its absolute path.
func (m *Model) focused() (name, path string, ok bool) {
	name, ok = m.listing.Entry(m.cursor)
	if !ok {
		return "", "", false
	}
	return name, filepath.Join(m.cwd, name), true
}

func (m *Model) setStatus(format string, args ...any) {
	m.status = fmt.Sprintf(format, args...)
	m.statusIsErr = false
}

func (m *Model) setError(err error) {
	m.status = err.Error()
	m.statusIsErr = true
}

func (m *Model) clearStatus() {
	m.status = ""
	m.statusIsErr = false
}

// Cwd is the directory being shown.
func (m *Model) Cwd() string { return m.cwd }

// Listing is the current paged listing.
func (m *Model) Listing() *listing.Listing { return m.listing }

func (m *Model) Cursor() listing.Cursor { return m.cursor }

func (m *Model) Mode() mode.Mode { return m.mode }

// Candidates are the autocomplete names shown for the cd and new prompts.
func (m *Model) Candidates() []string { return m.candidates }

// Status is the message shown in the input line, if any.
func (m *Model) Status() string { return m.status }

// Quitting reports whether the browser asked the program to exit.
func (m *Model) Quitting() bool { return m.quitting }
