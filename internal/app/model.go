// Package app is the full-screen editor shell: menu bar, file tree, editor
// pane, status bar and dialogs.
package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/iw2rmb/procode/editor"
	"github.com/iw2rmb/procode/internal/logging"
	"github.com/iw2rmb/procode/internal/settings"
	"github.com/iw2rmb/procode/internal/workspace"
	"github.com/iw2rmb/procode/syntax"
)

// Options wires the shell to its collaborators.
type Options struct {
	Workspace *workspace.Workspace
	// Store persists the font on exit. Nil keeps defaults and saves nothing.
	Store  *settings.Store
	Logger *log.Logger

	Theme          syntax.Theme
	PositionMode   syntax.PositionMode
	HighlightDelay time.Duration
	Clipboard      editor.Clipboard

	// FilePath is opened at start. A missing file starts an empty buffer
	// that saves to it.
	FilePath string

	// TreeWidth is the file tree width including its border. Default 24.
	TreeWidth int
}

type focusArea int

const (
	focusEditor focusArea = iota
	focusTree
)

type treeLoadedMsg struct {
	entries []workspace.Entry
	err     error
}

// Model is the root Bubble Tea model.
type Model struct {
	ws      *workspace.Workspace
	store   *settings.Store
	logger  *log.Logger
	keys    KeyMap
	styles  Styles
	actions map[Action]actionFunc
	mode    syntax.PositionMode

	session         Session
	initialSettings settings.Settings

	editor editor.Model
	tree   fileTree
	menu   menuBar
	dialog dialog
	focus  focusArea

	width, height int
	treeWidth     int
	status        string
	quitting      bool
}

func New(opts Options) Model {
	if opts.Workspace == nil {
		opts.Workspace = workspace.OS(".")
	}
	if opts.Logger == nil {
		opts.Logger = logging.Default()
	}
	if opts.Theme == nil {
		opts.Theme = syntax.DefaultTheme()
	}
	if opts.TreeWidth <= 0 {
		opts.TreeWidth = 24
	}

	st := settings.Defaults()
	if opts.Store != nil {
		st = opts.Store.Load()
	}

	m := Model{
		ws:              opts.Workspace,
		store:           opts.Store,
		logger:          opts.Logger,
		keys:            DefaultKeyMap(),
		styles:          DefaultStyles(),
		actions:         defaultActions(),
		mode:            opts.PositionMode,
		initialSettings: st,
		session:         Session{Font: st.Font, Dir: opts.Workspace.Dir()},
		menu:            newMenuBar(),
		treeWidth:       opts.TreeWidth,
	}
	m.editor = editor.New(editor.Config{
		Style:          EditorStyle(opts.Theme),
		AutoIndent:     true,
		Clipboard:      opts.Clipboard,
		HighlightDelay: opts.HighlightDelay,
	})
	m.session.setPath("", nil)
	m.session.savedVersion = m.editor.Buffer().TextVersion()
	m.applyLanguage()

	if opts.FilePath != "" {
		m.openInitial(opts.FilePath)
	}
	m.focusEditor()
	return m
}

// openInitial opens the command-line file; a path that does not exist yet
// becomes the save target of an empty buffer.
func (m *Model) openInitial(path string) {
	path = m.ws.Resolve(path)
	if _, err := m.ws.Fs().Stat(path); errors.Is(err, fs.ErrNotExist) {
		m.session.setPath(path, nil)
		m.applyLanguage()
		m.setStatus("new file " + filepath.Base(path))
		return
	}
	m.openPath(path)
}

func (m Model) Init() tea.Cmd { return m.refreshTree() }

// Session returns a copy of the current session.
func (m Model) Session() Session { return m.session }

// Editor returns the editor pane.
func (m Model) Editor() editor.Model { return m.editor }

// Quitting reports whether Exit ran.
func (m Model) Quitting() bool { return m.quitting }

// Modified reports whether the buffer differs from what was last loaded or
// saved.
func (m Model) Modified() bool {
	return m.editor.Buffer().TextVersion() != m.session.savedVersion
}

func (m *Model) applyLanguage() {
	m.editor = m.editor.SetHighlighter(newHighlighter(m.session.Language, m.mode))
}

func (m *Model) setStatus(s string) { m.status = s }

func (m *Model) refreshTree() tea.Cmd {
	ws := m.ws
	return func() tea.Msg {
		entries, err := ws.List(context.Background())
		return treeLoadedMsg{entries: entries, err: err}
	}
}

func (m *Model) focusEditor() {
	m.focus = focusEditor
	m.editor = m.editor.Focus()
}

func (m *Model) toggleFocus() tea.Cmd {
	if m.focus == focusEditor {
		m.focus = focusTree
		m.editor = m.editor.Blur()
		return nil
	}
	m.focusEditor()
	return nil
}

func (m *Model) openDialog() tea.Cmd {
	d, cmd := newOpenDialog(m.session.Dir, m.width, max(m.bodyHeight()-8, 3))
	m.dialog = d
	return cmd
}

func (m *Model) saveAsDialog() tea.Cmd {
	d, cmd := newSaveAsDialog(m.workspaceName(m.session.FilePath))
	m.dialog = d
	return cmd
}

// workspaceName is path relative to the workspace directory, the form the
// Save As prompt takes back through Resolve.
func (m Model) workspaceName(path string) string {
	if path == "" {
		return ""
	}
	if rel, err := filepath.Rel(m.ws.Dir(), path); err == nil {
		return rel
	}
	return path
}

func (m *Model) settingsDialog() tea.Cmd {
	m.dialog = newSettingsDialog()
	return nil
}

func (m *Model) fontDialog() tea.Cmd {
	m.dialog = newFontDialog(m.session.Font)
	return nil
}

func (m Model) bodyHeight() int { return max(m.height-2, 0) }

// layout sizes the panes: menu bar and status bar take one row each, the
// tree takes a fixed width capped at a third of the screen.
func (m *Model) layout() {
	tw := min(m.treeWidth, m.width/3)
	body := m.bodyHeight()
	m.tree = m.tree.setSize(max(tw-1, 0), body)
	m.editor = m.editor.SetSize(m.width-tw, body)
}

func (m Model) treePaneWidth() int { return min(m.treeWidth, m.width/3) }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil
	case treeLoadedMsg:
		if msg.err != nil {
			m.logger.Warn("list directory", logging.FieldDir, m.session.Dir, logging.FieldError, msg.err)
		}
		m.tree = m.tree.setEntries(msg.entries, msg.err)
		return m, nil
	case dialogClosedMsg:
		m.dialog = nil
		return m, nil
	case saveAsMsg:
		m.dialog = nil
		cmd := m.writeTo(m.ws.Resolve(msg.path))
		return m, cmd
	case openFileMsg:
		m.dialog = nil
		cmd := m.openPath(msg.path)
		return m, cmd
	case settingsSavedMsg:
		m.logger.Info("settings acknowledged",
			logging.FieldOption, msg.enabled,
			logging.FieldValue, msg.text)
		m.dialog = newNotice("Settings Saved", "Settings have been saved.")
		return m, nil
	case fontChosenMsg:
		m.dialog = nil
		m.setFont(msg.font)
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	}

	var cmds []tea.Cmd
	if m.dialog != nil {
		var cmd tea.Cmd
		m.dialog, cmd = m.dialog.Update(msg)
		cmds = append(cmds, cmd)
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.dialog != nil {
		var cmd tea.Cmd
		m.dialog, cmd = m.dialog.Update(msg)
		return m, cmd
	}
	if m.menu.isOpen() {
		return m.updateMenuKey(msg)
	}

	for _, sc := range m.keys.shortcuts() {
		if key.Matches(msg, sc.binding) {
			cmd := m.dispatch(sc.action)
			return m, cmd
		}
	}
	if i, ok := m.menuKey(msg); ok {
		m.menu = m.menu.openAt(i)
		return m, nil
	}

	if m.focus == focusTree {
		return m.updateTreeKey(msg)
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

// menuKey maps F10 and the alt accelerators to a menu index.
func (m Model) menuKey(msg tea.KeyMsg) (int, bool) {
	switch {
	case key.Matches(msg, m.keys.Menu), key.Matches(msg, m.keys.FileMenu):
		return 0, true
	case key.Matches(msg, m.keys.EditMenu):
		return 1, true
	case key.Matches(msg, m.keys.ViewMenu):
		return 2, true
	case key.Matches(msg, m.keys.PrefsMenu):
		return 3, true
	}
	return 0, false
}

func (m Model) updateMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if i, ok := m.menuKey(msg); ok {
		if key.Matches(msg, m.keys.Menu) || i == m.menu.open {
			m.menu = m.menu.close()
		} else {
			m.menu = m.menu.openAt(i)
		}
		return m, nil
	}
	switch msg.String() {
	case "esc":
		m.menu = m.menu.close()
	case "left":
		m.menu = m.menu.switchMenu(-1)
	case "right":
		m.menu = m.menu.switchMenu(1)
	case "up":
		m.menu = m.menu.moveCursor(-1)
	case "down":
		m.menu = m.menu.moveCursor(1)
	case "enter":
		a := m.menu.selected()
		m.menu = m.menu.close()
		cmd := m.dispatch(a)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateTreeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		m.tree = m.tree.move(-1)
	case "down", "j":
		m.tree = m.tree.move(1)
	case "pgup":
		m.tree = m.tree.move(-max(m.tree.height, 1))
	case "pgdown":
		m.tree = m.tree.move(max(m.tree.height, 1))
	case "home", "g":
		m.tree = m.tree.moveTo(0)
	case "end", "G":
		m.tree = m.tree.moveTo(len(m.tree.entries) - 1)
	case "enter":
		cmd := m.openSelected()
		return m, cmd
	case "esc":
		m.focusEditor()
	case "r":
		return m, m.refreshTree()
	}
	return m, nil
}

// openSelected opens the tree entry under the cursor. Directories are
// ignored.
func (m *Model) openSelected() tea.Cmd {
	e, ok := m.tree.selected()
	if !ok || e.IsDir || !m.ws.IsRegular(e.Path) {
		return nil
	}
	return m.openPath(e.Path)
}

func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.dialog != nil {
		return m, nil
	}
	press := msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft

	if m.menu.isOpen() && press {
		m.menu = m.menu.close()
		if msg.Y != 0 {
			return m, nil
		}
	}
	if msg.Y == 0 {
		if press {
			offsets := m.menu.titleOffsets(m.styles)
			for i := len(offsets) - 1; i >= 0; i-- {
				if msg.X >= offsets[i] {
					m.menu = m.menu.openAt(i)
					break
				}
			}
		}
		return m, nil
	}
	if msg.Y > m.bodyHeight() {
		return m, nil
	}

	tw := m.treePaneWidth()
	if msg.X < tw {
		switch {
		case press:
			if i := m.tree.rowAt(msg.Y - 1); i >= 0 {
				m.tree = m.tree.moveTo(i)
			}
			m.focus = focusTree
			m.editor = m.editor.Blur()
		case msg.Button == tea.MouseButtonWheelUp:
			m.tree = m.tree.move(-1)
		case msg.Button == tea.MouseButtonWheelDown:
			m.tree = m.tree.move(1)
		}
		return m, nil
	}

	if press && m.focus != focusEditor {
		m.focusEditor()
	}
	msg.X -= tw
	msg.Y--
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.quitting || m.width <= 0 || m.height <= 0 {
		return ""
	}
	st := m.styles
	bar := m.menu.viewBar(st, m.width)

	tree := st.Tree.Height(m.bodyHeight()).Render(m.tree.view(st, m.focus == focusTree))
	if m.treePaneWidth() <= 0 {
		tree = ""
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, tree, m.editor.View())
	screen := lipgloss.JoinVertical(lipgloss.Left, bar, body, m.statusView())

	if m.menu.isOpen() {
		screen = placeOver(screen, m.menu.viewDropdown(st), m.menu.titleOffsets(st)[m.menu.open], 1)
	}
	if m.dialog != nil {
		screen = placeCenter(screen, m.dialog.View(st), m.width, m.height)
	}
	return screen
}

func (m Model) statusView() string {
	st := m.styles
	title := m.session.Title()
	if m.Modified() {
		title += " ●"
	}
	lang := m.session.Language
	if lang == "" {
		lang = "plain text"
	}
	cur := m.editor.Buffer().Cursor()
	right := fmt.Sprintf("%s · %s · Ln %d, Col %d ", m.session.Font, lang, cur.Row+1, cur.Col+1)
	left := " " + title
	if m.status != "" {
		left += "  " + st.StatusInfo.Render(m.status)
	}
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	line := left + strings.Repeat(" ", gap) + right
	return st.StatusBar.Width(m.width).MaxWidth(m.width).MaxHeight(1).Render(line)
}
