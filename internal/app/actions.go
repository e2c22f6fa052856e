package app

import (
	"context"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/procode/internal/logging"
	"github.com/iw2rmb/procode/internal/settings"
)

// Action names an operation reachable from the menu bar or a shortcut.
type Action int

const (
	ActionNone Action = iota
	ActionNew
	ActionOpen
	ActionSave
	ActionSaveAs
	ActionExit
	ActionUndo
	ActionRedo
	ActionCut
	ActionCopy
	ActionPaste
	ActionSelectAll
	ActionToggleFolding
	ActionSettings
	ActionFont
	ActionZoomIn
	ActionZoomOut
	ActionIncreaseFont
	ActionToggleFocus
)

var actionNames = map[Action]string{
	ActionNew:           "New",
	ActionOpen:          "Open",
	ActionSave:          "Save",
	ActionSaveAs:        "Save As",
	ActionExit:          "Exit",
	ActionUndo:          "Undo",
	ActionRedo:          "Redo",
	ActionCut:           "Cut",
	ActionCopy:          "Copy",
	ActionPaste:         "Paste",
	ActionSelectAll:     "Select All",
	ActionToggleFolding: "Toggle Code Folding",
	ActionSettings:      "Settings",
	ActionFont:          "Font",
	ActionZoomIn:        "Zoom In",
	ActionZoomOut:       "Zoom Out",
	ActionIncreaseFont:  "Increase Font",
	ActionToggleFocus:   "Toggle Focus",
}

func (a Action) String() string {
	if s, ok := actionNames[a]; ok {
		return s
	}
	return "none"
}

// actionFunc runs one action against the model.
type actionFunc func(m *Model) tea.Cmd

func defaultActions() map[Action]actionFunc {
	return map[Action]actionFunc{
		ActionNew:           (*Model).newFile,
		ActionOpen:          (*Model).openDialog,
		ActionSave:          (*Model).save,
		ActionSaveAs:        (*Model).saveAsDialog,
		ActionExit:          (*Model).exit,
		ActionUndo:          editorAction(editorUndo),
		ActionRedo:          editorAction(editorRedo),
		ActionCut:           editorAction(editorCut),
		ActionCopy:          editorAction(editorCopy),
		ActionPaste:         editorAction(editorPaste),
		ActionSelectAll:     editorAction(editorSelectAll),
		ActionToggleFolding: (*Model).toggleFolding,
		ActionSettings:      (*Model).settingsDialog,
		ActionFont:          (*Model).fontDialog,
		ActionZoomIn:        zoomAction(1),
		ActionZoomOut:       zoomAction(-1),
		ActionIncreaseFont:  (*Model).increaseFont,
		ActionToggleFocus:   (*Model).toggleFocus,
	}
}

// dispatch runs a; unknown actions are ignored.
func (m *Model) dispatch(a Action) tea.Cmd {
	fn, ok := m.actions[a]
	if !ok {
		return nil
	}
	m.logger.Debug("action", logging.FieldAction, a.String())
	return fn(m)
}

func (m *Model) newFile() tea.Cmd {
	m.editor = m.editor.SetText("")
	m.session.setPath("", nil)
	m.session.savedVersion = m.editor.Buffer().TextVersion()
	m.applyLanguage()
	m.focusEditor()
	m.setStatus("new file")
	return nil
}

// openPath loads path, already resolved, into the editor, replacing the
// buffer. Failures leave the buffer untouched and raise a notice.
func (m *Model) openPath(path string) tea.Cmd {
	text, err := m.ws.ReadFile(context.Background(), path)
	if err != nil {
		return m.fail("Open failed", err)
	}
	m.editor = m.editor.SetText(text)
	m.session.setPath(path, []byte(text))
	m.session.savedVersion = m.editor.Buffer().TextVersion()
	m.applyLanguage()
	m.focusEditor()
	m.logger.Info("opened",
		logging.FieldPath, path,
		logging.FieldLines, m.editor.Buffer().LineCount(),
		logging.FieldLanguage, m.session.Language)
	m.setStatus("opened " + filepath.Base(path))
	return nil
}

// save writes to the session path, or asks for one when the buffer is
// untitled.
func (m *Model) save() tea.Cmd {
	if m.session.FilePath == "" {
		return m.saveAsDialog()
	}
	return m.writeTo(m.session.FilePath)
}

// writeTo saves the buffer to path, which must already be resolved.
func (m *Model) writeTo(path string) tea.Cmd {
	text := m.editor.Text()
	if err := m.ws.WriteFile(context.Background(), path, text); err != nil {
		return m.fail("Save failed", err)
	}
	if path != m.session.FilePath {
		m.session.setPath(path, []byte(text))
		m.applyLanguage()
	}
	m.session.savedVersion = m.editor.Buffer().TextVersion()
	m.logger.Info("saved", logging.FieldPath, path)
	m.setStatus("saved " + filepath.Base(path))
	return m.refreshTree()
}

// exit persists the font preference and quits. A failed settings write is
// logged; it never keeps the editor open.
func (m *Model) exit() tea.Cmd {
	if m.store != nil {
		st := m.initialSettings
		st.Font = m.session.Font
		if err := m.store.Save(st); err != nil {
			m.logger.Error("settings not saved", logging.FieldError, err)
		}
	}
	m.quitting = true
	return tea.Quit
}

type editorOp int

const (
	editorUndo editorOp = iota
	editorRedo
	editorCut
	editorCopy
	editorPaste
	editorSelectAll
)

func editorAction(op editorOp) actionFunc {
	return func(m *Model) tea.Cmd {
		var cmd tea.Cmd
		switch op {
		case editorUndo:
			m.editor, cmd = m.editor.Undo()
		case editorRedo:
			m.editor, cmd = m.editor.Redo()
		case editorCut:
			m.editor, cmd = m.editor.Cut()
		case editorCopy:
			m.editor, cmd = m.editor.Copy()
		case editorPaste:
			m.editor, cmd = m.editor.Paste()
		case editorSelectAll:
			m.editor, cmd = m.editor.SelectAll()
		}
		return cmd
	}
}

func (m *Model) toggleFolding() tea.Cmd {
	m.dialog = newNotice("Code Folding", "Toggle Code Folding")
	return nil
}

func zoomAction(step int) actionFunc {
	return func(m *Model) tea.Cmd {
		m.setFont(m.session.Font.Zoom(step))
		return nil
	}
}

func (m *Model) increaseFont() tea.Cmd {
	m.setFont(m.session.Font.Grow())
	return nil
}

func (m *Model) setFont(f settings.Font) {
	m.session.Font = f
	m.editor = m.editor.Reflow()
	m.logger.Debug("font changed",
		logging.FieldFontFamily, f.Family,
		logging.FieldFontSize, f.Size)
	m.setStatus("font " + f.String())
}

// fail logs err and shows it in a notice dialog.
func (m *Model) fail(title string, err error) tea.Cmd {
	m.logger.Error(strings.ToLower(title), logging.FieldError, err)
	m.dialog = newNotice(title, err.Error())
	return nil
}
