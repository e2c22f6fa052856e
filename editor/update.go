package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/procode/buffer"
)

func (m Model) updateKey(msg tea.KeyMsg) Model {
	if !m.focused {
		return m
	}

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if !m.cfg.ReadOnly {
			m.buf.InsertText(normalizeNewlines(string(msg.Runes)))
		}
		return m
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Left):
		m.move(buffer.MoveRune, buffer.DirLeft, false)
	case key.Matches(msg, km.Right):
		m.move(buffer.MoveRune, buffer.DirRight, false)
	case key.Matches(msg, km.Up):
		m.move(buffer.MoveRune, buffer.DirUp, false)
	case key.Matches(msg, km.Down):
		m.move(buffer.MoveRune, buffer.DirDown, false)

	case key.Matches(msg, km.ShiftLeft):
		m.move(buffer.MoveRune, buffer.DirLeft, true)
	case key.Matches(msg, km.ShiftRight):
		m.move(buffer.MoveRune, buffer.DirRight, true)
	case key.Matches(msg, km.ShiftUp):
		m.move(buffer.MoveRune, buffer.DirUp, true)
	case key.Matches(msg, km.ShiftDown):
		m.move(buffer.MoveRune, buffer.DirDown, true)

	case key.Matches(msg, km.WordLeft):
		m.move(buffer.MoveWord, buffer.DirLeft, false)
	case key.Matches(msg, km.WordRight):
		m.move(buffer.MoveWord, buffer.DirRight, false)

	case key.Matches(msg, km.Home):
		m.move(buffer.MoveLine, buffer.DirHome, false)
	case key.Matches(msg, km.End):
		m.move(buffer.MoveLine, buffer.DirEnd, false)
	case key.Matches(msg, km.DocStart):
		m.move(buffer.MoveDoc, buffer.DirHome, false)
	case key.Matches(msg, km.DocEnd):
		m.move(buffer.MoveDoc, buffer.DirEnd, false)
	case key.Matches(msg, km.PageUp):
		m.page(-1)
	case key.Matches(msg, km.PageDown):
		m.page(1)

	case key.Matches(msg, km.Backspace):
		if !m.cfg.ReadOnly {
			m.buf.DeleteBackward()
		}
	case key.Matches(msg, km.Delete):
		if !m.cfg.ReadOnly {
			m.buf.DeleteForward()
		}
	case key.Matches(msg, km.Enter):
		if !m.cfg.ReadOnly {
			m.newline()
		}
	case key.Matches(msg, km.Tab):
		if !m.cfg.ReadOnly {
			m.indent()
		}

	case key.Matches(msg, km.Undo):
		m.undo()
	case key.Matches(msg, km.Redo):
		m.redo()
	case key.Matches(msg, km.Copy):
		m.copySelection()
	case key.Matches(msg, km.Cut):
		m.cutSelection()
	case key.Matches(msg, km.Paste):
		m.pasteClipboard()
	case key.Matches(msg, km.SelectAll):
		m.buf.SelectAll()

	default:
		if m.cfg.ReadOnly || msg.Alt {
			break
		}
		switch msg.Type {
		case tea.KeyRunes:
			if len(msg.Runes) > 0 {
				m.buf.InsertText(string(msg.Runes))
			}
		case tea.KeySpace:
			m.buf.InsertText(" ")
		}
	}
	return m
}

// Undo reverts the last edit. Hosts call the exported commands from menus;
// keys route through the same helpers.
func (m Model) Undo() (Model, tea.Cmd) {
	m.undo()
	return m.afterChange()
}

func (m Model) Redo() (Model, tea.Cmd) {
	m.redo()
	return m.afterChange()
}

func (m Model) Copy() (Model, tea.Cmd) {
	m.copySelection()
	return m.afterChange()
}

func (m Model) Cut() (Model, tea.Cmd) {
	m.cutSelection()
	return m.afterChange()
}

func (m Model) Paste() (Model, tea.Cmd) {
	m.pasteClipboard()
	return m.afterChange()
}

func (m Model) SelectAll() (Model, tea.Cmd) {
	m.buf.SelectAll()
	return m.afterChange()
}

func (m *Model) move(unit buffer.MoveUnit, dir buffer.MoveDir, extend bool) {
	m.buf.Move(buffer.Move{Unit: unit, Dir: dir, Extend: extend})
}

func (m *Model) page(dir int) {
	h := max(m.viewport.Height, 1)
	cur := m.buf.Cursor()
	m.buf.SetCursor(buffer.Pos{Row: max(cur.Row+dir*h, 0), Col: cur.Col})
}

// newline splits the line and, with AutoIndent, carries the indentation to
// the left of the cursor onto the new line as one undo step.
func (m *Model) newline() {
	if !m.cfg.AutoIndent {
		m.buf.InsertNewline()
		return
	}
	cur := m.buf.Cursor()
	if r, ok := m.buf.Selection(); ok {
		cur = r.Start
	}
	indent := []rune(m.buf.LeadingWhitespace(cur.Row))
	indent = indent[:min(len(indent), cur.Col)]
	m.buf.InsertText("\n" + string(indent))
}

// indent inserts the current line's leading whitespace, or TabWidth spaces
// when the line has none. Without AutoIndent it inserts a tab.
func (m *Model) indent() {
	if !m.cfg.AutoIndent {
		m.buf.InsertRune('\t')
		return
	}
	ws := m.buf.LeadingWhitespace(m.buf.Cursor().Row)
	if ws == "" {
		ws = strings.Repeat(" ", m.cfg.TabWidth)
	}
	m.buf.InsertText(ws)
}

func (m *Model) undo() {
	if !m.cfg.ReadOnly {
		_ = m.buf.Undo()
	}
}

func (m *Model) redo() {
	if !m.cfg.ReadOnly {
		_ = m.buf.Redo()
	}
}

func (m *Model) copySelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	if s := m.buf.SelectedText(); s != "" {
		_ = m.cfg.Clipboard.WriteText(s)
	}
}

func (m *Model) cutSelection() {
	m.copySelection()
	if !m.cfg.ReadOnly {
		m.buf.DeleteSelection()
	}
}

func (m *Model) pasteClipboard() {
	if m.cfg.Clipboard == nil || m.cfg.ReadOnly {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil || s == "" {
		return
	}
	m.buf.InsertText(normalizeNewlines(s))
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
