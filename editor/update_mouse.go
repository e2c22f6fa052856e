package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/procode/buffer"
)

func (m Model) updateMouse(msg tea.MouseMsg) Model {
	if msg.Action == tea.MouseActionPress {
		switch msg.Button { //nolint:exhaustive
		case tea.MouseButtonWheelUp:
			return m.ScrollBy(-m.cfg.MouseWheelDelta)
		case tea.MouseButtonWheelDown:
			return m.ScrollBy(m.cfg.MouseWheelDelta)
		}
	}

	if !m.focused {
		return m
	}

	// Only handle selection/cursor changes for left button interactions.
	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.mouseInBounds(msg.X, msg.Y) {
			return m
		}
		p := m.screenToDocPos(msg.X, msg.Y)
		m.mouseAnchor = p
		m.buf.SetCursor(p)
		m.mouseDragging = true

	case tea.MouseActionMotion:
		if !m.mouseDragging {
			return m
		}
		x, y := m.clampMouseToBounds(msg.X, msg.Y)
		p := m.screenToDocPos(x, y)
		if p == m.mouseAnchor {
			m.buf.SetCursor(p)
		} else {
			m.buf.SetSelection(buffer.Range{Start: m.mouseAnchor, End: p})
		}

	case tea.MouseActionRelease:
		m.mouseDragging = false
	}
	return m
}

// screenToDocPos maps a point relative to the editor's top-left corner to a
// document position. Points over the gutter map to column 0.
func (m Model) screenToDocPos(x, y int) buffer.Pos {
	row := clampInt(m.viewport.YOffset+y, 0, m.buf.LineCount()-1)
	cell := x - m.gutter.Width
	if cell < 0 {
		return buffer.Pos{Row: row}
	}
	line := []rune(m.buf.Line(row))
	return buffer.Pos{Row: row, Col: colForCell(line, m.xOffset+cell, m.cfg.TabWidth)}
}

func (m Model) mouseInBounds(x, y int) bool {
	if m.width <= 0 || m.height <= 0 {
		return false
	}
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

func (m Model) clampMouseToBounds(x, y int) (int, int) {
	return clampInt(x, 0, m.width-1), clampInt(y, 0, m.height-1)
}
