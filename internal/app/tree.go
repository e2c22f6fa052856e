package app

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/procode/internal/workspace"
)

// fileTree lists the working directory. It does not recurse.
type fileTree struct {
	entries []workspace.Entry
	cursor  int
	offset  int
	width   int
	height  int
	err     error
}

func (t fileTree) setEntries(entries []workspace.Entry, err error) fileTree {
	t.entries = entries
	t.err = err
	t.cursor = clamp(t.cursor, 0, max(len(entries)-1, 0))
	return t.follow()
}

func (t fileTree) setSize(width, height int) fileTree {
	t.width = max(width, 0)
	t.height = max(height, 0)
	return t.follow()
}

func (t fileTree) move(delta int) fileTree {
	if len(t.entries) == 0 {
		return t
	}
	t.cursor = clamp(t.cursor+delta, 0, len(t.entries)-1)
	return t.follow()
}

func (t fileTree) moveTo(i int) fileTree {
	return t.move(i - t.cursor)
}

func (t fileTree) follow() fileTree {
	if t.height <= 0 {
		return t
	}
	if t.cursor < t.offset {
		t.offset = t.cursor
	}
	if t.cursor >= t.offset+t.height {
		t.offset = t.cursor - t.height + 1
	}
	t.offset = clamp(t.offset, 0, max(len(t.entries)-t.height, 0))
	return t
}

func (t fileTree) selected() (workspace.Entry, bool) {
	if t.cursor < 0 || t.cursor >= len(t.entries) {
		return workspace.Entry{}, false
	}
	return t.entries[t.cursor], true
}

// rowAt maps a pane-relative row to an entry index, or -1.
func (t fileTree) rowAt(y int) int {
	i := t.offset + y
	if y < 0 || i >= len(t.entries) {
		return -1
	}
	return i
}

func (t fileTree) view(st Styles, focused bool) string {
	if t.width <= 0 || t.height <= 0 {
		return ""
	}
	rows := make([]string, 0, t.height)
	if t.err != nil {
		rows = append(rows, st.DialogError.Render(runewidth.Truncate(t.err.Error(), t.width, "…")))
	}
	for i := t.offset; i < len(t.entries) && len(rows) < t.height; i++ {
		e := t.entries[i]
		name := e.Name
		if e.IsDir {
			name += "/"
		}
		name = runewidth.FillRight(runewidth.Truncate(name, t.width, "…"), t.width)
		style := st.TreeItem
		switch {
		case i == t.cursor && focused:
			style = st.TreeItemOn
		case e.IsDir:
			style = st.TreeDir
		}
		rows = append(rows, style.Render(name))
	}
	for len(rows) < t.height {
		rows = append(rows, strings.Repeat(" ", t.width))
	}
	return strings.Join(rows, "\n")
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
