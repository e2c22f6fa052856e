package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/procode/buffer"
)

// runeCells is the cell width of r placed at cell x. Zero-width and control
// runes occupy one cell so every column stays addressable.
func runeCells(r rune, x, tabWidth int) int {
	if r == '\t' {
		return tabWidth - x%tabWidth
	}
	return max(runewidth.RuneWidth(r), 1)
}

// cellForCol is the cell offset of column col within line.
func cellForCol(line []rune, col, tabWidth int) int {
	col = clampInt(col, 0, len(line))
	x := 0
	for _, r := range line[:col] {
		x += runeCells(r, x, tabWidth)
	}
	return x
}

// colForCell maps a cell offset back to the column whose cell range holds
// it. Cells past the end map to the line length.
func colForCell(line []rune, cell, tabWidth int) int {
	if cell <= 0 {
		return 0
	}
	x := 0
	for i, r := range line {
		w := runeCells(r, x, tabWidth)
		if cell < x+w {
			return i
		}
		x += w
	}
	return len(line)
}

// renderContent renders the rows inside the window; the others stay empty
// so the viewport still sees every line.
func (m *Model) renderContent() string {
	n := m.buf.LineCount()
	cur := m.buf.Cursor()
	sel, selOK := m.buf.Selection()

	left := m.xOffset
	right := int(^uint(0) >> 1)
	if m.viewport.Width > 0 {
		right = left + m.viewport.Width
	}

	first, last := m.window()
	out := make([]string, n)
	for row := first; row < last; row++ {
		line := []rune(m.buf.Line(row))
		selStart, selEnd, hasSel := selectionColsForRow(sel, selOK, row, len(line))
		cursorCol := -1
		if m.focused && row == cur.Row {
			cursorCol = clampInt(cur.Col, 0, len(line))
		}
		spans := normalizeRowSpans(m.tags.row(row), len(line), m.hasTagStyle)
		out[row] = m.renderLine(line, lineState{
			cursorCol: cursorCol,
			selStart:  selStart,
			selEnd:    selEnd,
			hasSel:    hasSel,
			spans:     spans,
		}, left, right)
	}
	return strings.Join(out, "\n")
}

func (m *Model) hasTagStyle(tag string) bool {
	_, ok := m.cfg.Style.tagStyle(tag)
	return ok
}

type lineState struct {
	cursorCol        int
	selStart, selEnd int
	hasSel           bool
	spans            []styledSpan
}

// cellKind orders style precedence: cursor over selection over tag.
type cellKind int

const (
	cellText cellKind = iota
	cellTag
	cellSelection
	cellCursor
)

type runKey struct {
	kind cellKind
	tag  string
}

func (ls lineState) keyAt(col int) runKey {
	switch {
	case col == ls.cursorCol:
		return runKey{kind: cellCursor}
	case ls.hasSel && col >= ls.selStart && col < ls.selEnd:
		return runKey{kind: cellSelection}
	}
	for _, sp := range ls.spans {
		if col < sp.startCol {
			break
		}
		if col < sp.endCol {
			return runKey{kind: cellTag, tag: sp.tag}
		}
	}
	return runKey{}
}

func (m *Model) styleFor(k runKey) lipgloss.Style {
	st := m.cfg.Style
	switch k.kind {
	case cellCursor:
		return st.Cursor
	case cellSelection:
		return st.Selection
	case cellTag:
		ts, _ := st.tagStyle(k.tag)
		return ts
	}
	return st.Text
}

// renderLine draws the cells of line that fall inside [left, right).
// Consecutive cells with the same style are rendered as one run.
func (m *Model) renderLine(line []rune, ls lineState, left, right int) string {
	var (
		sb      strings.Builder
		run     strings.Builder
		current runKey
		open    bool
	)
	flush := func() {
		if open && run.Len() > 0 {
			sb.WriteString(m.styleFor(current).Render(run.String()))
		}
		run.Reset()
		open = false
	}
	emit := func(k runKey, s string) {
		if open && k != current {
			flush()
		}
		current, open = k, true
		run.WriteString(s)
	}

	x := 0
	for col, r := range line {
		w := runeCells(r, x, m.cfg.TabWidth)
		l, rr := max(x, left), min(x+w, right)
		if l < rr {
			k := ls.keyAt(col)
			switch {
			case r == '\t' || l-x != 0 || rr-l != w:
				// Tabs and clipped wide runes render as blanks.
				emit(k, strings.Repeat(" ", rr-l))
			case r < 0x20 || r == 0x7f:
				emit(k, "?")
			default:
				emit(k, string(r))
			}
		}
		x += w
		if x >= right {
			break
		}
	}
	if ls.cursorCol == len(line) && x >= left && x < right {
		emit(runKey{kind: cellCursor}, " ")
	}
	flush()
	return sb.String()
}

func selectionColsForRow(sel buffer.Range, ok bool, row, lineLen int) (start, end int, has bool) {
	if !ok || row < sel.Start.Row || row > sel.End.Row {
		return 0, 0, false
	}
	start, end = 0, lineLen
	if row == sel.Start.Row {
		start = clampInt(sel.Start.Col, 0, lineLen)
	}
	if row == sel.End.Row {
		end = clampInt(sel.End.Col, 0, lineLen)
	}
	return start, end, start < end
}
