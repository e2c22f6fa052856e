package editor

import (
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/procode/buffer"
)

var lastID int64

func nextID() int { return int(atomic.AddInt64(&lastID, 1)) }

// highlightMsg fires a debounced highlight pass. Passes whose seq is older
// than the model's latest are dropped.
type highlightMsg struct {
	id  int
	seq uint64
}

// Model is a Bubble Tea component that renders and edits a buffer next to
// a line number gutter.
//
// The gutter is its own viewport. Every vertical scroll of the text
// viewport is copied onto it, so both always show the same rows.
type Model struct {
	cfg Config
	buf *buffer.Buffer
	id  int

	focused bool
	width   int
	height  int

	viewport viewport.Model
	gutter   viewport.Model
	xOffset  int

	tags            tagStore
	highlightSeq    uint64
	lastTextVersion uint64
	lastVersion     uint64

	mouseAnchor   buffer.Pos
	mouseDragging bool
}

func New(cfg Config) Model {
	cfg = cfg.withDefaults()
	m := Model{
		cfg:      cfg,
		buf:      buffer.New(cfg.Text, buffer.Options{HistoryLimit: cfg.HistoryLimit}),
		id:       nextID(),
		focused:  true,
		viewport: newPane(),
		gutter:   newPane(),
	}
	m.lastTextVersion = m.buf.TextVersion()
	m.lastVersion = m.buf.Version()
	m.runHighlight()
	m.refresh(true)
	return m
}

func newPane() viewport.Model {
	vp := viewport.New(0, 0)
	vp.MouseWheelEnabled = false
	return vp
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) Text() string { return m.buf.Text() }

func (m Model) Init() tea.Cmd { return nil }

// SetSize sets the outer size; the gutter takes its width from the line
// count and the text pane gets the rest.
func (m Model) SetSize(width, height int) Model {
	m.width = max(width, 0)
	m.height = max(height, 0)
	m.refresh(true)
	return m
}

func (m Model) Width() int  { return m.width }
func (m Model) Height() int { return m.height }

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.refresh(true)
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.refresh(false)
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// SetText replaces the document, drops history and highlights the new text
// immediately.
func (m Model) SetText(text string) Model {
	m.buf.Reset(text)
	m.xOffset = 0
	m.viewport.SetYOffset(0)
	m.lastTextVersion = m.buf.TextVersion()
	m.lastVersion = m.buf.Version()
	m.highlightSeq++
	m.runHighlight()
	m.refresh(true)
	return m
}

// SetHighlighter swaps the highlighter. Tags of the previous one are
// removed before the new one runs.
func (m Model) SetHighlighter(h Highlighter) Model {
	if old := m.cfg.Highlighter; old != nil {
		m.tags = m.tags.without(old.Tags())
	}
	m.cfg.Highlighter = h
	m.highlightSeq++
	m.runHighlight()
	m.refresh(false)
	return m
}

// SetReadOnly toggles editing; movement and copy keep working.
func (m Model) SetReadOnly(ro bool) Model {
	m.cfg.ReadOnly = ro
	return m
}

// Reflow rebuilds both panes from the current buffer, for hosts whose
// metrics changed (font size) without a text change.
func (m Model) Reflow() Model {
	m.refresh(true)
	return m
}

// ScrollBy scrolls both panes by delta rows without moving the cursor.
func (m Model) ScrollBy(delta int) Model {
	m.viewport.YOffset += delta
	m.refresh(false)
	return m
}

// YOffset is the first visible row of the text pane.
func (m Model) YOffset() int { return m.viewport.YOffset }

// GutterYOffset is the first visible row of the gutter.
func (m Model) GutterYOffset() int { return m.gutter.YOffset }

// XOffset is the first visible cell of the text pane.
func (m Model) XOffset() int { return m.xOffset }

// GutterView renders only the line-index pane.
func (m Model) GutterView() string { return m.gutter.View() }

// TagSpans lists the currently applied tags ordered by position.
func (m Model) TagSpans() []TagSpan { return m.tags.all() }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case highlightMsg:
		if msg.id != m.id || msg.seq != m.highlightSeq {
			return m, nil
		}
		m.runHighlight()
		m.refresh(false)
		return m, nil
	case tea.KeyMsg:
		m = m.updateKey(msg)
		return m.afterChange()
	case tea.MouseMsg:
		m = m.updateMouse(msg)
		return m.afterChange()
	}
	return m, nil
}

func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, m.gutter.View(), m.viewport.View())
}

// afterChange schedules highlighting when the text changed and rebuilds the
// panes. The view follows the cursor only when the buffer changed, so wheel
// scrolling is left alone.
func (m Model) afterChange() (Model, tea.Cmd) {
	var cmd tea.Cmd
	if v := m.buf.TextVersion(); v != m.lastTextVersion {
		m.lastTextVersion = v
		cmd = m.scheduleHighlight()
	}
	follow := m.buf.Version() != m.lastVersion
	m.lastVersion = m.buf.Version()
	m.refresh(follow)
	return m, cmd
}

func (m *Model) scheduleHighlight() tea.Cmd {
	if m.cfg.Highlighter == nil {
		return nil
	}
	m.highlightSeq++
	if m.cfg.HighlightDelay <= 0 {
		m.runHighlight()
		return nil
	}
	id, seq := m.id, m.highlightSeq
	return tea.Tick(m.cfg.HighlightDelay, func(time.Time) tea.Msg {
		return highlightMsg{id: id, seq: seq}
	})
}

// runHighlight clears every tag the highlighter owns, then applies a fresh
// pass over the whole buffer.
func (m *Model) runHighlight() {
	h := m.cfg.Highlighter
	if h == nil {
		return
	}
	m.tags = m.tags.without(h.Tags()).with(h.Highlight(m.buf.Text()))
}

// refresh lays out both panes. The vertical offset is settled first so
// only the visible rows are rendered; content is then replaced in one
// SetContent call each and the gutter offset is forced to the text offset.
func (m *Model) refresh(follow bool) {
	gw := min(LineNumberWidth(m.buf.LineCount()), m.width)
	m.gutter.Width = gw
	m.gutter.Height = m.height
	m.viewport.Width = m.width - gw
	m.viewport.Height = m.height

	if follow {
		m.followHorizontal()
	}
	m.viewport.YOffset = m.targetYOffset(follow)
	m.viewport.SetContent(m.renderContent())
	m.gutter.SetContent(m.renderGutter())
	m.gutter.SetYOffset(m.viewport.YOffset)
}

// targetYOffset is the text pane offset after an update, clamped so the
// last page is full. With follow set the cursor row is brought into view.
func (m *Model) targetYOffset(follow bool) int {
	h := m.viewport.Height
	if h <= 0 {
		return 0
	}
	y := m.viewport.YOffset
	if follow {
		row := m.buf.Cursor().Row
		switch {
		case row < y:
			y = row
		case row >= y+h:
			y = row - h + 1
		}
	}
	return clampInt(y, 0, max(m.buf.LineCount()-h, 0))
}

// window is the half-open row range the panes can show. Rows outside it
// are left blank. A pane without a height renders every row.
func (m *Model) window() (first, last int) {
	n := m.buf.LineCount()
	h := m.viewport.Height
	if h <= 0 {
		return 0, n
	}
	first = clampInt(m.viewport.YOffset, 0, n)
	return first, min(first+h, n)
}

func (m *Model) followHorizontal() {
	w := m.viewport.Width
	if w <= 0 {
		m.xOffset = 0
		return
	}
	cur := m.buf.Cursor()
	x := cellForCol([]rune(m.buf.Line(cur.Row)), cur.Col, m.cfg.TabWidth)
	switch {
	case x < m.xOffset:
		m.xOffset = x
	case x >= m.xOffset+w:
		m.xOffset = x - w + 1
	}
}
