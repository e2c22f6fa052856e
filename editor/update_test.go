package editor

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/procode/buffer"
)

type memClipboard struct {
	s   string
	err error
}

func (c *memClipboard) ReadText() (string, error) { return c.s, c.err }
func (c *memClipboard) WriteText(s string) error  { c.s = s; return c.err }

func typeText(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestUpdate_TypingMovementAndDelete(t *testing.T) {
	m := New(Config{Text: "ab"})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("X")})
	if got := m.buf.Text(); got != "aXb" {
		t.Fatalf("text after insert: got %q, want %q", got, "aXb")
	}
	if got := m.buf.Cursor(); got != (buffer.Pos{Row: 0, Col: 2}) {
		t.Fatalf("cursor after insert: got %v, want %v", got, buffer.Pos{Row: 0, Col: 2})
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := m.buf.Text(); got != "ab" {
		t.Fatalf("text after backspace: got %q, want %q", got, "ab")
	}
	if got := m.buf.Cursor(); got != (buffer.Pos{Row: 0, Col: 1}) {
		t.Fatalf("cursor after backspace: got %v, want %v", got, buffer.Pos{Row: 0, Col: 1})
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDelete})
	if got := m.buf.Text(); got != "a" {
		t.Fatalf("text after delete: got %q, want %q", got, "a")
	}
}

func TestUpdate_BlurredIgnoresKeys(t *testing.T) {
	m := New(Config{Text: "ab"})
	m = m.Blur()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("X")})
	if got := m.buf.Text(); got != "ab" {
		t.Fatalf("text while blurred: got %q, want %q", got, "ab")
	}
}

func TestUpdate_ReadOnly_IgnoresMutations(t *testing.T) {
	m := New(Config{
		Text:     "ab",
		ReadOnly: true,
	})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if got := m.buf.Cursor(); got != (buffer.Pos{Row: 0, Col: 1}) {
		t.Fatalf("cursor after move: got %v, want %v", got, buffer.Pos{Row: 0, Col: 1})
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("X")})
	if got := m.buf.Text(); got != "ab" {
		t.Fatalf("text after insert in read-only: got %q, want %q", got, "ab")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if got := m.buf.Text(); got != "ab" {
		t.Fatalf("text after edits in read-only: got %q, want %q", got, "ab")
	}
}

func TestUpdate_UndoRedo(t *testing.T) {
	m := New(Config{Text: ""})
	m = typeText(m, "ab")
	if got := m.buf.Text(); got != "ab" {
		t.Fatalf("text after typing: got %q, want %q", got, "ab")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	if got := m.buf.Text(); got != "a" {
		t.Fatalf("text after undo: got %q, want %q", got, "a")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	if got := m.buf.Text(); got != "ab" {
		t.Fatalf("text after redo: got %q, want %q", got, "ab")
	}

	m, _ = m.Undo()
	if got := m.Text(); got != "a" {
		t.Fatalf("text after Undo(): got %q, want %q", got, "a")
	}
	m, _ = m.Redo()
	if got := m.Text(); got != "ab" {
		t.Fatalf("text after Redo(): got %q, want %q", got, "ab")
	}
}

func TestUpdate_CopyCutPaste(t *testing.T) {
	cb := &memClipboard{}
	m := New(Config{
		Text:      "hello",
		Clipboard: cb,
	})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftRight})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftRight})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if got := cb.s; got != "he" {
		t.Fatalf("clipboard after copy: got %q, want %q", got, "he")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlX})
	if got := m.buf.Text(); got != "llo" {
		t.Fatalf("text after cut: got %q, want %q", got, "llo")
	}
	if got := m.buf.Cursor(); got != (buffer.Pos{Row: 0, Col: 0}) {
		t.Fatalf("cursor after cut: got %v, want %v", got, buffer.Pos{Row: 0, Col: 0})
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlV})
	if got := m.buf.Text(); got != "hello" {
		t.Fatalf("text after paste: got %q, want %q", got, "hello")
	}
}

func TestUpdate_ClipboardErrorsAreIgnored(t *testing.T) {
	cb := &memClipboard{s: "zz", err: errors.New("no clipboard")}
	m := New(Config{Text: "ab", Clipboard: cb})

	m, _ = m.Paste()
	if got := m.Text(); got != "ab" {
		t.Fatalf("text after failed paste: got %q, want %q", got, "ab")
	}
	m, _ = m.SelectAll()
	m, _ = m.Cut()
	if got := m.Text(); got != "" {
		t.Fatalf("cut still deletes when the clipboard fails: got %q", got)
	}
}

func TestUpdate_PasteNormalizesNewlines(t *testing.T) {
	m := New(Config{Text: ""})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a\r\nb\rc"), Paste: true})
	if got := m.Text(); got != "a\nb\nc" {
		t.Fatalf("text after bracketed paste: got %q, want %q", got, "a\nb\nc")
	}
}

func TestUpdate_SelectAllReplacesOnType(t *testing.T) {
	m := New(Config{Text: "one\ntwo"})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlA})
	m = typeText(m, "x")
	if got := m.Text(); got != "x" {
		t.Fatalf("text after select-all + type: got %q, want %q", got, "x")
	}
}

func TestUpdate_EnterCarriesIndent(t *testing.T) {
	m := New(Config{Text: "    if x:", AutoIndent: true})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.Text(); got != "    if x:\n    " {
		t.Fatalf("text after enter: got %q, want %q", got, "    if x:\n    ")
	}
	if got := m.buf.Cursor(); got != (buffer.Pos{Row: 1, Col: 4}) {
		t.Fatalf("cursor after enter: got %v, want %v", got, buffer.Pos{Row: 1, Col: 4})
	}

	m, _ = m.Undo()
	if got := m.Text(); got != "    if x:" {
		t.Fatalf("enter with indent must be one undo step: got %q", got)
	}
}

func TestUpdate_EnterWithoutAutoIndent(t *testing.T) {
	m := New(Config{Text: "  a"})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.Text(); got != "  a\n" {
		t.Fatalf("text after enter: got %q, want %q", got, "  a\n")
	}
}

func TestUpdate_TabAutoIndent(t *testing.T) {
	m := New(Config{Text: "x", AutoIndent: true, TabWidth: 4})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if got := m.Text(); got != "    x" {
		t.Fatalf("tab on unindented line: got %q, want %q", got, "    x")
	}

	m = m.SetText("\t y")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if got := m.Text(); got != "\t y\t " {
		t.Fatalf("tab on indented line: got %q, want %q", got, "\t y\t ")
	}
}

func TestUpdate_TabWithoutAutoIndentInsertsTab(t *testing.T) {
	m := New(Config{Text: ""})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if got := m.Text(); got != "\t" {
		t.Fatalf("text after tab: got %q, want %q", got, "\t")
	}
}

func TestUpdate_DocStartEndAndPaging(t *testing.T) {
	m := New(Config{Text: "0\n1\n2\n3\n4\n5\n6\n7\n8\n9"})
	m = m.SetSize(10, 3)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlEnd})
	if got := m.buf.Cursor(); got != (buffer.Pos{Row: 9, Col: 1}) {
		t.Fatalf("cursor after ctrl+end: got %v, want %v", got, buffer.Pos{Row: 9, Col: 1})
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyPgUp})
	if got := m.buf.Cursor().Row; got != 6 {
		t.Fatalf("row after pgup: got %d, want %d", got, 6)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlHome})
	if got := m.buf.Cursor(); got != (buffer.Pos{}) {
		t.Fatalf("cursor after ctrl+home: got %v, want %v", got, buffer.Pos{})
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	if got := m.buf.Cursor().Row; got != 3 {
		t.Fatalf("row after pgdown: got %d, want %d", got, 3)
	}
	if m.YOffset() != m.GutterYOffset() {
		t.Fatalf("gutter out of step: text=%d gutter=%d", m.YOffset(), m.GutterYOffset())
	}
}

func TestUpdate_ViewportFollowsCursor_Minimal(t *testing.T) {
	m := New(Config{Text: "0\n1\n2\n3\n4\n5\n6\n7\n8\n9"})
	m = m.SetSize(10, 3)

	if got := m.YOffset(); got != 0 {
		t.Fatalf("initial yoffset: got %d, want %d", got, 0)
	}

	// Move to row 2: still visible, no scroll.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if got := m.YOffset(); got != 0 {
		t.Fatalf("yoffset at row 2: got %d, want %d", got, 0)
	}

	// Move to row 3: scroll down by one line.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if got := m.YOffset(); got != 1 {
		t.Fatalf("yoffset at row 3: got %d, want %d", got, 1)
	}

	// Move up above the viewport: yoffset follows cursor row.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp}) // row 2
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp}) // row 1
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp}) // row 0
	if got := m.YOffset(); got != 0 {
		t.Fatalf("yoffset after moving above view: got %d, want %d", got, 0)
	}
}

func TestUpdateMouse_WheelScrollsBothPanes(t *testing.T) {
	m := New(Config{Text: "0\n1\n2\n3\n4\n5\n6\n7\n8\n9", MouseWheelDelta: 2})
	m = m.SetSize(10, 3)

	m, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if m.YOffset() != 2 || m.GutterYOffset() != 2 {
		t.Fatalf("after wheel down: text=%d gutter=%d, want 2/2", m.YOffset(), m.GutterYOffset())
	}
	if got := m.buf.Cursor(); got != (buffer.Pos{}) {
		t.Fatalf("wheel must not move the cursor: got %v", got)
	}

	m, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	if m.YOffset() != 0 || m.GutterYOffset() != 0 {
		t.Fatalf("after wheel up: text=%d gutter=%d, want 0/0", m.YOffset(), m.GutterYOffset())
	}
}

func TestUpdateMouse_ClickAndDrag(t *testing.T) {
	m := New(Config{Text: "hello\nworld"})
	m = m.SetSize(20, 2)

	// Gutter is "1 " (2 cells); x=4 lands on column 2.
	m, _ = m.Update(tea.MouseMsg{X: 4, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if got := m.buf.Cursor(); got != (buffer.Pos{Row: 1, Col: 2}) {
		t.Fatalf("cursor after click: got %v, want %v", got, buffer.Pos{Row: 1, Col: 2})
	}

	m, _ = m.Update(tea.MouseMsg{X: 6, Y: 1, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m, _ = m.Update(tea.MouseMsg{X: 6, Y: 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if got := m.buf.SelectedText(); got != "rl" {
		t.Fatalf("selection after drag: got %q, want %q", got, "rl")
	}

	m, _ = m.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if got := m.buf.Cursor(); got != (buffer.Pos{Row: 0, Col: 0}) {
		t.Fatalf("cursor after gutter click: got %v, want %v", got, buffer.Pos{})
	}
}

func TestUpdate_SpaceKeyInsertsSpace(t *testing.T) {
	m := New(Config{Text: "ab"})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if got := m.buf.Text(); got != "a b" {
		t.Fatalf("text after space: got %q, want %q", got, "a b")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}, Alt: true})
	if got := m.buf.Text(); got != "a b" {
		t.Fatalf("alt+space must not insert: got %q", got)
	}
}
