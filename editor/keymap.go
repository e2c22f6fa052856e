package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap binds editing commands to keys. Word movement accepts both the
// alt and ctrl arrow forms since terminals disagree on which they send.
type KeyMap struct {
	Left, Right, Up, Down                     key.Binding
	ShiftLeft, ShiftRight, ShiftUp, ShiftDown key.Binding
	WordLeft, WordRight                       key.Binding
	Home, End                                 key.Binding
	DocStart, DocEnd                          key.Binding
	PageUp, PageDown                          key.Binding

	Backspace, Delete key.Binding
	Enter, Tab        key.Binding

	Undo, Redo       key.Binding
	Copy, Cut, Paste key.Binding
	SelectAll        key.Binding
}

func bind(desc string, keys ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], desc))
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:       bind("cursor left", "left"),
		Right:      bind("cursor right", "right"),
		Up:         bind("line up", "up"),
		Down:       bind("line down", "down"),
		ShiftLeft:  bind("extend left", "shift+left"),
		ShiftRight: bind("extend right", "shift+right"),
		ShiftUp:    bind("extend up", "shift+up"),
		ShiftDown:  bind("extend down", "shift+down"),
		WordLeft:   bind("previous word", "ctrl+left", "alt+left"),
		WordRight:  bind("next word", "ctrl+right", "alt+right"),
		Home:       bind("line start", "home"),
		End:        bind("line end", "end", "ctrl+e"),
		DocStart:   bind("top of file", "ctrl+home"),
		DocEnd:     bind("end of file", "ctrl+end"),
		PageUp:     bind("page up", "pgup"),
		PageDown:   bind("page down", "pgdown"),

		Backspace: bind("delete back", "backspace", "ctrl+h"),
		Delete:    bind("delete forward", "delete"),
		Enter:     bind("new line", "enter"),
		Tab:       bind("indent", "tab"),

		Undo:      bind("undo", "ctrl+z"),
		Redo:      bind("redo", "ctrl+y"),
		Copy:      bind("copy", "ctrl+c"),
		Cut:       bind("cut", "ctrl+x"),
		Paste:     bind("paste", "ctrl+v"),
		SelectAll: bind("select all", "ctrl+a"),
	}
}
