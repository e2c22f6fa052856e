package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the shell's global shortcuts. They are checked before keys
// reach the focused pane.
type KeyMap struct {
	New          key.Binding
	Open         key.Binding
	Save         key.Binding
	Quit         key.Binding
	IncreaseFont key.Binding
	ToggleFocus  key.Binding

	Menu      key.Binding
	FileMenu  key.Binding
	EditMenu  key.Binding
	ViewMenu  key.Binding
	PrefsMenu key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		New:  key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "new")),
		Open: key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "open")),
		Save: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Quit: key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "exit")),
		// Terminals cannot report ctrl+plus; alt+= and alt++ stand in for it.
		IncreaseFont: key.NewBinding(key.WithKeys("alt+=", "alt++"), key.WithHelp("alt+=", "increase font")),
		ToggleFocus:  key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "tree/editor")),

		Menu:      key.NewBinding(key.WithKeys("f10"), key.WithHelp("f10", "menu")),
		FileMenu:  key.NewBinding(key.WithKeys("alt+f"), key.WithHelp("alt+f", "file")),
		EditMenu:  key.NewBinding(key.WithKeys("alt+e"), key.WithHelp("alt+e", "edit")),
		ViewMenu:  key.NewBinding(key.WithKeys("alt+v"), key.WithHelp("alt+v", "view")),
		PrefsMenu: key.NewBinding(key.WithKeys("alt+p"), key.WithHelp("alt+p", "preferences")),
	}
}

type shortcut struct {
	binding key.Binding
	action  Action
}

func (k KeyMap) shortcuts() []shortcut {
	return []shortcut{
		{k.New, ActionNew},
		{k.Open, ActionOpen},
		{k.Save, ActionSave},
		{k.Quit, ActionExit},
		{k.IncreaseFont, ActionIncreaseFont},
		{k.ToggleFocus, ActionToggleFocus},
	}
}
