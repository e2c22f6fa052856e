package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type menuItem struct {
	label  string
	hint   string
	action Action
}

// separator items render as a rule and are skipped by navigation.
func (it menuItem) separator() bool { return it.action == ActionNone }

type menu struct {
	title string
	items []menuItem
}

func defaultMenus() []menu {
	return []menu{
		{title: "File", items: []menuItem{
			{label: "New", hint: "ctrl+n", action: ActionNew},
			{label: "Open", hint: "ctrl+o", action: ActionOpen},
			{label: "Save", hint: "ctrl+s", action: ActionSave},
			{label: "Save As", action: ActionSaveAs},
			{},
			{label: "Exit", hint: "ctrl+q", action: ActionExit},
		}},
		{title: "Edit", items: []menuItem{
			{label: "Undo", hint: "ctrl+z", action: ActionUndo},
			{label: "Redo", hint: "ctrl+y", action: ActionRedo},
			{},
			{label: "Cut", hint: "ctrl+x", action: ActionCut},
			{label: "Copy", hint: "ctrl+c", action: ActionCopy},
			{label: "Paste", hint: "ctrl+v", action: ActionPaste},
			{},
			{label: "Select All", hint: "ctrl+a", action: ActionSelectAll},
		}},
		{title: "View", items: []menuItem{
			{label: "Toggle Code Folding", action: ActionToggleFolding},
			{label: "Toggle Tree Focus", hint: "ctrl+t", action: ActionToggleFocus},
		}},
		{title: "Preferences", items: []menuItem{
			{label: "Settings", action: ActionSettings},
			{label: "Font", action: ActionFont},
			{label: "Zoom In", action: ActionZoomIn},
			{label: "Zoom Out", action: ActionZoomOut},
			{label: "Increase Font", hint: "alt+=", action: ActionIncreaseFont},
		}},
	}
}

// menuBar is the top bar with its drop-down. open is -1 while closed.
type menuBar struct {
	menus  []menu
	open   int
	cursor int
}

func newMenuBar() menuBar { return menuBar{menus: defaultMenus(), open: -1} }

func (b menuBar) isOpen() bool { return b.open >= 0 }

func (b menuBar) openAt(i int) menuBar {
	if i < 0 || i >= len(b.menus) {
		return b
	}
	b.open = i
	b.cursor = b.firstItem(i)
	return b
}

func (b menuBar) close() menuBar {
	b.open = -1
	return b
}

func (b menuBar) firstItem(i int) int {
	for j, it := range b.menus[i].items {
		if !it.separator() {
			return j
		}
	}
	return 0
}

func (b menuBar) switchMenu(delta int) menuBar {
	n := len(b.menus)
	return b.openAt(((b.open+delta)%n + n) % n)
}

func (b menuBar) moveCursor(delta int) menuBar {
	items := b.menus[b.open].items
	for range items {
		b.cursor = ((b.cursor+delta)%len(items) + len(items)) % len(items)
		if !items[b.cursor].separator() {
			break
		}
	}
	return b
}

// selected is the action under the cursor of the open menu.
func (b menuBar) selected() Action {
	if !b.isOpen() {
		return ActionNone
	}
	return b.menus[b.open].items[b.cursor].action
}

// titleOffsets returns the x position of each menu title.
func (b menuBar) titleOffsets(st Styles) []int {
	out := make([]int, len(b.menus))
	x := 0
	for i, mn := range b.menus {
		out[i] = x
		x += lipgloss.Width(st.MenuTitle.Render(mn.title))
	}
	return out
}

func (b menuBar) viewBar(st Styles, width int) string {
	var sb strings.Builder
	for i, mn := range b.menus {
		style := st.MenuTitle
		if i == b.open {
			style = st.MenuTitleOn
		}
		sb.WriteString(style.Render(mn.title))
	}
	return st.MenuBar.Width(width).MaxWidth(width).Render(sb.String())
}

func (b menuBar) viewDropdown(st Styles) string {
	if !b.isOpen() {
		return ""
	}
	items := b.menus[b.open].items
	labelW, hintW := 0, 0
	for _, it := range items {
		labelW = max(labelW, lipgloss.Width(it.label))
		hintW = max(hintW, lipgloss.Width(it.hint))
	}
	inner := labelW
	if hintW > 0 {
		inner += 2 + hintW
	}

	rows := make([]string, len(items))
	for i, it := range items {
		if it.separator() {
			rows[i] = st.MenuHint.Render(strings.Repeat("─", inner+2))
			continue
		}
		line := it.label + strings.Repeat(" ", labelW-lipgloss.Width(it.label))
		if hintW > 0 {
			line += "  " + strings.Repeat(" ", hintW-lipgloss.Width(it.hint)) + it.hint
		}
		style := st.MenuItem
		if i == b.cursor {
			style = st.MenuItemOn
		}
		rows[i] = style.Render(line)
	}
	return st.MenuBox.Render(strings.Join(rows, "\n"))
}
