package app

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/procode/internal/settings"
)

// dialog is a modal pane drawn over the editor. Dialogs report their
// outcome with a message; dialogClosedMsg dismisses without a result.
type dialog interface {
	Update(msg tea.Msg) (dialog, tea.Cmd)
	View(st Styles) string
}

type (
	dialogClosedMsg  struct{}
	saveAsMsg        struct{ path string }
	openFileMsg      struct{ path string }
	settingsSavedMsg struct {
		enabled bool
		text    string
	}
	fontChosenMsg struct{ font settings.Font }
)

func closeDialog() tea.Msg { return dialogClosedMsg{} }

func emit(msg tea.Msg) tea.Cmd { return func() tea.Msg { return msg } }

func frame(st Styles, title, body string) string {
	return st.Dialog.Render(st.DialogTitle.Render(title) + "\n\n" + body)
}

// noticeDialog shows one message; any of enter, esc or space closes it.
type noticeDialog struct {
	title, body string
}

func newNotice(title, body string) noticeDialog { return noticeDialog{title: title, body: body} }

func (d noticeDialog) Update(msg tea.Msg) (dialog, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter", "esc", " ":
			return d, closeDialog
		}
	}
	return d, nil
}

func (d noticeDialog) View(st Styles) string {
	return frame(st, d.title, lipgloss.NewStyle().MaxWidth(60).Render(d.body)+"\n\n"+st.DialogButton.Render("OK"))
}

// saveAsDialog prompts for a path. Relative paths resolve against the
// working directory.
type saveAsDialog struct {
	input textinput.Model
}

func newSaveAsDialog(initial string) (saveAsDialog, tea.Cmd) {
	ti := textinput.New()
	ti.Placeholder = "untitled.py"
	ti.Prompt = "> "
	ti.Width = 48
	ti.SetValue(initial)
	ti.CursorEnd()
	cmd := ti.Focus()
	return saveAsDialog{input: ti}, cmd
}

func (d saveAsDialog) Update(msg tea.Msg) (dialog, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "esc":
			return d, closeDialog
		case "enter":
			path := strings.TrimSpace(d.input.Value())
			if path == "" {
				return d, nil
			}
			return d, emit(saveAsMsg{path: path})
		}
	}
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

func (d saveAsDialog) View(st Styles) string {
	return frame(st, "Save As", d.input.View()+"\n\n"+st.Muted.Render("enter save · esc cancel"))
}

// openDialog browses the file system with a file picker.
type openDialog struct {
	picker filepicker.Model
}

const pickerMargin = 5 // rows filepicker reserves below its list

func newOpenDialog(dir string, width, height int) (openDialog, tea.Cmd) {
	fp := filepicker.New()
	fp.CurrentDirectory = dir
	fp.ShowHidden = true
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.AutoHeight = true
	fp, _ = fp.Update(tea.WindowSizeMsg{Width: width, Height: height + pickerMargin})
	return openDialog{picker: fp}, fp.Init()
}

func (d openDialog) Update(msg tea.Msg) (dialog, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "esc" {
		return d, closeDialog
	}
	var cmd tea.Cmd
	d.picker, cmd = d.picker.Update(msg)
	if ok, path := d.picker.DidSelectFile(msg); ok {
		return d, emit(openFileMsg{path: path})
	}
	return d, cmd
}

func (d openDialog) View(st Styles) string {
	body := st.Muted.Render(d.picker.CurrentDirectory) + "\n\n" + d.picker.View() +
		"\n" + st.Muted.Render("enter open · esc cancel")
	return frame(st, "Open", body)
}

// settingsDialog is a checkbox and a text entry. Values are acknowledged
// and logged; they are not persisted.
type settingsDialog struct {
	enabled bool
	input   textinput.Model
	focus   int // 0 checkbox, 1 entry, 2 save button
}

const settingsFields = 3

func newSettingsDialog() settingsDialog {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "Enter something"
	ti.Width = 32
	return settingsDialog{input: ti}
}

func (d settingsDialog) setFocus(i int) (settingsDialog, tea.Cmd) {
	d.focus = (i%settingsFields + settingsFields) % settingsFields
	if d.focus == 1 {
		cmd := d.input.Focus()
		return d, cmd
	}
	d.input.Blur()
	return d, nil
}

func (d settingsDialog) Update(msg tea.Msg) (dialog, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "esc":
			return d, closeDialog
		case "tab", "down":
			return d.setFocus(d.focus + 1)
		case "shift+tab", "up":
			return d.setFocus(d.focus - 1)
		case "enter":
			if d.focus == 1 {
				return d.setFocus(2)
			}
			if d.focus == 2 {
				return d, emit(settingsSavedMsg{enabled: d.enabled, text: d.input.Value()})
			}
			d.enabled = !d.enabled
			return d, nil
		case " ":
			if d.focus == 0 {
				d.enabled = !d.enabled
				return d, nil
			}
		}
	}
	if d.focus != 1 {
		return d, nil
	}
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

func (d settingsDialog) View(st Styles) string {
	mark := "[ ]"
	if d.enabled {
		mark = "[x]"
	}
	pointer := func(i int) string {
		if d.focus == i {
			return "› "
		}
		return "  "
	}
	button := st.DialogButton.Render("Save Settings")
	if d.focus == 2 {
		button = st.DialogButton.Bold(true).Underline(true).Render("Save Settings")
	}
	body := strings.Join([]string{
		"Choose your setting:",
		"",
		pointer(0) + mark + " Enable Feature",
		"",
		pointer(1) + "Enter something:",
		"  " + d.input.View(),
		"",
		pointer(2) + button,
	}, "\n")
	return frame(st, "Settings", body)
}

// FontFamilies are the families offered by the font picker.
var FontFamilies = []string{
	"Courier New",
	"Consolas",
	"DejaVu Sans Mono",
	"Fira Code",
	"JetBrains Mono",
	"Menlo",
	"Monaco",
	"Source Code Pro",
}

// fontDialog picks a family with up/down and a size with left/right.
type fontDialog struct {
	families []string
	cursor   int
	size     int
}

func newFontDialog(current settings.Font) fontDialog {
	families := slices.Clone(FontFamilies)
	if !slices.Contains(families, current.Family) && current.Family != "" {
		families = append([]string{current.Family}, families...)
	}
	return fontDialog{
		families: families,
		cursor:   max(slices.Index(families, current.Family), 0),
		size:     max(current.Size, 1),
	}
}

func (d fontDialog) Update(msg tea.Msg) (dialog, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}
	switch k.String() {
	case "esc":
		return d, closeDialog
	case "up", "k":
		d.cursor = clamp(d.cursor-1, 0, len(d.families)-1)
	case "down", "j":
		d.cursor = clamp(d.cursor+1, 0, len(d.families)-1)
	case "left", "-":
		d.size = max(d.size-1, 1)
	case "right", "+", "=":
		d.size++
	case "enter":
		return d, emit(fontChosenMsg{font: settings.Font{Family: d.families[d.cursor], Size: d.size}})
	}
	return d, nil
}

func (d fontDialog) View(st Styles) string {
	rows := make([]string, len(d.families))
	for i, fam := range d.families {
		if i == d.cursor {
			rows[i] = st.MenuItemOn.Render("› " + fam)
		} else {
			rows[i] = st.MenuItem.Render("  " + fam)
		}
	}
	body := strings.Join(rows, "\n") +
		fmt.Sprintf("\n\nSize: ‹ %d ›", d.size) +
		"\n\n" + st.Muted.Render("↑/↓ family · ←/→ size · enter apply · esc cancel")
	return frame(st, "Font", body)
}
