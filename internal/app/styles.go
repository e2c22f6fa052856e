package app

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/procode/editor"
	"github.com/iw2rmb/procode/syntax"
)

// Dark palette.
var (
	colorPanel  = lipgloss.Color("#333333")
	colorActive = lipgloss.Color("#3E4451")
	colorSelect = lipgloss.Color("#555555")
	colorText   = lipgloss.Color("#FFFFFF")
	colorMuted  = lipgloss.Color("#8A8F98")
	colorAccent = lipgloss.Color("#569CD6")
	colorError  = lipgloss.Color("#F44747")
)

// Styles is the shell's look.
type Styles struct {
	MenuBar      lipgloss.Style
	MenuTitle    lipgloss.Style
	MenuTitleOn  lipgloss.Style
	MenuBox      lipgloss.Style
	MenuItem     lipgloss.Style
	MenuItemOn   lipgloss.Style
	MenuHint     lipgloss.Style
	Tree         lipgloss.Style
	TreeItem     lipgloss.Style
	TreeItemOn   lipgloss.Style
	TreeDir      lipgloss.Style
	StatusBar    lipgloss.Style
	StatusInfo   lipgloss.Style
	Dialog       lipgloss.Style
	DialogTitle  lipgloss.Style
	DialogError  lipgloss.Style
	DialogButton lipgloss.Style
	Muted        lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		MenuBar:      lipgloss.NewStyle().Background(colorPanel).Foreground(colorText),
		MenuTitle:    lipgloss.NewStyle().Background(colorPanel).Foreground(colorText).Padding(0, 1),
		MenuTitleOn:  lipgloss.NewStyle().Background(colorActive).Foreground(colorText).Padding(0, 1).Bold(true),
		MenuBox:      lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(colorActive).Background(colorPanel),
		MenuItem:     lipgloss.NewStyle().Foreground(colorText).Padding(0, 1),
		MenuItemOn:   lipgloss.NewStyle().Background(colorActive).Foreground(colorText).Padding(0, 1),
		MenuHint:     lipgloss.NewStyle().Foreground(colorMuted),
		Tree:         lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, true, false, false).BorderForeground(colorActive),
		TreeItem:     lipgloss.NewStyle().Foreground(colorText),
		TreeItemOn:   lipgloss.NewStyle().Background(colorSelect).Foreground(colorText),
		TreeDir:      lipgloss.NewStyle().Foreground(colorAccent),
		StatusBar:    lipgloss.NewStyle().Background(colorActive).Foreground(colorText),
		StatusInfo:   lipgloss.NewStyle().Foreground(colorMuted),
		Dialog:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorAccent).Padding(1, 2),
		DialogTitle:  lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		DialogError:  lipgloss.NewStyle().Foreground(colorError),
		DialogButton: lipgloss.NewStyle().Background(colorActive).Foreground(colorText).Padding(0, 1),
		Muted:        lipgloss.NewStyle().Foreground(colorMuted),
	}
}

// EditorStyle is the editor pane look with tag colours from theme.
func EditorStyle(theme syntax.Theme) editor.Style {
	return editor.DefaultStyle().WithTags(theme.TagStyles())
}
