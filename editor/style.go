package editor

import "github.com/charmbracelet/lipgloss"

// Style is the look of both panes.
type Style struct {
	// Gutter pads the line-number pane; LineNum draws each label and
	// LineNumActive the label of the cursor row while focused.
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text      lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style

	// Tags styles tag names applied by the Highlighter. Tags without an
	// entry are tracked but render as plain text.
	Tags map[string]lipgloss.Style
}

// DefaultStyle is the dark palette: light text on #282c34 with a #333333
// gutter.
func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Background(lipgloss.Color("#333333")).Foreground(lipgloss.Color("#8A8F98"))
	return Style{
		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: gutter.Foreground(lipgloss.Color("#FFFFFF")).Bold(true),
		Text:          lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")),
		Selection:     lipgloss.NewStyle().Background(lipgloss.Color("#3E4451")),
		Cursor:        lipgloss.NewStyle().Reverse(true),
	}
}

// WithTags returns s with its tag styles replaced.
func (s Style) WithTags(tags map[string]lipgloss.Style) Style {
	s.Tags = tags
	return s
}

// tagStyle resolves tag over the text style. ok is false for tags with no
// entry.
func (s Style) tagStyle(tag string) (st lipgloss.Style, ok bool) {
	st, ok = s.Tags[tag]
	if !ok {
		return s.Text, false
	}
	return st.Inherit(s.Text), true
}
