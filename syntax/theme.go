package syntax

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

// Theme maps categories to display styles. Categories without an entry
// render as plain text.
type Theme map[Category]lipgloss.Style

// DefaultTheme is the dark palette the editor ships with.
func DefaultTheme() Theme {
	fg := func(hex string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	}
	return Theme{
		Keyword: fg("#569CD6"),
		Comment: fg("#6A9955").Italic(true),
		String:  fg("#CE9178"),
		Number:  fg("#B5CEA8"),
		Other:   fg("#F44747"),
	}
}

var chromaTypes = map[Category]chroma.TokenType{
	Keyword:     chroma.Keyword,
	Name:        chroma.NameFunction,
	String:      chroma.LiteralString,
	Number:      chroma.LiteralNumber,
	Comment:     chroma.Comment,
	Operator:    chroma.Operator,
	Punctuation: chroma.Punctuation,
	Other:       chroma.Error,
}

// ThemeFromChroma derives a theme from a registered Chroma style.
// ok is false when name is not registered.
func ThemeFromChroma(name string) (theme Theme, ok bool) {
	st, ok := styles.Registry[name]
	if !ok || st == nil {
		return nil, false
	}

	plain := st.Get(chroma.Text).Colour
	theme = Theme{}
	for cat, tt := range chromaTypes {
		entry := st.Get(tt)
		if !entry.Colour.IsSet() || entry.Colour == plain {
			continue
		}
		s := lipgloss.NewStyle().Foreground(lipgloss.Color(entry.Colour.String()))
		if entry.Bold == chroma.Yes {
			s = s.Bold(true)
		}
		if entry.Italic == chroma.Yes {
			s = s.Italic(true)
		}
		theme[cat] = s
	}
	return theme, true
}

// TagStyles keys the theme by tag name for the editor's tag layer.
func (t Theme) TagStyles() map[string]lipgloss.Style {
	out := make(map[string]lipgloss.Style, len(t))
	for cat, st := range t {
		out[cat.Tag()] = st
	}
	return out
}
