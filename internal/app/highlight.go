package app

import (
	"github.com/iw2rmb/procode/editor"
	"github.com/iw2rmb/procode/syntax"
)

// syntaxHighlighter feeds syntax spans into the editor's tag layer. Each
// category becomes the tag of the same name.
type syntaxHighlighter struct {
	h *syntax.Highlighter
}

// newHighlighter returns nil for languages that are not coloured, which
// clears any tags left by the previous document.
func newHighlighter(lang string, mode syntax.PositionMode) editor.Highlighter {
	if !syntax.Highlightable(lang) {
		return nil
	}
	return syntaxHighlighter{h: syntax.NewHighlighter(mode)}
}

func (s syntaxHighlighter) Tags() []string { return syntax.Tags() }

func (s syntaxHighlighter) Highlight(text string) []editor.TagSpan {
	spans := s.h.Spans(text)
	out := make([]editor.TagSpan, 0, len(spans))
	for _, sp := range spans {
		out = append(out, editor.TagSpan{
			Tag:      sp.Category.Tag(),
			Row:      sp.Line,
			StartCol: sp.StartCol,
			EndCol:   sp.EndCol,
		})
	}
	return out
}
