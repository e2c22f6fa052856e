package syntax

import (
	"iter"
	"unicode/utf8"
)

// Span colours [StartCol, EndCol) of Line with Category's style.
// Columns are rune indices.
type Span struct {
	Category Category
	Line     int
	StartCol int
	EndCol   int
}

// PositionMode selects how token offsets become line/column coordinates.
type PositionMode int

const (
	// PositionAllLines resolves offsets against every line break of the
	// snapshot and splits multi-line tokens into one span per line.
	PositionAllLines PositionMode = iota
	// PositionFirstLine maps every token onto line 0 at its flat offset,
	// so only the first line of a multi-line buffer colours correctly.
	// Kept for compatibility with the original editor's output.
	PositionFirstLine
)

// Mapper converts tokens into spans.
type Mapper struct {
	Mode PositionMode
}

// Spans maps every non-Plain, non-empty token of tokens to spans over text.
// tokens must have been produced from text.
func (m Mapper) Spans(text string, tokens iter.Seq[Token]) []Span {
	var out []Span
	starts := NewLineStarts(text)
	for tok := range tokens {
		if tok.Category == Plain || tok.Text == "" {
			continue
		}
		if m.Mode == PositionFirstLine {
			n := utf8.RuneCountInString(tok.Text)
			out = append(out, Span{Category: tok.Category, StartCol: tok.Offset, EndCol: tok.Offset + n})
			continue
		}
		out = appendTokenSpans(out, tok, starts)
	}
	return out
}

func appendTokenSpans(out []Span, tok Token, starts LineStarts) []Span {
	line, col := starts.Position(tok.Offset)
	start := col
	for _, r := range tok.Text {
		if r != '\n' {
			col++
			continue
		}
		if col > start {
			out = append(out, Span{Category: tok.Category, Line: line, StartCol: start, EndCol: col})
		}
		line++
		col, start = 0, 0
	}
	if col > start {
		out = append(out, Span{Category: tok.Category, Line: line, StartCol: start, EndCol: col})
	}
	return out
}

// Highlighter runs a full tokenize-and-map pass over a snapshot.
type Highlighter struct {
	Tokenizer *Tokenizer
	Mapper    Mapper
}

// NewHighlighter returns a Python highlighter using mode.
func NewHighlighter(mode PositionMode) *Highlighter {
	return &Highlighter{Tokenizer: NewPythonTokenizer(), Mapper: Mapper{Mode: mode}}
}

// Spans computes every span for text from scratch.
func (h *Highlighter) Spans(text string) []Span {
	if h == nil || h.Tokenizer == nil {
		return nil
	}
	return h.Mapper.Spans(text, h.Tokenizer.Tokens(text))
}
