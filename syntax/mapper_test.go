package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func spanOf(spans []Span, cat Category, line int) []Span {
	var out []Span
	for _, sp := range spans {
		if sp.Category == cat && sp.Line == line {
			out = append(out, sp)
		}
	}
	return out
}

// coverage renders which columns of line carry cat, for multi-token runs.
func coverage(spans []Span, cat Category, line, width int) string {
	mask := make([]byte, width)
	for i := range mask {
		mask[i] = '.'
	}
	for _, sp := range spanOf(spans, cat, line) {
		for c := sp.StartCol; c < sp.EndCol && c < width; c++ {
			mask[c] = '#'
		}
	}
	return string(mask)
}

func TestLineStarts_Position(t *testing.T) {
	starts := NewLineStarts("ab\n\ncé\n")
	require.Equal(t, LineStarts{0, 3, 4, 7}, starts)
	assert.Equal(t, 4, starts.Lines())

	cases := []struct {
		offset, line, col int
	}{
		{0, 0, 0}, {2, 0, 2}, {3, 1, 0}, {4, 2, 0}, {5, 2, 1}, {7, 3, 0}, {-1, 0, 0},
	}
	for _, tc := range cases {
		line, col := starts.Position(tc.offset)
		assert.Equal(t, tc.line, line, "line of offset %d", tc.offset)
		assert.Equal(t, tc.col, col, "col of offset %d", tc.offset)
	}
}

func TestMapper_AllLines(t *testing.T) {
	src := "def f():\n    return 1\n"
	spans := NewHighlighter(PositionAllLines).Spans(src)

	assert.Contains(t, spanOf(spans, Keyword, 0), Span{Category: Keyword, Line: 0, StartCol: 0, EndCol: 3})
	assert.Contains(t, spanOf(spans, Keyword, 1), Span{Category: Keyword, Line: 1, StartCol: 4, EndCol: 10})
	assert.Contains(t, spanOf(spans, Number, 1), Span{Category: Number, Line: 1, StartCol: 11, EndCol: 12})

	for _, sp := range spans {
		assert.NotEqual(t, Plain, sp.Category)
		assert.Less(t, sp.StartCol, sp.EndCol)
	}
}

func TestMapper_FirstLineCompatibility(t *testing.T) {
	src := "def f():\n    return 1\n"
	spans := NewHighlighter(PositionFirstLine).Spans(src)

	for _, sp := range spans {
		assert.Equal(t, 0, sp.Line)
	}
	assert.Contains(t, spans, Span{Category: Keyword, Line: 0, StartCol: 13, EndCol: 19})
}

func TestMapper_SplitsMultiLineTokens(t *testing.T) {
	spans := Mapper{}.Spans("x", func(yield func(Token) bool) {
		yield(Token{Category: String, Text: "'''a\nbc\n\nd'''", Offset: 0})
	})

	assert.Equal(t, []Span{
		{Category: String, Line: 0, StartCol: 0, EndCol: 4},
		{Category: String, Line: 1, StartCol: 0, EndCol: 2},
		{Category: String, Line: 3, StartCol: 0, EndCol: 4},
	}, spans)
}

func TestMapper_DocstringAcrossLines(t *testing.T) {
	src := "\"\"\"a\nb\"\"\"\n"
	spans := NewHighlighter(PositionAllLines).Spans(src)

	assert.Equal(t, "####", coverage(spans, String, 0, 4))
	assert.Equal(t, "####", coverage(spans, String, 1, 4))
}

func TestMapper_SkipsPlainAndEmpty(t *testing.T) {
	spans := Mapper{}.Spans("a b", func(yield func(Token) bool) {
		_ = yield(Token{Category: Name, Text: "a"}) &&
			yield(Token{Category: Plain, Text: " ", Offset: 1}) &&
			yield(Token{Category: Keyword, Text: "", Offset: 2}) &&
			yield(Token{Category: Name, Text: "b", Offset: 2})
	})
	assert.Equal(t, []Span{
		{Category: Name, Line: 0, StartCol: 0, EndCol: 1},
		{Category: Name, Line: 0, StartCol: 2, EndCol: 3},
	}, spans)
}

func TestHighlighter_Idempotent(t *testing.T) {
	h := NewHighlighter(PositionAllLines)
	src := "class A:\n    x = 'y'  # z\n"
	assert.Equal(t, h.Spans(src), h.Spans(src))
}

func TestHighlighter_NilIsEmpty(t *testing.T) {
	var h *Highlighter
	assert.Nil(t, h.Spans("def x(): pass"))
}

func TestMapper_SpansStayInsideLinesProperty(t *testing.T) {
	h := NewHighlighter(PositionAllLines)
	rapid.Check(t, func(rt *rapid.T) {
		parts := rapid.SliceOf(rapid.SampledFrom(pythonFragments)).Draw(rt, "parts")
		src := ""
		for _, p := range parts {
			src += p
		}
		lines := splitRuneLines(src)
		for _, sp := range h.Spans(src) {
			if sp.Line < 0 || sp.Line >= len(lines) {
				rt.Fatalf("span line %d out of %d lines", sp.Line, len(lines))
			}
			if sp.StartCol < 0 || sp.EndCol > len(lines[sp.Line]) || sp.StartCol >= sp.EndCol {
				rt.Fatalf("span %+v outside line %q", sp, string(lines[sp.Line]))
			}
		}
	})
}

func splitRuneLines(s string) [][]rune {
	out := [][]rune{nil}
	for _, r := range s {
		if r == '\n' {
			out = append(out, nil)
			continue
		}
		out[len(out)-1] = append(out[len(out)-1], r)
	}
	return out
}
