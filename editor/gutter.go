package editor

import (
	"fmt"
	"strconv"
	"strings"
)

// LineCount returns the number of lines in text: the number of '\n' plus
// one. An empty text has one line.
func LineCount(text string) int {
	return strings.Count(text, "\n") + 1
}

// GutterLines returns the labels 1..n in order. n < 1 is treated as 1.
func GutterLines(n int) []int {
	if n < 1 {
		n = 1
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// LineNumberWidth returns the gutter width for lineCount: the digit count
// of the largest label plus one separator cell.
func LineNumberWidth(lineCount int) int {
	return gutterDigits(lineCount) + 1
}

func gutterDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return len(strconv.Itoa(lineCount))
}

// renderGutter builds the gutter content, one right-aligned label per
// buffer line. Labels outside the window are left empty. The whole string
// replaces the gutter viewport content.
func (m Model) renderGutter() string {
	n := m.buf.LineCount()
	digits := gutterDigits(n)
	cursorRow := m.buf.Cursor().Row
	sep := m.cfg.Style.Gutter.Render(" ")
	first, last := m.window()

	var sb strings.Builder
	for _, label := range GutterLines(n) {
		if label > 1 {
			sb.WriteByte('\n')
		}
		if label-1 < first || label-1 >= last {
			continue
		}
		st := m.cfg.Style.LineNum
		if m.focused && label-1 == cursorRow {
			st = m.cfg.Style.LineNumActive
		}
		sb.WriteString(st.Render(fmt.Sprintf("%*d", digits, label)))
		sb.WriteString(sep)
	}
	return sb.String()
}
