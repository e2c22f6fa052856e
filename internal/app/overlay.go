package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// placeOver draws fg onto bg with its top-left corner at (x, y), keeping
// the styled background on both sides of every covered line.
func placeOver(bg, fg string, x, y int) string {
	bgLines := strings.Split(bg, "\n")
	x, y = max(x, 0), max(y, 0)
	for i, fgLine := range strings.Split(fg, "\n") {
		row := y + i
		if row >= len(bgLines) {
			break
		}
		line := bgLines[row]
		left := ansi.Truncate(line, x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}
		right := ""
		if end := x + ansi.StringWidth(fgLine); end < ansi.StringWidth(line) {
			right = ansi.TruncateLeft(line, end, "")
		}
		bgLines[row] = left + fgLine + right
	}
	return strings.Join(bgLines, "\n")
}

// placeCenter draws fg in the middle of a width x height background.
func placeCenter(bg, fg string, width, height int) string {
	x := (width - lipgloss.Width(fg)) / 2
	y := (height - lipgloss.Height(fg)) / 2
	return placeOver(bg, fg, x, y)
}
