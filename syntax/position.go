package syntax

import "sort"

// LineStarts holds the rune offset at which each line of a snapshot begins.
// It always has at least one entry (0).
type LineStarts []int

func NewLineStarts(text string) LineStarts {
	starts := LineStarts{0}
	i := 0
	for _, r := range text {
		i++
		if r == '\n' {
			starts = append(starts, i)
		}
	}
	return starts
}

// Lines is the number of lines in the snapshot.
func (s LineStarts) Lines() int { return len(s) }

// Position converts a flat rune offset into a 0-based (line, column) pair.
// Offsets before the text clamp to (0, 0).
func (s LineStarts) Position(offset int) (line, col int) {
	if offset <= 0 || len(s) == 0 {
		return 0, max(offset, 0)
	}
	line = sort.Search(len(s), func(i int) bool { return s[i] > offset }) - 1
	return line, offset - s[line]
}
