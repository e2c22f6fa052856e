package editor

import (
	"slices"
	"sort"
	"strings"
)

// TagSpan marks [StartCol, EndCol) of Row with Tag. Columns are rune
// indices into the buffer line.
type TagSpan struct {
	Tag      string
	Row      int
	StartCol int
	EndCol   int
}

// Highlighter produces tag spans for a full buffer snapshot.
//
// Tags lists every tag Highlight may return. The editor removes all of them
// before applying a pass, so a pass on unchanged text leaves the same tags
// as the pass before it.
type Highlighter interface {
	Tags() []string
	Highlight(text string) []TagSpan
}

// HighlighterFunc adapts a function and a fixed tag set to Highlighter.
type HighlighterFunc struct {
	TagNames []string
	Fn       func(text string) []TagSpan
}

func (h HighlighterFunc) Tags() []string { return h.TagNames }

func (h HighlighterFunc) Highlight(text string) []TagSpan {
	if h.Fn == nil {
		return nil
	}
	return h.Fn(text)
}

// tagStore is an immutable per-row index of applied tags; every mutation
// returns a new store.
type tagStore struct {
	byRow map[int][]TagSpan
}

func (s tagStore) without(tags []string) tagStore {
	if len(s.byRow) == 0 || len(tags) == 0 {
		return s
	}
	next := tagStore{byRow: make(map[int][]TagSpan, len(s.byRow))}
	for row, spans := range s.byRow {
		kept := make([]TagSpan, 0, len(spans))
		for _, sp := range spans {
			if !slices.Contains(tags, sp.Tag) {
				kept = append(kept, sp)
			}
		}
		if len(kept) > 0 {
			next.byRow[row] = kept
		}
	}
	return next
}

func (s tagStore) with(spans []TagSpan) tagStore {
	next := tagStore{byRow: make(map[int][]TagSpan, len(s.byRow)+len(spans))}
	for row, existing := range s.byRow {
		next.byRow[row] = slices.Clone(existing)
	}
	for _, sp := range spans {
		if sp.Row < 0 || sp.Tag == "" {
			continue
		}
		if sp.EndCol < sp.StartCol {
			sp.StartCol, sp.EndCol = sp.EndCol, sp.StartCol
		}
		if sp.StartCol == sp.EndCol {
			continue
		}
		next.byRow[sp.Row] = append(next.byRow[sp.Row], sp)
	}
	return next
}

func (s tagStore) row(row int) []TagSpan { return s.byRow[row] }

func (s tagStore) all() []TagSpan {
	var out []TagSpan
	for _, spans := range s.byRow {
		out = append(out, spans...)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Row != b.Row {
			return a.Row < b.Row
		}
		if a.StartCol != b.StartCol {
			return a.StartCol < b.StartCol
		}
		if a.EndCol != b.EndCol {
			return a.EndCol < b.EndCol
		}
		return strings.Compare(a.Tag, b.Tag) < 0
	})
	return out
}

// styledSpan is a tag span resolved against Style.Tags for one row.
type styledSpan struct {
	startCol, endCol int
	tag              string
}

// normalizeRowSpans clamps spans to lineLen, drops tags without a style,
// and enforces non-overlap deterministically by dropping any span that
// starts inside an earlier one.
func normalizeRowSpans(spans []TagSpan, lineLen int, styled func(tag string) bool) []styledSpan {
	if len(spans) == 0 {
		return nil
	}
	out := make([]styledSpan, 0, len(spans))
	for _, sp := range spans {
		if styled != nil && !styled(sp.Tag) {
			continue
		}
		start := clampInt(sp.StartCol, 0, lineLen)
		end := clampInt(sp.EndCol, 0, lineLen)
		if start == end {
			continue
		}
		out = append(out, styledSpan{startCol: start, endCol: end, tag: sp.Tag})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].startCol != out[j].startCol {
			return out[i].startCol < out[j].startCol
		}
		return out[i].endCol < out[j].endCol
	})

	merged := out[:0]
	for _, sp := range out {
		if n := len(merged); n > 0 && sp.startCol < merged[n-1].endCol {
			continue
		}
		merged = append(merged, sp)
	}
	return merged
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
