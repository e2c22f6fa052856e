// Package buffer implements the pure, rune-accurate document model behind
// the editor pane.
//
// Coordinates are 0-based (Row, Col) in runes, the same unit the syntax
// package uses for token offsets. Ranges are half-open: [Start, End).
package buffer
