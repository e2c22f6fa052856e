// Package editor provides the Bubble Tea text-editing pane backed by the
// buffer package.
//
// The package is responsible for input handling, the line-number gutter
// and its lock-step scrolling, rendering, and the tag layer that
// highlighters paint into. Highlighting itself is supplied by the host
// through the Highlighter interface.
package editor
