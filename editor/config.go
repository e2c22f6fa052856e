package editor

import "time"

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	Style  Style
	KeyMap KeyMap // zero value uses DefaultKeyMap

	// TabWidth is the rendered width of '\t' and the indent inserted by
	// auto-indent on an unindented line. Default 4.
	TabWidth int

	// Forwarded to buffer.Options.
	HistoryLimit int

	ReadOnly bool

	// AutoIndent makes Enter carry the current line's indentation and Tab
	// repeat it.
	AutoIndent bool

	Clipboard Clipboard

	// Highlighter paints tags after every text change.
	Highlighter Highlighter
	// HighlightDelay debounces highlight passes while typing. Zero runs
	// each pass synchronously with the edit that caused it.
	HighlightDelay time.Duration

	// MouseWheelDelta is the number of rows one wheel notch scrolls.
	// Default 3.
	MouseWheelDelta int
}

func (c Config) withDefaults() Config {
	if len(c.KeyMap.Left.Keys()) == 0 {
		c.KeyMap = DefaultKeyMap()
	}
	if c.TabWidth <= 0 {
		c.TabWidth = 4
	}
	if c.MouseWheelDelta <= 0 {
		c.MouseWheelDelta = 3
	}
	return c
}
