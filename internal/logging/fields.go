package logging

// Field name constants for structured logging.
const (
	FieldError   = "error"
	FieldPath    = "path"
	FieldDir     = "dir"
	FieldVersion = "version"

	// Editor fields.
	FieldAction   = "action"
	FieldLanguage = "language"
	FieldLines    = "lines"
	FieldTheme    = "theme"

	// Settings fields.
	FieldFontFamily = "font_family"
	FieldFontSize   = "font_size"
	FieldOption     = "option"
	FieldValue      = "value"
)
