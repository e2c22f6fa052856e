package syntax

import (
	"path/filepath"

	enry "github.com/go-enry/go-enry/v2"
)

// LanguagePython is the only language the highlighter colours.
const LanguagePython = "Python"

// DetectLanguage names the language of a file from its path and content.
// Untitled buffers are treated as Python. An empty result means unknown.
func DetectLanguage(path string, content []byte) string {
	if path == "" {
		return LanguagePython
	}
	if lang, safe := enry.GetLanguageByExtension(filepath.Base(path)); safe {
		return lang
	}
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return lang
	}
	return enry.GetLanguage(filepath.Base(path), content)
}

// Highlightable reports whether buffers of lang get syntax colouring.
func Highlightable(lang string) bool {
	return lang == LanguagePython
}
