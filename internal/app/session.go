package app

import (
	"path/filepath"

	"github.com/iw2rmb/procode/internal/settings"
	"github.com/iw2rmb/procode/syntax"
)

// Session is the editing state shared by every action: the document path
// (empty for an untitled buffer), the font preference and the directory
// shown in the file tree.
type Session struct {
	FilePath string
	Font     settings.Font
	Dir      string
	Language string

	// savedVersion is the buffer text version last written or loaded.
	savedVersion uint64
}

// Title is the file name shown in the status bar.
func (s Session) Title() string {
	if s.FilePath == "" {
		return "untitled"
	}
	return filepath.Base(s.FilePath)
}

// setPath records a new document path and re-detects its language.
func (s *Session) setPath(path string, content []byte) {
	s.FilePath = path
	s.Language = syntax.DetectLanguage(path, content)
}
