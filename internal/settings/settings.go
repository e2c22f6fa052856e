// Package settings persists editor preferences as a small JSON document:
//
//	{"font": {"family": "Courier New", "size": 12}}
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"math"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/iw2rmb/procode/internal/logging"
)

// DefaultPath is the settings file name, resolved against the working
// directory.
const DefaultPath = "settings.json"

const (
	DefaultFontFamily = "Courier New"
	DefaultFontSize   = 12

	keyFontFamily = "font.family"
	keyFontSize   = "font.size"
)

// Font is the editor font preference.
type Font struct {
	Family string `mapstructure:"family"`
	Size   int    `mapstructure:"size"`
}

// Settings is the persisted preference document.
type Settings struct {
	Font Font `mapstructure:"font"`
}

// Defaults returns the settings used when no file can be read.
func Defaults() Settings {
	return Settings{Font: Font{Family: DefaultFontFamily, Size: DefaultFontSize}}
}

const zoomFactor = 1.1

// Zoom scales the size by 1.1^step, truncating. A non-zero step always
// moves at least one point and the size never drops below 1.
func (f Font) Zoom(step int) Font {
	if step == 0 {
		return f
	}
	size := max(f.Size, 1)
	next := int(float64(size) * math.Pow(zoomFactor, float64(step)))
	switch {
	case step > 0 && next <= size:
		next = size + 1
	case step < 0 && next >= size:
		next = size - 1
	}
	f.Size = max(next, 1)
	return f
}

// Grow enlarges the font by ten percent.
func (f Font) Grow() Font { return f.Zoom(1) }

func (f Font) String() string { return fmt.Sprintf("%s %d", f.Family, f.Size) }

// Store reads and writes a settings file on an afero file system.
type Store struct {
	fs     afero.Fs
	path   string
	logger *log.Logger
}

// NewStore returns a store for path on fsys. A nil logger uses the
// package default.
func NewStore(fsys afero.Fs, path string, logger *log.Logger) *Store {
	if path == "" {
		path = DefaultPath
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Store{fs: fsys, path: path, logger: logger}
}

func (s *Store) Path() string { return s.path }

func (s *Store) newViper() *viper.Viper {
	v := viper.New()
	v.SetFs(s.fs)
	v.SetConfigFile(s.path)
	v.SetConfigType("json")
	v.SetDefault(keyFontFamily, DefaultFontFamily)
	v.SetDefault(keyFontSize, DefaultFontSize)
	return v
}

// Load reads the settings file. A missing, unreadable or malformed file
// yields Defaults; fields that are absent or invalid fall back one by one.
// Load never fails.
func (s *Store) Load() Settings {
	v := s.newViper()
	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("settings file not found, using defaults", logging.FieldPath, s.path)
		} else {
			s.logger.Warn("settings file unreadable, using defaults", logging.FieldPath, s.path, logging.FieldError, err)
		}
		return Defaults()
	}

	out := Defaults()
	if fam := v.GetString(keyFontFamily); fam != "" {
		out.Font.Family = fam
	}
	if size := v.GetInt(keyFontSize); size > 0 {
		out.Font.Size = size
	}
	s.logger.Debug("settings loaded",
		logging.FieldPath, s.path,
		logging.FieldFontFamily, out.Font.Family,
		logging.FieldFontSize, out.Font.Size)
	return out
}

// Save writes both font fields, replacing the file.
func (s *Store) Save(st Settings) error {
	v := s.newViper()
	v.Set(keyFontFamily, st.Font.Family)
	v.Set(keyFontSize, st.Font.Size)
	if err := v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("write settings %s: %w", s.path, err)
	}
	s.logger.Debug("settings saved",
		logging.FieldPath, s.path,
		logging.FieldFontFamily, st.Font.Family,
		logging.FieldFontSize, st.Font.Size)
	return nil
}
