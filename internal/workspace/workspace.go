// Package workspace lists and reads/writes the files the editor works on.
// All access goes through an afero.Fs so tests run on memory file systems.
package workspace

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/spf13/afero"
)

// DefaultFileMode is the permission mode for newly created files.
const DefaultFileMode os.FileMode = 0o644

// ErrNotText is returned when a file is not valid UTF-8.
var ErrNotText = errors.New("file is not UTF-8 text")

// Entry is one item of a directory listing.
type Entry struct {
	Name  string
	Path  string
	IsDir bool
}

// Workspace resolves relative paths against Dir.
type Workspace struct {
	fs  afero.Fs
	dir string
}

func New(fsys afero.Fs, dir string) *Workspace {
	if dir == "" {
		dir = "."
	}
	return &Workspace{fs: fsys, dir: dir}
}

// OS returns a workspace on the real file system.
func OS(dir string) *Workspace { return New(afero.NewOsFs(), dir) }

func (w *Workspace) Dir() string { return w.dir }

func (w *Workspace) Fs() afero.Fs { return w.fs }

// Resolve joins a user-supplied relative name onto the workspace directory.
// It is applied once, where names enter the program; List entries and the
// I/O methods below take paths that are already resolved.
func (w *Workspace) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(w.dir, path)
}

// List returns the immediate entries of the workspace directory sorted by
// name. Nothing is filtered and subdirectories are not descended into.
func (w *Workspace) List(ctx context.Context) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("list %s: %w", w.dir, err)
	}
	infos, err := afero.ReadDir(w.fs, w.dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", w.dir, err)
	}
	out := make([]Entry, 0, len(infos))
	for _, info := range infos {
		out = append(out, Entry{
			Name:  info.Name(),
			Path:  filepath.Join(w.dir, info.Name()),
			IsDir: info.IsDir(),
		})
	}
	return out, nil
}

// IsRegular reports whether path names an existing regular file.
func (w *Workspace) IsRegular(path string) bool {
	info, err := w.fs.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// ReadFile reads the whole file at path as UTF-8 text.
func (w *Workspace) ReadFile(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	info, err := w.fs.Stat(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("read %s: %w", path, fs.ErrInvalid)
	}
	data, err := afero.ReadFile(w.fs, path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("read %s: %w", path, ErrNotText)
	}
	return string(data), nil
}

// WriteFile replaces the file through a temp file and rename. An existing
// file keeps its mode; a new one gets DefaultFileMode.
func (w *Workspace) WriteFile(ctx context.Context, path, text string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	mode := DefaultFileMode
	if info, err := w.fs.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("write %s: %w", path, fs.ErrInvalid)
		}
		mode = info.Mode().Perm()
	}

	tmp, err := afero.TempFile(w.fs, filepath.Dir(path), filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = w.fs.Remove(tmpPath)
		}
	}()

	if _, err := tmp.WriteString(text); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := w.fs.Chmod(tmpPath, mode); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := w.fs.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	success = true
	return nil
}
