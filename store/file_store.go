package store

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

const tempSuffix = ".tmp"

// FlatFileStore implements LineStore with one plain text file per name inside a
// data directory. It works against an afero.Fs so callers can substitute an
// in-memory filesystem.
type FlatFileStore struct {
	fs  afero.Fs
	dir string
}

// NewFlatFileStore creates the data directory if needed and returns a store rooted there.
// Use afero.NewOsFs() for real files, or afero.NewMemMapFs() for testing.
func NewFlatFileStore(fsys afero.Fs, dir string) (*FlatFileStore, error) {
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return nil, ioErr("mkdir", dir, err)
	}
	return &FlatFileStore{fs: fsys, dir: dir}, nil
}

// NewOsFlatFileStore creates a FlatFileStore on the operating system filesystem.
func NewOsFlatFileStore(dir string) (*FlatFileStore, error) {
	return NewFlatFileStore(afero.NewOsFs(), dir)
}

// Dir returns the data directory.
func (s *FlatFileStore) Dir() string {
	return s.dir
}

func (s *FlatFileStore) path(name string) string {
	return filepath.Join(s.dir, name)
}

// Read returns the lines of the named file, or an empty slice if it does not exist.
func (s *FlatFileStore) Read(name string) ([]string, error) {
	data, err := afero.ReadFile(s.fs, s.path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, ioErr("read", name, err)
	}
	return splitLines(string(data)), nil
}

// Write replaces the named file. Content goes to a temporary sibling first and
// is renamed over the target, so a failed write leaves the previous file intact.
func (s *FlatFileStore) Write(name string, lines []string) error {
	target := s.path(name)
	tmp := target + tempSuffix
	defer func() { _ = s.fs.Remove(tmp) }()

	if err := afero.WriteFile(s.fs, tmp, []byte(joinLines(lines)), 0o644); err != nil {
		return ioErr("write", name, err)
	}
	if err := s.fs.Rename(tmp, target); err != nil {
		return ioErr("write", name, err)
	}
	return nil
}

// Backup copies every existing data file into destDir on the same filesystem.
func (s *FlatFileStore) Backup(destDir string) error {
	if err := s.fs.MkdirAll(destDir, 0o755); err != nil {
		return ioErr("backup", destDir, err)
	}
	for _, name := range DataFiles {
		data, err := afero.ReadFile(s.fs, s.path(name))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return ioErr("backup", name, err)
		}
		if err := afero.WriteFile(s.fs, filepath.Join(destDir, name), data, 0o644); err != nil {
			return ioErr("backup", name, err)
		}
	}
	return nil
}

// Close is a no-op; files are never held open between calls.
func (s *FlatFileStore) Close() error {
	return nil
}

// splitLines splits file content into lines. A trailing newline does not
// produce an empty last line and CRLF endings are tolerated.
func splitLines(content string) []string {
	if content == "" {
		return []string{}
	}
	content = strings.TrimSuffix(content, "\n")
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
