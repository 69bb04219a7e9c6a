// Package textstore persists the checklist as plain, line-oriented text files.
package textstore

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Default file names, relative to the store directory.
const (
	DefaultItemsFile    = "ToDoList.txt"
	DefaultArchiveFile  = "Archives.txt"
	DefaultGeometryFile = "Position.txt"
)

// Text-backed storage. One file per concern, human-editable.
// No locking; every write comes from the program's single update loop.
type Store struct {
	Dir          string
	ItemsFile    string
	ArchiveFile  string
	GeometryFile string
}

// New returns a Store rooted at dir with the default file names. An empty dir
// means the current working directory.
func New(dir string) Store {
	return Store{
		Dir:          dir,
		ItemsFile:    DefaultItemsFile,
		ArchiveFile:  DefaultArchiveFile,
		GeometryFile: DefaultGeometryFile,
	}
}

func (s Store) path(name string) (string, error) {
	if filepath.IsAbs(name) {
		return name, nil
	}
	dir := s.Dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getwd: %w", err)
		}
		dir = wd
	}
	return filepath.Join(dir, name), nil
}

// ItemsPath returns the resolved path of the active-items file.
func (s Store) ItemsPath() (string, error) { return s.path(s.ItemsFile) }

// ArchivePath returns the resolved path of the archive file.
func (s Store) ArchivePath() (string, error) { return s.path(s.ArchiveFile) }

// GeometryPath returns the resolved path of the geometry file.
func (s Store) GeometryPath() (string, error) { return s.path(s.GeometryFile) }

func newline() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// readLines returns the file's lines without terminators. A missing file is
// reported as os.ErrNotExist so callers can decide what absence means.
func readLines(p string) ([]string, error) {
	b, err := os.ReadFile(p)
	if err != nil {
		return nil, err
	}
	sc := bufio.NewScanner(bytes.NewReader(b))
	sc.Buffer(make([]byte, 0, 64*1024), len(b)+1)
	lines := []string{}
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan %s: %w", filepath.Base(p), err)
	}
	return lines, nil
}

func writeLines(p string, lines []string) error {
	var b strings.Builder
	nl := newline()
	for _, ln := range lines {
		b.WriteString(ln)
		b.WriteString(nl)
	}
	if err := os.WriteFile(p, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

func isNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
