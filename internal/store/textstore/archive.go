package textstore

import (
	"fmt"
	"os"

	"github.com/idilsaglam/checklist/internal/model"
)

// AppendArchive appends one completed-item line to the archive file,
// creating it if needed.
func (s Store) AppendArchive(e model.ArchiveEntry) error {
	p, err := s.ArchivePath()
	if err != nil {
		return err
	}
	f, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}
	if _, err := f.WriteString(e.Line() + newline()); err != nil {
		_ = f.Close()
		return fmt.Errorf("append archive: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close archive: %w", err)
	}
	return nil
}
