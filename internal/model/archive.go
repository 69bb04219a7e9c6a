package model

import (
	"fmt"
	"time"
)

// ArchiveLayout is the timestamp layout used for archive lines.
const ArchiveLayout = "2006/01/02 15:04:05"

// ArchiveEntry records a completed item.
type ArchiveEntry struct {
	At   time.Time
	Text string
}

// Line renders the entry as it is written to the archive file.
func (e ArchiveEntry) Line() string {
	return fmt.Sprintf("%s: %s", e.At.Format(ArchiveLayout), e.Text)
}
