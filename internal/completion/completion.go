// Package completion implements the check-to-archive lifecycle of an item:
// Active -> PendingRemoval -> Removed.
//
// Checking an item schedules its removal after a short delay. The delay runs
// on a bubbletea timer, and the resulting DueMsg is delivered back through
// the program's update loop, so the list is only ever mutated there.
// A scheduled removal cannot be cancelled.
package completion

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/checklist/internal/checklist"
	"github.com/idilsaglam/checklist/internal/model"
)

// DefaultDelay is the pause between checking an item and removing it.
const DefaultDelay = 200 * time.Millisecond

// DueMsg is delivered when a pending removal's delay has elapsed.
type DueMsg struct {
	Seq  int
	Text string
}

// Scheduler issues delayed removals and tracks the ones still in flight.
type Scheduler struct {
	Delay time.Duration

	seq     int
	pending map[int]string
}

func NewScheduler(delay time.Duration) *Scheduler {
	if delay < 0 {
		delay = 0
	}
	return &Scheduler{Delay: delay, pending: map[int]string{}}
}

// Schedule moves text into PendingRemoval and returns the command that
// delivers its DueMsg.
func (s *Scheduler) Schedule(text string) tea.Cmd {
	s.seq++
	seq := s.seq
	s.pending[seq] = text
	return tea.Tick(s.Delay, func(time.Time) tea.Msg {
		return DueMsg{Seq: seq, Text: text}
	})
}

// Done marks a delivered removal as no longer pending.
func (s *Scheduler) Done(seq int) {
	delete(s.pending, seq)
}

// Pending returns the number of removals scheduled but not yet delivered.
func (s *Scheduler) Pending() int { return len(s.pending) }

// Store is the persistence the finisher writes through.
type Store interface {
	SaveItems(items []string) error
	AppendArchive(e model.ArchiveEntry) error
}

// Result describes one finished removal.
type Result struct {
	// Removed is false when no item with the text was left to remove.
	Removed bool
	Entry   model.ArchiveEntry
	// ArchiveErr is set when the archive append failed. It is reported to
	// the user but does not stop the program.
	ArchiveErr error
}

// Finisher performs the PendingRemoval -> Removed transition.
type Finisher struct {
	Store Store
	Now   func() time.Time
}

// Finish removes the first item equal to text, rewrites the items file and
// appends an archive entry. The archive entry is written even when no
// matching item remained. A failed items save is returned as an error; the
// in-memory list has already changed at that point.
func (f Finisher) Finish(l *checklist.List, text string) (Result, error) {
	res := Result{Removed: l.Remove(text)}
	if err := f.Store.SaveItems(l.Items()); err != nil {
		return res, fmt.Errorf("finish %q: %w", text, err)
	}
	now := time.Now
	if f.Now != nil {
		now = f.Now
	}
	res.Entry = model.ArchiveEntry{At: now().Truncate(time.Second), Text: text}
	if err := f.Store.AppendArchive(res.Entry); err != nil {
		res.ArchiveErr = fmt.Errorf("archive %q: %w", text, err)
	}
	return res, nil
}
