package model

import (
	"testing"
	"time"
)

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	at, err := time.ParseInLocation(ArchiveLayout, s, time.Local)
	if err != nil {
		t.Fatalf("parse time %q: %v", s, err)
	}
	return at
}

func TestArchiveEntryLine(t *testing.T) {
	e := ArchiveEntry{At: mustTime(t, "2024/03/09 07:05:01"), Text: "Buy milk"}
	if got, want := e.Line(), "2024/03/09 07:05:01: Buy milk"; got != want {
		t.Errorf("Line: got %q, want %q", got, want)
	}
}
