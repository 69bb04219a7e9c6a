package textstore

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/idilsaglam/checklist/internal/model"
)

func TestLoadItems_MissingFile(t *testing.T) {
	s := New(t.TempDir())
	items, err := s.LoadItems()
	if err != nil {
		t.Fatalf("LoadItems: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no items, got %q", items)
	}
}

func TestSaveLoadItems_RoundTrip(t *testing.T) {
	s := New(t.TempDir())
	want := []string{"Buy milk", "Call mom", "Task", "Task"}
	if err := s.SaveItems(want); err != nil {
		t.Fatalf("SaveItems: %v", err)
	}
	got, err := s.LoadItems()
	if err != nil {
		t.Fatalf("LoadItems: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip: got %q, want %q", got, want)
	}
}

func TestSaveItems_Idempotent(t *testing.T) {
	s := New(t.TempDir())
	items := []string{"one", "two", "three"}
	p, _ := s.ItemsPath()

	if err := s.SaveItems(items); err != nil {
		t.Fatalf("first save: %v", err)
	}
	first, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if err := s.SaveItems(items); err != nil {
		t.Fatalf("second save: %v", err)
	}
	second, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("saves differ:\n%q\n%q", first, second)
	}
}

func TestLoadItems_Verbatim(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	content := "  padded  \r\n\r\nlast"
	if err := os.WriteFile(filepath.Join(dir, DefaultItemsFile), []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := s.LoadItems()
	if err != nil {
		t.Fatalf("LoadItems: %v", err)
	}
	want := []string{"  padded  ", "", "last"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSaveItems_Empty(t *testing.T) {
	s := New(t.TempDir())
	if err := s.SaveItems(nil); err != nil {
		t.Fatalf("SaveItems: %v", err)
	}
	p, _ := s.ItemsPath()
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(b) != 0 {
		t.Fatalf("expected empty file, got %q", b)
	}
}

func TestSaveItems_Unwritable(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "missing", "dir"))
	if err := s.SaveItems([]string{"x"}); err == nil {
		t.Fatal("expected error writing into a missing directory")
	}
}

func TestAppendArchive(t *testing.T) {
	s := New(t.TempDir())
	at := time.Date(2024, 3, 9, 7, 5, 1, 0, time.Local)
	for _, text := range []string{"Buy milk", "Call mom"} {
		if err := s.AppendArchive(model.ArchiveEntry{At: at, Text: text}); err != nil {
			t.Fatalf("AppendArchive(%q): %v", text, err)
		}
	}
	p, _ := s.ArchivePath()
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read archive: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(b), "\r\n"), newline())
	want := []string{
		"2024/03/09 07:05:01: Buy milk",
		"2024/03/09 07:05:01: Call mom",
	}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("archive: got %q, want %q", lines, want)
	}
}

func TestAppendArchive_Failure(t *testing.T) {
	s := New(t.TempDir())
	// A directory where the archive file should be makes the open fail.
	p, _ := s.ArchivePath()
	if err := os.Mkdir(p, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := s.AppendArchive(model.ArchiveEntry{At: time.Now(), Text: "x"}); err == nil {
		t.Fatal("expected append error")
	}
}

func TestGeometry_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	content := "x: 12\ny: -4\nw: 250\nh: 150\n"
	if err := os.WriteFile(filepath.Join(dir, DefaultGeometryFile), []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	g, ok := s.LoadGeometry()
	if !ok {
		t.Fatal("LoadGeometry: expected ok")
	}
	want := model.Geometry{Left: 12, Top: -4, Width: 250, Height: 150}
	if g != want {
		t.Fatalf("LoadGeometry: got %+v, want %+v", g, want)
	}
	if err := s.SaveGeometry(g); err != nil {
		t.Fatalf("SaveGeometry: %v", err)
	}
	again, ok := s.LoadGeometry()
	if !ok || again != want {
		t.Fatalf("reload: got %+v (ok=%v), want %+v", again, ok, want)
	}
}

func TestGeometry_Missing(t *testing.T) {
	s := New(t.TempDir())
	if _, ok := s.LoadGeometry(); ok {
		t.Fatal("LoadGeometry: expected absent")
	}
}

func TestParseGeometry(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  model.Geometry
		ok    bool
	}{
		{"valid", []string{"x: 1", "y: 2", "w: 3", "h: 4"}, model.Geometry{Left: 1, Top: 2, Width: 3, Height: 4}, true},
		{"padded value", []string{"x:  1 ", "y: 2", "w: 3", "h: 4"}, model.Geometry{Left: 1, Top: 2, Width: 3, Height: 4}, true},
		{"three lines", []string{"x: 1", "y: 2", "w: 3"}, model.Geometry{}, false},
		{"five lines", []string{"x: 1", "y: 2", "w: 3", "h: 4", ""}, model.Geometry{}, false},
		{"missing space", []string{"x:5", "y: 2", "w: 3", "h: 4"}, model.Geometry{}, false},
		{"wrong order", []string{"y: 2", "x: 1", "w: 3", "h: 4"}, model.Geometry{}, false},
		{"not a number", []string{"x: 1", "y: two", "w: 3", "h: 4"}, model.Geometry{}, false},
		{"float", []string{"x: 1", "y: 2", "w: 3.5", "h: 4"}, model.Geometry{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseGeometry(tt.lines)
			if ok != tt.ok {
				t.Fatalf("ok: got %v, want %v", ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("geometry: got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestGeometry_MalformedFileExists(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	if err := os.WriteFile(filepath.Join(dir, DefaultGeometryFile), []byte("x:5\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, ok := s.LoadGeometry(); ok {
		t.Fatal("LoadGeometry: expected malformed file to be absent")
	}
}
