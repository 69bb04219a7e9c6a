package textstore

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/idilsaglam/checklist/internal/model"
)

var geometryPrefixes = [4]string{"x: ", "y: ", "w: ", "h: "}

// LoadGeometry reads the saved window geometry. It returns false when the
// file is missing, unreadable or not exactly the four-line format.
func (s Store) LoadGeometry() (model.Geometry, bool) {
	p, err := s.GeometryPath()
	if err != nil {
		return model.Geometry{}, false
	}
	lines, err := readLines(p)
	if err != nil {
		return model.Geometry{}, false
	}
	return ParseGeometry(lines)
}

// ParseGeometry parses the x/y/w/h line format.
func ParseGeometry(lines []string) (model.Geometry, bool) {
	if len(lines) != len(geometryPrefixes) {
		return model.Geometry{}, false
	}
	var vals [4]int
	for i, prefix := range geometryPrefixes {
		rest, found := strings.CutPrefix(lines[i], prefix)
		if !found {
			return model.Geometry{}, false
		}
		n, err := strconv.Atoi(strings.TrimSpace(rest))
		if err != nil {
			return model.Geometry{}, false
		}
		vals[i] = n
	}
	return model.Geometry{Left: vals[0], Top: vals[1], Width: vals[2], Height: vals[3]}, true
}

// FormatGeometry renders g as the four lines of the geometry file.
func FormatGeometry(g model.Geometry) []string {
	return []string{
		fmt.Sprintf("x: %d", g.Left),
		fmt.Sprintf("y: %d", g.Top),
		fmt.Sprintf("w: %d", g.Width),
		fmt.Sprintf("h: %d", g.Height),
	}
}

// SaveGeometry overwrites the geometry file.
func (s Store) SaveGeometry(g model.Geometry) error {
	p, err := s.GeometryPath()
	if err != nil {
		return err
	}
	if err := writeLines(p, FormatGeometry(g)); err != nil {
		return fmt.Errorf("save geometry: %w", err)
	}
	return nil
}
