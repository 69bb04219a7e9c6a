package ui

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
)

//go:embed assets/icon.txt
var defaultIcon string

// LoadIcon returns the window icon glyph. An empty path selects the built-in
// icon; a path that cannot be read is an error the caller treats as fatal.
func LoadIcon(path string) (string, error) {
	raw := defaultIcon
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("load icon: %w", err)
		}
		raw = string(b)
	}
	icon, _, _ := strings.Cut(strings.TrimLeft(raw, "\r\n"), "\n")
	icon = strings.TrimSpace(icon)
	if icon == "" {
		return "", fmt.Errorf("load icon: %s is empty", iconName(path))
	}
	return icon, nil
}

func iconName(path string) string {
	if path == "" {
		return "built-in icon"
	}
	return path
}
