// Package config handles configuration loading and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/idilsaglam/checklist/internal/store/textstore"
)

// Default values.
const (
	DefaultConfigFile     = "checklist.toml"
	DefaultItemsFile      = textstore.DefaultItemsFile
	DefaultArchiveFile    = textstore.DefaultArchiveFile
	DefaultGeometryFile   = textstore.DefaultGeometryFile
	DefaultRemovalDelayMS = 200
	DefaultBottomMargin   = 3
	DefaultTheme          = "classic"
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
)

// Config holds the full configuration for checklist.
type Config struct {
	// Data directory (computed from --dir / CHECKLIST_DIR, never read from the file)
	Dir string `toml:"-"`

	// File names, relative to Dir unless absolute
	ItemsFile    string `toml:"items_file"`
	ArchiveFile  string `toml:"archive_file"`
	GeometryFile string `toml:"geometry_file"`

	// Pause between checking an item and archiving it
	RemovalDelayMS int `toml:"removal_delay_ms"`

	// A restored window whose top is within this many rows of the bottom
	// of the terminal is pulled back up.
	BottomMargin int `toml:"bottom_margin"`

	// Icon glyph file; empty uses the built-in icon
	IconPath string `toml:"icon_path"`

	// Appearance: classic, neon or mono
	Theme   string `toml:"theme"`
	NoColor bool   `toml:"no_color"`

	// Logging configuration. The UI owns the terminal, so logs only go
	// to LogFile; empty disables logging.
	LogFile       string `toml:"log_file"`
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
}

// RemovalDelay returns the configured removal delay.
func (c *Config) RemovalDelay() time.Duration {
	return time.Duration(c.RemovalDelayMS) * time.Millisecond
}

// Store returns the text store described by the config.
func (c *Config) Store() textstore.Store {
	return textstore.Store{
		Dir:          c.Dir,
		ItemsFile:    c.ItemsFile,
		ArchiveFile:  c.ArchiveFile,
		GeometryFile: c.GeometryFile,
	}
}

func setDefaults(cfg *Config) {
	cfg.ItemsFile = DefaultItemsFile
	cfg.ArchiveFile = DefaultArchiveFile
	cfg.GeometryFile = DefaultGeometryFile
	cfg.RemovalDelayMS = DefaultRemovalDelayMS
	cfg.BottomMargin = DefaultBottomMargin
	cfg.Theme = DefaultTheme
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	cfg.LogTimestamps = true
}

// Default returns a config with every default applied.
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

// Load builds the configuration for the data directory dir: defaults, then
// the config file, then environment variables. When path is empty the
// optional checklist.toml in dir is used; an explicit path must exist.
func Load(dir, path string) (*Config, error) {
	cfg := Default()
	cfg.Dir = dir

	explicit := path != ""
	if !explicit {
		path = filepath.Join(dir, DefaultConfigFile)
	}
	if err := loadFile(path, cfg); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	if err := loadFromEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("config file: %w", err)
	}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("parse config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) error {
	if v := os.Getenv("CHECKLIST_DELAY_MS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("CHECKLIST_DELAY_MS must be an integer: %q", v)
		}
		cfg.RemovalDelayMS = n
	}
	if v := os.Getenv("CHECKLIST_THEME"); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv("CHECKLIST_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("CHECKLIST_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("NO_COLOR"); v != "" {
		cfg.NoColor = true
	}
	return nil
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	if c.RemovalDelayMS < 0 {
		return fmt.Errorf("removal_delay_ms must be >= 0, got %d", c.RemovalDelayMS)
	}
	if c.BottomMargin < 0 {
		return fmt.Errorf("bottom_margin must be >= 0, got %d", c.BottomMargin)
	}
	for name, v := range map[string]string{
		"items_file":    c.ItemsFile,
		"archive_file":  c.ArchiveFile,
		"geometry_file": c.GeometryFile,
	} {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%s must not be empty", name)
		}
	}
	switch strings.ToLower(c.Theme) {
	case "classic", "neon", "mono":
	default:
		return fmt.Errorf("unknown theme %q (want classic, neon or mono)", c.Theme)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	return nil
}
