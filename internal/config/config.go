// Package config loads diagrail settings from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wesen/diagrail/internal/interaction"
	"github.com/wesen/diagrail/pkg/geom"
)

// EnvConfig names the environment variable that points at a config file.
const EnvConfig = "DIAGRAIL_CONFIG"

// Config holds every tunable of the editor.
type Config struct {
	GridSize        float64           `yaml:"grid_size"`
	MinWidth        float64           `yaml:"min_width"`
	MinHeight       float64           `yaml:"min_height"`
	HistoryCapacity int               `yaml:"history_capacity"`
	Plugin          string            `yaml:"plugin"`
	PluginFiles     []string          `yaml:"plugin_files"`
	Keymap          map[string]string `yaml:"keymap"`
	UnitsPerCol     float64           `yaml:"units_per_col"`
	UnitsPerRow     float64           `yaml:"units_per_row"`
	LogLevel        string            `yaml:"log_level"`

	// Path is the file the config was read from, empty for defaults.
	Path string `yaml:"-"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		GridSize:        20,
		MinWidth:        40,
		MinHeight:       30,
		HistoryCapacity: 200,
		Plugin:          "flowchart",
		UnitsPerCol:     5,
		UnitsPerRow:     10,
		LogLevel:        "info",
	}
}

// Validate rejects settings the editor cannot work with.
func (c Config) Validate() error {
	var errs []error
	if c.GridSize <= 0 {
		errs = append(errs, fmt.Errorf("grid_size must be positive, got %g", c.GridSize))
	}
	if c.MinWidth <= 0 || c.MinHeight <= 0 {
		errs = append(errs, fmt.Errorf("min_width and min_height must be positive, got %gx%g", c.MinWidth, c.MinHeight))
	}
	if c.HistoryCapacity < 0 {
		errs = append(errs, fmt.Errorf("history_capacity must not be negative, got %d", c.HistoryCapacity))
	}
	if c.UnitsPerCol <= 0 || c.UnitsPerRow <= 0 {
		errs = append(errs, fmt.Errorf("units_per_col and units_per_row must be positive"))
	}
	if c.Plugin == "" {
		errs = append(errs, errors.New("plugin must be set"))
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if _, err := interaction.ParseKeymap(c.Keymap); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Interaction converts the settings into controller options. Configured
// key bindings override the defaults.
func (c Config) Interaction() (interaction.Options, error) {
	km, err := interaction.ParseKeymap(c.Keymap)
	if err != nil {
		return interaction.Options{}, err
	}
	opts := interaction.DefaultOptions()
	opts.Grid = c.GridSize
	opts.MinSize = geom.Size{Width: c.MinWidth, Height: c.MinHeight}
	opts.Keymap = opts.Keymap.Merge(km)
	return opts, nil
}

// Read decodes YAML from r over the defaults.
func Read(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Load reads the config file at path. Relative plugin_files are resolved
// against the file's directory.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Read(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path
	dir := filepath.Dir(path)
	for i, f := range cfg.PluginFiles {
		if !filepath.IsAbs(f) {
			cfg.PluginFiles[i] = filepath.Join(dir, f)
		}
	}
	return cfg, nil
}

// Resolve picks the config file: the explicit path if given, then
// $DIAGRAIL_CONFIG, then ~/.diagrail/config.yaml. A missing default file
// yields the defaults; a missing explicit file is an error.
func Resolve(explicit string) (Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	if env := os.Getenv(EnvConfig); env != "" {
		return Load(env)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return Default(), nil
	}
	cfg, err := Load(DefaultPath(home))
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// DefaultPath is where the config lives under a home directory.
func DefaultPath(home string) string {
	return filepath.Join(home, ".diagrail", "config.yaml")
}

// ParseLevel maps a log_level string to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log_level %q", s)
}
