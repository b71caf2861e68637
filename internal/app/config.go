package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"pomoglass/internal/engine"
)

// Config controls runtime behavior for the app.
type Config struct {
	DataDir string
	LogPath string
	Preset  string
	Theme   string

	Durations DurationConfig
}

// DurationConfig carries user duration choices in minutes. Zero means
// "leave the engine default (or the preset) alone".
type DurationConfig struct {
	WorkMinutes      int
	BreakMinutes     int
	LongBreakMinutes int
	Interval         int
}

func DefaultConfig() Config {
	return Config{
		Theme:  "glass_light",
		Preset: "Classic 25/5",
	}
}

func (c *Config) Validate() error {
	switch c.Theme {
	case "":
		c.Theme = "glass_light"
	case "glass_light", "glass_dark":
	default:
		return fmt.Errorf("invalid theme %q", c.Theme)
	}

	if c.Preset != "" {
		if _, ok := engine.LookupPreset(c.Preset); !ok {
			return fmt.Errorf("unknown preset %q", c.Preset)
		}
	}

	if c.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return errors.New("cannot resolve user home directory")
		}
		c.DataDir = filepath.Join(home, ".local", "share", "pomoglass")
	}

	return nil
}

// Overrides converts the configured durations to engine overrides.
func (d DurationConfig) Overrides() engine.Overrides {
	return engine.Overrides{
		WorkMinutes:      d.WorkMinutes,
		BreakMinutes:     d.BreakMinutes,
		LongBreakMinutes: d.LongBreakMinutes,
		Interval:         d.Interval,
	}
}

type fileConfig struct {
	Preset           string `yaml:"preset"`
	Theme            string `yaml:"theme"`
	WorkMinutes      int    `yaml:"work_minutes"`
	BreakMinutes     int    `yaml:"break_minutes"`
	LongBreakMinutes int    `yaml:"long_break_minutes"`
	Interval         int    `yaml:"long_break_interval"`
	DataDir          string `yaml:"data_dir"`
	LogPath          string `yaml:"log_path"`
}

// DefaultConfigPath is where LoadConfig looks when no path is given.
func DefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, "pomoglass", "config.yaml"), nil
}

// LoadConfig reads the YAML config file on top of the defaults. A missing
// file is fine; duration fields apply only when positive.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		var err error
		path, err = DefaultConfigPath()
		if err != nil {
			return cfg, err
		}
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config file: %w", err)
	}

	var file fileConfig
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return cfg, fmt.Errorf("parse config yaml: %w", err)
	}

	if file.Preset != "" {
		cfg.Preset = file.Preset
	}
	if file.Theme != "" {
		cfg.Theme = file.Theme
	}
	if file.DataDir != "" {
		cfg.DataDir = file.DataDir
	}
	if file.LogPath != "" {
		cfg.LogPath = file.LogPath
	}
	if file.WorkMinutes > 0 {
		cfg.Durations.WorkMinutes = file.WorkMinutes
	}
	if file.BreakMinutes > 0 {
		cfg.Durations.BreakMinutes = file.BreakMinutes
	}
	if file.LongBreakMinutes > 0 {
		cfg.Durations.LongBreakMinutes = file.LongBreakMinutes
	}
	if file.Interval > 0 {
		cfg.Durations.Interval = file.Interval
	}

	return cfg, nil
}
