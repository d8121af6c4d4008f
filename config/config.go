package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds runtime configuration for the calculator window.
// Fields may be loaded from a JSON file and overridden by command-line flags.
type Config struct {
	Debug bool `json:"debug"`

	// Display mode
	DarkMode          bool `json:"dark_mode"`
	FollowSystemTheme bool `json:"follow_system_theme"`

	// Window and fonts
	WindowWidth     int    `json:"window_width"`
	WindowHeight    int    `json:"window_height"`
	FontFamily      string `json:"font_family"`
	DisplayFontSize int    `json:"display_font_size"`
	ButtonFontSize  int    `json:"button_font_size"`

	// Debug stats logging
	StatsIntervalSeconds int `json:"stats_interval_seconds"`
}

const (
	minWindowWidth  = 300
	minWindowHeight = 400
	maxFontSize     = 96
)

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:                false,
		DarkMode:             true,
		FollowSystemTheme:    false,
		WindowWidth:          minWindowWidth,
		WindowHeight:         minWindowHeight,
		FontFamily:           "Monospace",
		DisplayFontSize:      32,
		ButtonFontSize:       16,
		StatsIntervalSeconds: 10,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("nil config")
	}
	if c.WindowWidth < minWindowWidth {
		c.WindowWidth = minWindowWidth
	}
	if c.WindowHeight < minWindowHeight {
		c.WindowHeight = minWindowHeight
	}
	if c.FontFamily == "" {
		c.FontFamily = "Monospace"
	}
	if c.DisplayFontSize <= 0 || c.DisplayFontSize > maxFontSize {
		c.DisplayFontSize = 32
	}
	if c.ButtonFontSize <= 0 || c.ButtonFontSize > maxFontSize {
		c.ButtonFontSize = 16
	}
	if c.StatsIntervalSeconds <= 0 {
		c.StatsIntervalSeconds = 10
	}
	return nil
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("decode %s: %w", path, err)
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
