package config

import (
	"fmt"
)

// Config holds the complete application configuration
type Config struct {
	Version string        `yaml:"version" json:"version"`
	Entry   EntryConfig   `yaml:"entry" json:"entry"`
	Display DisplayConfig `yaml:"display" json:"display"`
	Keys    KeysConfig    `yaml:"keys" json:"keys"`
	Output  OutputConfig  `yaml:"output" json:"output"`
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// EntryConfig configures the capacity of the editable fields
type EntryConfig struct {
	AmountMaxLength   int `yaml:"amount_max_length" json:"amount_max_length"`     // symbols before the subtotal commits
	AmountMaxFraction int `yaml:"amount_max_fraction" json:"amount_max_fraction"` // digits after the point before it commits
	PercentMaxDigits  int `yaml:"percent_max_digits" json:"percent_max_digits"`   // digits before the tip percentage commits
}

// DisplayConfig configures the emulated device screen
type DisplayConfig struct {
	Theme   string `yaml:"theme" json:"theme"`       // default|high-contrast|minimal
	Height  int    `yaml:"height" json:"height"`     // container height in terminal lines, split across 4 rows
	Width   int    `yaml:"width" json:"width"`       // container width in terminal columns
	NoEmoji bool   `yaml:"no_emoji" json:"no_emoji"` // plain-text fallbacks instead of emoji
}

// KeysConfig maps keyboard keys onto the device buttons
type KeysConfig struct {
	Up     []string `yaml:"up" json:"up"`
	Down   []string `yaml:"down" json:"down"`
	Select []string `yaml:"select" json:"select"`
	Quit   []string `yaml:"quit" json:"quit"`
	Help   []string `yaml:"help" json:"help"`
}

// OutputConfig configures output formatting and display
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format"` // json|text|markdown|csv
	ColorMode     string `yaml:"color_mode" json:"color_mode"`         // auto|always|never
	Verbose       bool   `yaml:"verbose" json:"verbose"`               // default verbosity
}

// LoggingConfig configures where diagnostic logs go
type LoggingConfig struct {
	File string `yaml:"file" json:"file"` // empty discards logs in the full-screen UI
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		Entry: EntryConfig{
			AmountMaxLength:   10,
			AmountMaxFraction: 2,
			PercentMaxDigits:  1,
		},
		Display: DisplayConfig{
			Theme:   "default",
			Height:  12,
			Width:   24,
			NoEmoji: false,
		},
		Keys: KeysConfig{
			Up:     []string{"up", "k"},
			Down:   []string{"down", "j"},
			Select: []string{"enter", " "},
			Quit:   []string{"q", "ctrl+c"},
			Help:   []string{"?"},
		},
		Output: OutputConfig{
			DefaultFormat: "text",
			ColorMode:     "auto",
			Verbose:       false,
		},
		Logging: LoggingConfig{
			File: "",
		},
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateEntryConfig(); err != nil {
		return err
	}
	if err := c.validateDisplayConfig(); err != nil {
		return err
	}
	if err := c.validateKeysConfig(); err != nil {
		return err
	}
	if err := c.validateOutputConfig(); err != nil {
		return err
	}
	return nil
}

// validateEntryConfig validates field capacities
func (c *Config) validateEntryConfig() error {
	if c.Entry.AmountMaxLength < 1 {
		return fmt.Errorf("amount_max_length must be greater than 0")
	}
	if c.Entry.AmountMaxFraction < 1 {
		return fmt.Errorf("amount_max_fraction must be greater than 0")
	}
	if c.Entry.AmountMaxFraction >= c.Entry.AmountMaxLength {
		return fmt.Errorf("amount_max_fraction must be less than amount_max_length")
	}
	if c.Entry.PercentMaxDigits < 1 || c.Entry.PercentMaxDigits > 3 {
		return fmt.Errorf("percent_max_digits must be between 1 and 3")
	}
	return nil
}

// validateDisplayConfig validates the emulated screen
func (c *Config) validateDisplayConfig() error {
	if c.Display.Theme != "" {
		validThemes := map[string]bool{
			"default":       true,
			"high-contrast": true,
			"minimal":       true,
		}
		if !validThemes[c.Display.Theme] {
			return fmt.Errorf("invalid theme: %s (must be one of: default, high-contrast, minimal)", c.Display.Theme)
		}
	}
	if c.Display.Height < 4 {
		return fmt.Errorf("display height must be at least 4 (one line per row)")
	}
	if c.Display.Width < 16 {
		return fmt.Errorf("display width must be at least 16")
	}
	return nil
}

// validateKeysConfig makes sure every button is reachable and no key is shared
func (c *Config) validateKeysConfig() error {
	bindings := []struct {
		name string
		keys []string
	}{
		{"up", c.Keys.Up},
		{"down", c.Keys.Down},
		{"select", c.Keys.Select},
		{"quit", c.Keys.Quit},
		{"help", c.Keys.Help},
	}

	owner := make(map[string]string)
	for _, binding := range bindings {
		if len(binding.keys) == 0 && binding.name != "help" {
			return fmt.Errorf("keys.%s must list at least one key", binding.name)
		}
		for _, k := range binding.keys {
			if prev, taken := owner[k]; taken {
				return fmt.Errorf("key %q is bound to both %s and %s", k, prev, binding.name)
			}
			owner[k] = binding.name
		}
	}
	return nil
}

// validateOutputConfig validates output-related configuration
func (c *Config) validateOutputConfig() error {
	if c.Output.DefaultFormat != "" {
		validFormats := map[string]bool{
			"json":     true,
			"text":     true,
			"markdown": true,
			"csv":      true,
		}
		if !validFormats[c.Output.DefaultFormat] {
			return fmt.Errorf("invalid output format: %s (must be one of: json, text, markdown, csv)", c.Output.DefaultFormat)
		}
	}
	if c.Output.ColorMode != "" {
		validColorModes := map[string]bool{
			"auto":   true,
			"always": true,
			"never":  true,
		}
		if !validColorModes[c.Output.ColorMode] {
			return fmt.Errorf("invalid color mode: %s (must be one of: auto, always, never)", c.Output.ColorMode)
		}
	}
	return nil
}
