package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigPaths defines the config file search paths in priority order
var ConfigPaths = []string{
	"./.tipcalc.yaml",               // Project-specific config (highest priority)
	"~/.config/tipcalc/config.yaml", // User config
	"/etc/tipcalc/config.yaml",      // System config (lowest priority)
}

// Loader handles configuration loading with priority merging
type Loader struct {
	configPaths []string
	warn        func(format string, args ...interface{})
}

// NewLoader creates a new config loader
func NewLoader() *Loader {
	return &Loader{
		configPaths: ConfigPaths,
		warn: func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, "Warning: "+format+"\n", args...)
		},
	}
}

// LoadConfig loads configuration from multiple sources with priority order:
// 1. Command line flags (handled by caller)
// 2. Environment variables
// 3. ./.tipcalc.yaml
// 4. ~/.config/tipcalc/config.yaml
// 5. /etc/tipcalc/config.yaml
// 6. Built-in defaults
func (l *Loader) LoadConfig(customPath string) (*Config, error) {
	config := DefaultConfig()

	if customPath != "" {
		if err := validateConfigPath(customPath); err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		if err := l.loadFromFile(config, customPath); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", customPath, err)
		}
	} else {
		// Lowest priority first so later files win
		for i := len(l.configPaths) - 1; i >= 0; i-- {
			expandedPath := expandPath(l.configPaths[i])
			if !fileExists(expandedPath) {
				continue
			}
			if err := l.loadFromFile(config, expandedPath); err != nil {
				l.warn("failed to load config from %s: %v", expandedPath, err)
			}
		}
	}

	if err := l.applyEnvOverrides(config); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// loadFromFile loads configuration from a YAML file and merges it with existing config
func (l *Loader) loadFromFile(config *Config, path string) error {
	// #nosec G304 - path is validated by validateConfigPath() or comes from ConfigPaths
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	var fileConfig Config
	if err := yaml.Unmarshal(data, &fileConfig); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	mergeConfigs(config, &fileConfig)

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config
func (l *Loader) applyEnvOverrides(config *Config) error {
	envMappings := map[string]func(string) error{
		// Entry Config
		"TIPCALC_ENTRY_AMOUNT_MAX_LENGTH":   func(v string) error { return parseInt(v, &config.Entry.AmountMaxLength) },
		"TIPCALC_ENTRY_AMOUNT_MAX_FRACTION": func(v string) error { return parseInt(v, &config.Entry.AmountMaxFraction) },
		"TIPCALC_ENTRY_PERCENT_MAX_DIGITS":  func(v string) error { return parseInt(v, &config.Entry.PercentMaxDigits) },

		// Display Config
		"TIPCALC_DISPLAY_THEME":    func(v string) error { config.Display.Theme = v; return nil },
		"TIPCALC_DISPLAY_HEIGHT":   func(v string) error { return parseInt(v, &config.Display.Height) },
		"TIPCALC_DISPLAY_WIDTH":    func(v string) error { return parseInt(v, &config.Display.Width) },
		"TIPCALC_DISPLAY_NO_EMOJI": func(v string) error { return parseBool(v, &config.Display.NoEmoji) },

		// Output Config
		"TIPCALC_OUTPUT_DEFAULT_FORMAT": func(v string) error { config.Output.DefaultFormat = v; return nil },
		"TIPCALC_OUTPUT_COLOR_MODE":     func(v string) error { config.Output.ColorMode = v; return nil },
		"TIPCALC_OUTPUT_VERBOSE":        func(v string) error { return parseBool(v, &config.Output.Verbose) },

		// Logging Config
		"TIPCALC_LOGGING_FILE": func(v string) error { config.Logging.File = v; return nil },
	}

	for envVar, setter := range envMappings {
		if value := os.Getenv(envVar); value != "" {
			if err := setter(value); err != nil {
				return fmt.Errorf("invalid value for %s: %w", envVar, err)
			}
		}
	}

	// Key lists are comma-separated
	keyMappings := map[string]*[]string{
		"TIPCALC_KEYS_UP":     &config.Keys.Up,
		"TIPCALC_KEYS_DOWN":   &config.Keys.Down,
		"TIPCALC_KEYS_SELECT": &config.Keys.Select,
		"TIPCALC_KEYS_QUIT":   &config.Keys.Quit,
		"TIPCALC_KEYS_HELP":   &config.Keys.Help,
	}
	for envVar, dst := range keyMappings {
		if value := os.Getenv(envVar); value != "" {
			*dst = splitList(value)
		}
	}

	return nil
}

// GetConfigPaths returns the list of configuration file paths that will be searched
func GetConfigPaths() []string {
	paths := make([]string, 0, len(ConfigPaths))
	for _, path := range ConfigPaths {
		paths = append(paths, expandPath(path))
	}
	return paths
}

// FindConfigFile finds the first existing config file in the search paths
func FindConfigFile() (string, bool) {
	for _, path := range ConfigPaths {
		expandedPath := expandPath(path)
		if fileExists(expandedPath) {
			return expandedPath, true
		}
	}
	return "", false
}

// Helper functions

// validateConfigPath validates that a config path is safe to read
func validateConfigPath(path string) error {
	// Clean the path to resolve any ".." components
	cleanPath := filepath.Clean(path)

	// Check for path traversal attempts
	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path traversal not allowed")
	}

	// Ensure it's a YAML file
	ext := strings.ToLower(filepath.Ext(cleanPath))
	if ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("config file must have .yaml or .yml extension")
	}

	// Convert to absolute path for additional validation
	absPath, err := filepath.Abs(cleanPath)
	if err != nil {
		return fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	// Basic sanity check - ensure it's not in sensitive system directories
	if strings.HasPrefix(absPath, "/etc/passwd") ||
		strings.HasPrefix(absPath, "/etc/shadow") ||
		strings.HasPrefix(absPath, "/proc/") ||
		strings.HasPrefix(absPath, "/sys/") {
		return fmt.Errorf("access to system files not allowed")
	}

	return nil
}

// expandPath expands ~ to home directory
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// mergeConfigs merges source config into destination config
// Only non-zero values from source overwrite destination
func mergeConfigs(dst, src *Config) {
	if src.Version != "" {
		dst.Version = src.Version
	}

	mergeEntryConfig(&dst.Entry, &src.Entry)
	mergeDisplayConfig(&dst.Display, &src.Display)
	mergeKeysConfig(&dst.Keys, &src.Keys)
	mergeOutputConfig(&dst.Output, &src.Output)
	if src.Logging.File != "" {
		dst.Logging.File = src.Logging.File
	}
}

// mergeEntryConfig merges field capacities
func mergeEntryConfig(dst, src *EntryConfig) {
	if src.AmountMaxLength != 0 {
		dst.AmountMaxLength = src.AmountMaxLength
	}
	if src.AmountMaxFraction != 0 {
		dst.AmountMaxFraction = src.AmountMaxFraction
	}
	if src.PercentMaxDigits != 0 {
		dst.PercentMaxDigits = src.PercentMaxDigits
	}
}

// mergeDisplayConfig merges display configuration
func mergeDisplayConfig(dst, src *DisplayConfig) {
	if src.Theme != "" {
		dst.Theme = src.Theme
	}
	if src.Height != 0 {
		dst.Height = src.Height
	}
	if src.Width != 0 {
		dst.Width = src.Width
	}
	mergeIfSet(&dst.NoEmoji, src.NoEmoji)
}

// mergeKeysConfig replaces whole key lists that the source sets
func mergeKeysConfig(dst, src *KeysConfig) {
	pairs := []struct{ dst, src *[]string }{
		{&dst.Up, &src.Up},
		{&dst.Down, &src.Down},
		{&dst.Select, &src.Select},
		{&dst.Quit, &src.Quit},
		{&dst.Help, &src.Help},
	}
	for _, p := range pairs {
		if len(*p.src) > 0 {
			*p.dst = *p.src
		}
	}
}

// mergeOutputConfig merges output configuration
func mergeOutputConfig(dst, src *OutputConfig) {
	if src.DefaultFormat != "" {
		dst.DefaultFormat = src.DefaultFormat
	}
	if src.ColorMode != "" {
		dst.ColorMode = src.ColorMode
	}
	mergeIfSet(&dst.Verbose, src.Verbose)
}

// mergeIfSet merges a boolean that defaults to false; a false in the
// source is indistinguishable from an absent key, so only true is carried.
func mergeIfSet(dst *bool, src bool) {
	if src {
		*dst = true
	}
}

// splitList splits a comma-separated list and trims each item. Blank items
// are kept only when they are a single space, the space key.
func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == " " {
			out = append(out, part)
			continue
		}
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// Type conversion helpers

func parseInt(s string, dst *int) error {
	val, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}

func parseBool(s string, dst *bool) error {
	val, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}
