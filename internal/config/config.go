// Package config loads and persists meteorscope preferences from an
// XDG-compliant TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all meteorscope configuration.
type Config struct {
	Source     SourceConfig     `toml:"source"`
	Display    DisplayConfig    `toml:"display"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// SourceConfig selects the default data source.
type SourceConfig struct {
	CSVPath string `toml:"csv_path,omitempty"`
	DBPath  string `toml:"db_path,omitempty"`
	Table   string `toml:"table,omitempty"`
}

// DisplayConfig holds view defaults.
type DisplayConfig struct {
	TopN       int `toml:"top_n"`
	BrowseRows int `toml:"browse_rows"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			TopN:       10,
			BrowseRows: 10,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "meteorscope")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "meteorscope")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}

// GetCSVPath returns the CSV path from env var or config, in that order.
func GetCSVPath(cfg Config) string {
	if p := os.Getenv("METEORSCOPE_CSV"); p != "" {
		return p
	}
	return cfg.Source.CSVPath
}

// GetDBPath returns the database path from env var or config, in that order.
func GetDBPath(cfg Config) string {
	if p := os.Getenv("METEORSCOPE_DB"); p != "" {
		return p
	}
	return cfg.Source.DBPath
}
