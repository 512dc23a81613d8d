package model

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Directory source kinds.
const (
	SourceBuiltin = "builtin"
	SourceConfig  = "config"
	SourceSQLite  = "sqlite"
)

// DirectoryConfig selects where the suggestion directory comes from.
type DirectoryConfig struct {
	// Source is one of "builtin", "config" or "sqlite".
	Source string `mapstructure:"source" yaml:"source"`

	// Entries is the address list used when Source is "config".
	Entries []string `mapstructure:"entries" yaml:"entries"`

	// DBPath is the contacts database used when Source is "sqlite".
	DBPath string `mapstructure:"db_path" yaml:"db_path"`
}

// TimingConfig holds the widget's two artificial delays.
type TimingConfig struct {
	DebounceMS     int `mapstructure:"debounce_ms" yaml:"debounce_ms"`
	DisplayDelayMS int `mapstructure:"display_delay_ms" yaml:"display_delay_ms"`
}

// Debounce returns the quiet period before a query is committed.
func (t TimingConfig) Debounce() time.Duration {
	return time.Duration(t.DebounceMS) * time.Millisecond
}

// DisplayDelay returns the delay before suggestions are shown.
func (t TimingConfig) DisplayDelay() time.Duration {
	return time.Duration(t.DisplayDelayMS) * time.Millisecond
}

// DisplayConfig holds UI/rendering preferences.
type DisplayConfig struct {
	Placeholder string `mapstructure:"placeholder" yaml:"placeholder"`
	Mouse       bool   `mapstructure:"mouse" yaml:"mouse"`
}

// LogConfig controls where structured logs go. The terminal belongs to
// the UI, so logs are only written when File is set.
type LogConfig struct {
	File  string `mapstructure:"file" yaml:"file"`
	Level string `mapstructure:"level" yaml:"level"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	Directory DirectoryConfig `mapstructure:"directory" yaml:"directory"`
	Timing    TimingConfig    `mapstructure:"timing" yaml:"timing"`
	Display   DisplayConfig   `mapstructure:"display" yaml:"display"`
	Log       LogConfig       `mapstructure:"log" yaml:"log"`
}

// ConfigDir returns ~/.config/recipients, or "." when the home directory
// cannot be resolved.
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "recipients")
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/recipients/config.yaml.
func DefaultConfigPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// DefaultAppConfig returns a sensible default configuration.
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		Directory: DirectoryConfig{
			Source: SourceBuiltin,
			DBPath: filepath.Join(ConfigDir(), "contacts.db"),
		},
		Timing: TimingConfig{
			DebounceMS:     500,
			DisplayDelayMS: 1000,
		},
		Display: DisplayConfig{
			Placeholder: "Search Recipients...",
			Mouse:       true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := DefaultAppConfig()
	v.SetDefault("directory.source", d.Directory.Source)
	v.SetDefault("directory.db_path", d.Directory.DBPath)
	v.SetDefault("timing.debounce_ms", d.Timing.DebounceMS)
	v.SetDefault("timing.display_delay_ms", d.Timing.DisplayDelayMS)
	v.SetDefault("display.placeholder", d.Display.Placeholder)
	v.SetDefault("display.mouse", d.Display.Mouse)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.level", d.Log.Level)
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// RECIPIENTS_* environment variables override file values
// (e.g. RECIPIENTS_TIMING_DEBOUNCE_MS). If the file does not exist, the
// defaults plus environment overrides are returned.
func LoadConfig(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("recipients")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		var pathErr *os.PathError
		if !errors.As(err, &notFound) && !errors.As(err, &pathErr) {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := DefaultAppConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks values that would otherwise misbehave at runtime.
func (c *AppConfig) Validate() error {
	switch c.Directory.Source {
	case SourceBuiltin, SourceConfig, SourceSQLite:
	default:
		return fmt.Errorf("unknown directory source %q", c.Directory.Source)
	}
	if c.Directory.Source == SourceSQLite && c.Directory.DBPath == "" {
		return fmt.Errorf("directory.db_path is required for the sqlite source")
	}
	if c.Timing.DebounceMS < 0 || c.Timing.DisplayDelayMS < 0 {
		return fmt.Errorf("timing values must not be negative")
	}
	return nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("directory", cfg.Directory)
	v.Set("timing", cfg.Timing)
	v.Set("display", cfg.Display)
	v.Set("log", cfg.Log)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
