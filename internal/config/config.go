// Package config provides configuration management for the trade tracker.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"trade-tracker/internal/models"
)

// Config holds all application configuration.
type Config struct {
	Journal JournalConfig `mapstructure:"journal"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// JournalConfig holds journal behavior configuration.
type JournalConfig struct {
	// DerivationMode selects the risk-reward formula: "lot-size" divides the
	// price move by lot_size * quantity, "notional" divides by the LTP-based
	// position value. One deployment uses one mode for its whole record set.
	DerivationMode string `mapstructure:"derivation_mode"`
	// Strategies and Criteria extend the built-in selectable option lists.
	Strategies []string `mapstructure:"strategies"`
	Criteria   []string `mapstructure:"criteria"`
	// SessionFile names the interchange blob, relative to the config dir,
	// that carries the working set between invocations.
	SessionFile string `mapstructure:"session_file"`
}

// UIConfig holds UI-related configuration.
type UIConfig struct {
	ColorEnabled bool   `mapstructure:"color_enabled"`
	DateFormat   string `mapstructure:"date_format"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	Console bool   `mapstructure:"console"`
	File    bool   `mapstructure:"file"`
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/trade-tracker"
	}
	return filepath.Join(home, ".config", "trade-tracker")
}

// Load loads configuration from the specified directory.
// If configDir is empty, uses the default config directory.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	cfg := &Config{}
	if err := loadConfigFile(configDir, "config", cfg); err != nil {
		return nil, fmt.Errorf("loading config.toml: %w", err)
	}

	applyDefaults(cfg)
	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

func loadConfigFile(configDir, name string, target interface{}) error {
	v := viper.New()
	v.SetConfigName(name)
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// First run: write the commented template and continue with
			// defaults.
			return createTemplateConfig(configDir, name)
		}
		return err
	}

	return v.Unmarshal(target)
}

func applyDefaults(cfg *Config) {
	if cfg.Journal.DerivationMode == "" {
		cfg.Journal.DerivationMode = "lot-size"
	}
	if cfg.Journal.SessionFile == "" {
		cfg.Journal.SessionFile = "session.csv"
	}
	if len(cfg.Journal.Strategies) == 0 {
		cfg.Journal.Strategies = append([]string(nil), models.DefaultStrategies...)
	}
	if len(cfg.Journal.Criteria) == 0 {
		for _, c := range models.DefaultCriteria {
			cfg.Journal.Criteria = append(cfg.Journal.Criteria, string(c))
		}
	}
	if cfg.UI.DateFormat == "" {
		cfg.UI.DateFormat = "2006-01-02"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TRACKER_DERIVATION_MODE"); v != "" {
		cfg.Journal.DerivationMode = v
	}
	if v := os.Getenv("TRACKER_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	switch c.Journal.DerivationMode {
	case "lot-size", "notional":
	default:
		return fmt.Errorf("invalid derivation_mode: %s (must be 'lot-size' or 'notional')", c.Journal.DerivationMode)
	}

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	return nil
}

// SessionPath returns the absolute path of the session interchange blob.
func (c *Config) SessionPath(configDir string) string {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}
	if filepath.IsAbs(c.Journal.SessionFile) {
		return c.Journal.SessionFile
	}
	return filepath.Join(configDir, c.Journal.SessionFile)
}
