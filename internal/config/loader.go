package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"github.com/tiwariParth/tasklist/internal/models"
)

// EnvPrefix is prepended to every environment override, e.g. TODO_DATE_LAYOUT.
const EnvPrefix = "TODO"

// Load builds the configuration from defaults, the optional YAML file at
// path, and TODO_* environment variables, in increasing precedence.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only resolves keys viper already knows about
	v.SetDefault("default_priority", cfg.DefaultPriority)
	v.SetDefault("date_layout", cfg.DateLayout)
	v.SetDefault("confirm_delete", cfg.ConfirmDelete)
	v.SetDefault("color", cfg.Color)
	v.SetDefault("log_level", cfg.LogLevel)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail later at runtime
func (c *Config) Validate() error {
	if _, err := models.ParsePriority(c.DefaultPriority); err != nil {
		return fmt.Errorf("default_priority: %w", err)
	}
	if strings.TrimSpace(c.DateLayout) == "" {
		return fmt.Errorf("date_layout cannot be empty")
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Priority returns the parsed default priority
func (c *Config) Priority() models.Priority {
	p, err := models.ParsePriority(c.DefaultPriority)
	if err != nil {
		return models.Low
	}
	return p
}

// ParseLogLevel maps a level name onto slog.Level
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, fmt.Errorf("log_level: unknown level %q", s)
	}
}
