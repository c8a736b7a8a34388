package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

// envPrefix scopes environment variables, e.g. COMPILERESULTS_LOG_LEVEL.
const envPrefix = "COMPILERESULTS"

type config struct {
	LogLevel string `mapstructure:"log_level"`
}

func loadConfig() (*config, error) {
	cfg := &config{LogLevel: "info"}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	v.SetDefault("log_level", cfg.LogLevel)

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return cfg, nil
}

func (c *config) level() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", c.LogLevel)
	}
}
