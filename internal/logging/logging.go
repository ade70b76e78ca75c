// Package logging configures the process-wide logrus logger
package logging

import (
	"fmt"
	"os"
	"strings"

	"github.com/HugoManns/pokerhands-tests/internal/config"
	"github.com/sirupsen/logrus"
)

// Setup applies the log level and format from the configuration
// LOG_FORMAT=json forces the JSON formatter regardless of the configuration.
func Setup(logger *logrus.Logger, cfg config.LogConfig) error {
	if lvl := cfg.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			return fmt.Errorf("could not parse level: %w", err)
		}

		logger.SetLevel(level)
	}

	format := strings.ToLower(cfg.Format)
	if env := os.Getenv("LOG_FORMAT"); env != "" {
		format = strings.ToLower(env)
	}

	switch format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{})
	default:
		return fmt.Errorf("unknown log format: %s", cfg.Format)
	}

	return nil
}
