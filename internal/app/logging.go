package app

import (
	"fmt"
	"os"

	"bubble/internal/config"

	log "github.com/sirupsen/logrus"
)

// ConfigureLogging applies the logging section to the standard logrus logger.
// Logs go to stderr so command output on stdout stays machine-readable.
func ConfigureLogging(cfg *config.Config) error {
	level, err := log.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("invalid logging.level: %w", err)
	}
	log.SetLevel(level)
	log.SetOutput(os.Stderr)
	if cfg.Logging.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	return nil
}
