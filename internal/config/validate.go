package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Validate checks the settings that would otherwise fail late, at the first
// request or task.
func (c *Config) Validate() error {
	// Keywords
	if c.Keywords.MaxKeywords <= 0 {
		return errors.New("keywords.max_keywords must be a positive integer")
	}
	if c.Keywords.MaxNgram < 1 || c.Keywords.MaxNgram > 5 {
		return fmt.Errorf("keywords.max_ngram (%d) must be between 1 and 5", c.Keywords.MaxNgram)
	}

	// Augmenter
	switch c.Augmenter.Provider {
	case "", "none":
	case "openai":
		if c.Augmenter.Model == "" {
			return errors.New("augmenter.model is required when augmenter.provider is openai")
		}
		if c.Augmenter.BaseURL == "" && c.Augmenter.APIKey == "" && os.Getenv("OPENAI_API_KEY") == "" {
			return errors.New("augmenter.base_url or an API key is required when augmenter.provider is openai")
		}
	case "gemini":
		if c.Augmenter.Model == "" {
			return errors.New("augmenter.model is required when augmenter.provider is gemini")
		}
		if c.Augmenter.APIKey == "" && os.Getenv("GEMINI_API_KEY") == "" {
			return errors.New("augmenter.api_key (or GEMINI_API_KEY) is required when augmenter.provider is gemini")
		}
	default:
		return fmt.Errorf("augmenter.provider '%s' is not supported (none, openai, gemini)", c.Augmenter.Provider)
	}
	if c.Augmenter.MaxTokens <= 0 {
		return errors.New("augmenter.max_tokens must be a positive integer")
	}
	if c.Augmenter.Temperature < 0 || c.Augmenter.Temperature > 2 {
		return fmt.Errorf("augmenter.temperature (%.2f) must be between 0 and 2", c.Augmenter.Temperature)
	}

	// Database
	if _, _, err := ParseDSN(c.Database.DSN); err != nil {
		return err
	}

	// Worker config
	if c.Worker.Concurrency <= 0 {
		return errors.New("worker.concurrency must be a positive integer")
	}
	if len(c.Worker.Queues) == 0 {
		return errors.New("worker.queues must define at least one queue")
	}
	for name, priority := range c.Worker.Queues {
		if name == "" {
			return errors.New("worker.queues contains an empty queue name")
		}
		if priority <= 0 {
			return fmt.Errorf("worker.queues priority for queue '%s' must be positive", name)
		}
	}

	// Logging
	if _, err := log.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		return fmt.Errorf("logging.format '%s' must be text or json", c.Logging.Format)
	}

	// Pricing config (optional, but if present, must be valid)
	for model, price := range c.Pricing {
		if model == "" {
			return errors.New("pricing contains an empty model name")
		}
		if price.InputPerToken < 0 || price.OutputPerToken < 0 {
			return fmt.Errorf("pricing for model '%s' has negative token cost", model)
		}
	}

	return nil
}

// Database drivers selected by the DSN scheme.
const (
	DriverNone     = ""
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// ParseDSN maps a database DSN to a driver. sqlite:// DSNs return the file
// path (or ":memory:"); postgres DSNs are returned unchanged.
func ParseDSN(dsn string) (driver, target string, err error) {
	switch {
	case dsn == "":
		return DriverNone, "", nil
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return DriverPostgres, dsn, nil
	case strings.HasPrefix(dsn, "sqlite://"):
		path := strings.TrimPrefix(dsn, "sqlite://")
		if path == "" {
			return "", "", errors.New("database.dsn: sqlite:// requires a file path or :memory:")
		}
		return DriverSQLite, path, nil
	default:
		return "", "", fmt.Errorf("database.dsn: unsupported scheme in '%s' (use postgres:// or sqlite://)", dsn)
	}
}
