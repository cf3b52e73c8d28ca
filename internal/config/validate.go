package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically. The checks
// run eagerly at startup so a misconfigured instance fails before taking
// traffic or issuing any upstream call.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Caption.APIKey) == "" {
		return fmt.Errorf("caption.api_key is required")
	}

	if err := c.Caption.validate(); err != nil {
		return fmt.Errorf("caption: %w", err)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Server.RatePerMinute < 0 {
		return fmt.Errorf("server.rate_per_minute must be >= 0 (got %d)", c.Server.RatePerMinute)
	}

	return nil
}

func (c *CaptionConfig) validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || !u.IsAbs() {
		return fmt.Errorf("base_url must be an absolute URL (got %q)", c.BaseURL)
	}
	if c.Model == "" {
		return fmt.Errorf("model must not be empty")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", c.Timeout)
	}
	return nil
}
