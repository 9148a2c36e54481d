package config

import (
	"fmt"
	"net/url"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be in [%d, %d] (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if err := c.Youdao.validate(); err != nil {
		return fmt.Errorf("youdao: %w", err)
	}

	if err := c.History.validate(); err != nil {
		return fmt.Errorf("history: %w", err)
	}

	if c.RateLimit.SearchPerMinute <= 0 || c.RateLimit.AuthPerMinute <= 0 {
		return fmt.Errorf("rate_limit: limits must be > 0")
	}

	return nil
}

func (y *YoudaoConfig) validate() error {
	if y.AppKey == "" || y.AppSecret == "" {
		return fmt.Errorf("app_key and app_secret are required")
	}
	u, err := url.Parse(y.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base_url %q is not an absolute URL", y.BaseURL)
	}
	if y.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", y.Timeout)
	}
	if y.MaxRetries < 0 {
		return fmt.Errorf("max_retries must be >= 0 (got %d)", y.MaxRetries)
	}
	if y.BaseDelay <= 0 {
		return fmt.Errorf("base_delay must be > 0 (got %v)", y.BaseDelay)
	}
	if y.MaxDelay < y.BaseDelay {
		return fmt.Errorf("max_delay (%v) must be >= base_delay (%v)", y.MaxDelay, y.BaseDelay)
	}
	if y.MaxJitter < 0 {
		return fmt.Errorf("max_jitter must be >= 0 (got %v)", y.MaxJitter)
	}
	return nil
}

func (h *HistoryConfig) validate() error {
	if h.MaxItems <= 0 {
		return fmt.Errorf("max_items must be > 0 (got %d)", h.MaxItems)
	}
	if h.DefaultSuggestions <= 0 {
		return fmt.Errorf("default_suggestions must be > 0 (got %d)", h.DefaultSuggestions)
	}
	if h.MaxSuggestions < h.DefaultSuggestions {
		return fmt.Errorf("max_suggestions (%d) must be >= default_suggestions (%d)", h.MaxSuggestions, h.DefaultSuggestions)
	}
	return nil
}
