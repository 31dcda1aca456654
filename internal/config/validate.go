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
	if c.Auth.AccessTokenTTL <= 0 || c.Auth.RefreshTokenTTL <= 0 {
		return fmt.Errorf("auth token TTLs must be > 0")
	}

	if err := c.RateLimit.validate(); err != nil {
		return fmt.Errorf("rate_limit: %w", err)
	}
	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	if c.Chatbot.HistoryLimit <= 0 {
		return fmt.Errorf("chatbot.history_limit must be > 0 (got %d)", c.Chatbot.HistoryLimit)
	}

	return nil
}

func (r RateLimitConfig) validate() error {
	if r.AuthPerMinute <= 0 {
		return fmt.Errorf("auth_per_minute must be > 0 (got %d)", r.AuthPerMinute)
	}
	if r.ChatbotPerMinute <= 0 {
		return fmt.Errorf("chatbot_per_minute must be > 0 (got %d)", r.ChatbotPerMinute)
	}
	if r.CleanupInterval <= 0 {
		return fmt.Errorf("cleanup_interval must be > 0")
	}
	return nil
}

func (s StorageConfig) validate() error {
	if !s.Enabled() {
		return nil
	}
	if s.AccessKey == "" || s.SecretKey == "" {
		return fmt.Errorf("access_key and secret_key are required when endpoint is set")
	}
	if s.Bucket == "" {
		return fmt.Errorf("bucket is required when endpoint is set")
	}
	if s.PublicBaseURL != "" {
		if _, err := url.ParseRequestURI(s.PublicBaseURL); err != nil {
			return fmt.Errorf("public_base_url: %w", err)
		}
	}
	return nil
}
