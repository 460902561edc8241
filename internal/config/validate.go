package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	u, err := url.Parse(c.Core.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("core.base_url must be an absolute URL (got %q)", c.Core.BaseURL)
	}
	if strings.HasSuffix(c.Core.BaseURL, "/") {
		c.Core.BaseURL = strings.TrimRight(c.Core.BaseURL, "/")
	}

	if c.Cache.Size < 1 {
		return fmt.Errorf("cache.size must be at least 1 (got %d)", c.Cache.Size)
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive (got %v)", c.Cache.TTL)
	}

	if c.Server.RatePerMinute < 1 {
		return fmt.Errorf("server.rate_per_minute must be at least 1 (got %d)", c.Server.RatePerMinute)
	}

	return nil
}

// HTTPAddress returns the host:port the server listens on.
func (c ServerConfig) HTTPAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
