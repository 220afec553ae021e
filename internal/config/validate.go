package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in (0, 65535] (got %d)", c.Server.Port)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)",
			c.Database.MinConns, c.Database.MaxConns)
	}

	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be > 0 (got %v)", c.Cache.TTL)
	}
	if c.Cache.MaxEntries <= 0 {
		return fmt.Errorf("cache.max_entries must be > 0 (got %d)", c.Cache.MaxEntries)
	}

	if c.PrefSync.BaseURL != "" {
		if !strings.HasPrefix(c.PrefSync.BaseURL, "http://") && !strings.HasPrefix(c.PrefSync.BaseURL, "https://") {
			return fmt.Errorf("prefsync.base_url must be an http(s) URL (got %q)", c.PrefSync.BaseURL)
		}
		if c.PrefSync.Timeout <= 0 {
			return fmt.Errorf("prefsync.timeout must be > 0 (got %v)", c.PrefSync.Timeout)
		}
	}

	return nil
}
