package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.bcrypt_cost must be in [%d, %d] (got %d)", bcrypt.MinCost, bcrypt.MaxCost, c.Auth.BcryptCost)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range (got %d)", c.Server.Port)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) exceeds max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	if err := c.RateLimit.validate(); err != nil {
		return fmt.Errorf("rate_limit: %w", err)
	}

	return nil
}

func (r *RateLimitConfig) validate() error {
	if r.PurchasePerMinute < 0 || r.AuthPerMinute < 0 {
		return fmt.Errorf("per_minute values must be >= 0")
	}
	if r.PurchasePerMinute > 0 && r.PurchaseBurst <= 0 {
		return fmt.Errorf("purchase_burst must be > 0 when purchase limiting is enabled (got %d)", r.PurchaseBurst)
	}
	if r.AuthPerMinute > 0 && r.AuthBurst <= 0 {
		return fmt.Errorf("auth_burst must be > 0 when auth limiting is enabled (got %d)", r.AuthBurst)
	}
	return nil
}
