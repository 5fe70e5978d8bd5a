package config

import (
	"fmt"
	"time"
)

const (
	defaultHTTPAddress    = "localhost:8080"
	defaultUploadDir      = "uploads"
	defaultTokenIssuer    = "eterna"
	defaultTokenDuration  = 24 * time.Hour
	defaultRequestTimeout = 30 * time.Second
)

// applyDefaults fills in fields no configuration source provided.
// The database DSN and token signing key have no safe defaults and are
// left for validate to reject.
func (c *StructuredConfig) applyDefaults() {
	if c.Server.HTTPAddress == "" {
		c.Server.HTTPAddress = defaultHTTPAddress
	}
	if c.Server.RequestTimeout == 0 {
		c.Server.RequestTimeout = defaultRequestTimeout
	}
	if c.Storage.Files.UploadDir == "" {
		c.Storage.Files.UploadDir = defaultUploadDir
	}
	if c.App.TokenIssuer == "" {
		c.App.TokenIssuer = defaultTokenIssuer
	}
	if c.App.TokenDuration == 0 {
		c.App.TokenDuration = defaultTokenDuration
	}
}

func (c *StructuredConfig) validate() error {
	if c.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is empty", ErrInvalidConfig)
	}
	if c.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token signing key is empty", ErrInvalidConfig)
	}
	if c.App.TokenDuration < time.Minute {
		return fmt.Errorf("%w: token duration %s is shorter than a minute", ErrInvalidConfig, c.App.TokenDuration)
	}

	return nil
}
