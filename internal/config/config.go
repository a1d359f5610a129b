// Rasoi - Personalized Nutrition Recommendation Engine
// Copyright 2026 Asha R. (rasoilabs)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rasoilabs/rasoi

// Package config loads and validates the application configuration from
// layered sources: built-in defaults, an optional YAML file, and environment
// variables, with env vars taking the highest priority.
package config

import (
	"fmt"
	"time"

	"github.com/rasoilabs/rasoi/internal/catalog"
	"github.com/rasoilabs/rasoi/internal/engine"
)

// Config is the root application configuration.
type Config struct {
	// Server contains HTTP server settings.
	Server ServerConfig `json:"server" koanf:"server"`

	// API contains API behavior settings.
	API APIConfig `json:"api" koanf:"api"`

	// Catalog selects and configures the food catalog source.
	Catalog CatalogConfig `json:"catalog" koanf:"catalog"`

	// Engine contains the recommendation engine settings.
	Engine engine.Config `json:"engine" koanf:"engine"`

	// Logging contains log output settings.
	Logging LoggingConfig `json:"logging" koanf:"logging"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	// Host is the listen address.
	Host string `json:"host" koanf:"host"`

	// Port is the listen port.
	Port int `json:"port" koanf:"port"`

	// Timeout bounds request read and write.
	Timeout time.Duration `json:"timeout" koanf:"timeout"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `json:"shutdown_timeout" koanf:"shutdown_timeout"`
}

// APIConfig contains API behavior settings.
type APIConfig struct {
	// RateLimitReqs is the per-IP request budget per window. Zero disables
	// rate limiting.
	RateLimitReqs int `json:"rate_limit_reqs" koanf:"rate_limit_reqs"`

	// RateLimitWindow is the rate limit window.
	RateLimitWindow time.Duration `json:"rate_limit_window" koanf:"rate_limit_window"`

	// CORSOrigins lists allowed CORS origins.
	CORSOrigins []string `json:"cors_origins" koanf:"cors_origins"`
}

// CatalogConfig selects the food catalog source.
type CatalogConfig struct {
	// Source is "builtin", "file", or "http".
	Source string `json:"source" koanf:"source"`

	// Path is the catalog JSON file, used when Source is "file".
	Path string `json:"path" koanf:"path"`

	// HTTP configures the remote catalog client, used when Source is "http".
	HTTP catalog.HTTPConfig `json:"http" koanf:"http"`
}

// LoggingConfig contains log output settings.
type LoggingConfig struct {
	// Level is the minimum log level.
	Level string `json:"level" koanf:"level"`

	// Format is "json" or "console".
	Format string `json:"format" koanf:"format"`

	// Caller includes caller file and line in logs.
	Caller bool `json:"caller" koanf:"caller"`
}

// Default returns the configuration defaults applied before file and env
// layers.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		API: APIConfig{
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
			CORSOrigins:     []string{"*"},
		},
		Catalog: CatalogConfig{
			Source: "builtin",
			HTTP:   catalog.DefaultHTTPConfig(),
		},
		Engine: *engine.DefaultConfig(),
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Validate checks the configuration for internal consistency.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %s", c.Server.Timeout)
	}
	switch c.Catalog.Source {
	case "builtin":
	case "file":
		if c.Catalog.Path == "" {
			return fmt.Errorf("catalog.path is required when catalog.source is file")
		}
	case "http":
		if c.Catalog.HTTP.URL == "" {
			return fmt.Errorf("catalog.http.url is required when catalog.source is http")
		}
	default:
		return fmt.Errorf("catalog.source must be builtin, file, or http, got %q", c.Catalog.Source)
	}
	if err := c.Engine.Validate(); err != nil {
		return fmt.Errorf("engine: %w", err)
	}
	return nil
}
