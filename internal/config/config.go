package config

import (
	"os"

	"github.com/joho/godotenv"

	"conlog/pkg/logging/types"
)

// Environment variable names recognized at initialization.
const (
	EnvLogLevel    = "LOG_LEVEL"
	EnvLogRenderer = "LOG_RENDERER"
)

// Renderer variant names.
const (
	RendererEmoji = "emoji"
	RendererPlain = "plain"
)

// Config represents the logging configuration
type Config struct {
	Logging struct {
		Threshold types.Severity
		Renderer  string
	}
}

// Load resolves the configuration from the environment. A .env file in the
// working directory is loaded first if present. Malformed values are silently
// recovered to the defaults: info threshold, emoji renderer.
func Load() *Config {
	// Load .env file if it exists (ignore errors as .env is optional)
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.Logging.Threshold = types.InfoLevel
	cfg.Logging.Renderer = RendererEmoji

	cfg.overrideWithEnvVars()

	return cfg
}

// overrideWithEnvVars overrides config values with environment variables if
// they are set
func (c *Config) overrideWithEnvVars() {
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.Logging.Threshold = types.ParseSeverity(level)
	}

	if renderer := os.Getenv(EnvLogRenderer); renderer != "" {
		switch renderer {
		case RendererEmoji, RendererPlain:
			c.Logging.Renderer = renderer
		}
	}
}
