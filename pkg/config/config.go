package config

import (
	"github.com/Nareth123/angular/pkg/env"
)

// Config represents the complete configuration for the animation runtime.
// It provides type-safe access to all configuration values with validation.
type Config struct {
	Log Log `koanf:"log"`
	DOM DOM `koanf:"dom"`
}

// Log contains structured-logging configuration.
type Log struct {
	Level     string `koanf:"level"      validate:"omitempty,oneof=debug info warn error disabled" env:"LOG_LEVEL"`
	JSON      bool   `koanf:"json"                                                                 env:"LOG_JSON"`
	AddSource bool   `koanf:"add_source"                                                           env:"LOG_ADD_SOURCE"`
}

// DOM contains element-layer configuration.
type DOM struct {
	// StyleCacheSize bounds the LRU cache of parsed element styles.
	StyleCacheSize int `koanf:"style_cache_size" validate:"min=1" env:"DOM_STYLE_CACHE_SIZE"`
	// DisableElements forces the no-element capability set, as used by
	// hosts that never materialize a document tree.
	DisableElements bool `koanf:"disable_elements" env:"DOM_DISABLE_ELEMENTS"`
}

// Default returns the configuration used when no overrides are present.
func Default() *Config {
	return &Config{
		Log: Log{
			Level: "info",
		},
		DOM: DOM{
			StyleCacheSize: 512,
		},
	}
}

// Capabilities derives the host capability set from the configuration.
func (c *Config) Capabilities() env.Capabilities {
	if c.DOM.DisableElements {
		return env.None()
	}
	return env.Detect()
}
