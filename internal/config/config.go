// SPDX-License-Identifier: EPL-2.0

// Package config loads application configuration from the environment,
// with an optional .env file for local development.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds the CLI and TTS client settings.
type Config struct {
	// Endpoint is the speech provider's synthesis URL.
	Endpoint string `env:"TTSBOX_ENDPOINT"`
	// APIKey authenticates against the provider. Empty means
	// unauthenticated requests.
	APIKey string `env:"TTSBOX_API_KEY"`

	// Voice and language defaults, overridable per request.
	Voice        string `env:"TTSBOX_VOICE"`
	Language     string `env:"TTSBOX_LANGUAGE"`
	AccentRegion string `env:"TTSBOX_ACCENT_REGION"`
	Style        string `env:"TTSBOX_STYLE"`

	// Raw PCM fallback format used when the provider returns headerless
	// audio. Matches the provider convention by default.
	FallbackSampleRate int `env:"TTSBOX_FALLBACK_SAMPLE_RATE"`
	FallbackChannels   int `env:"TTSBOX_FALLBACK_CHANNELS"`
	FallbackBitDepth   int `env:"TTSBOX_FALLBACK_BIT_DEPTH"`

	// OutputDir is where WAV artifacts are stored.
	OutputDir string `env:"TTSBOX_OUTPUT_DIR"`

	DebugMode bool `env:"TTSBOX_DEBUG"`
}

// Load reads .env (if present) and the process environment, then applies
// defaults for unset fields.
func Load() (*Config, error) {
	// Missing .env is fine; ENV alone is a valid setup
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	if cfg.Language == "" {
		cfg.Language = "en"
	}
	if cfg.Style == "" {
		cfg.Style = "natural"
	}
	if cfg.FallbackSampleRate == 0 {
		cfg.FallbackSampleRate = 24000
	}
	if cfg.FallbackChannels == 0 {
		cfg.FallbackChannels = 1
	}
	if cfg.FallbackBitDepth == 0 {
		cfg.FallbackBitDepth = 16
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "audio"
	}

	return cfg, nil
}
