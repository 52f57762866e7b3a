package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	FeedURL     string        `envconfig:"FEED_URL" default:"https://api.weather.gov/alerts/active.atom"`
	OutputPath  string        `envconfig:"OUTPUT_PATH" default:"site/alerts.kml"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
	UserAgent   string        `envconfig:"USER_AGENT" default:"alertmap/1.0 (+https://github.com/capwatch/alertmap)"`
	LogLevel    string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat   string        `envconfig:"LOG_FORMAT" default:"json"`
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}

	if cfg.FeedURL == "" {
		return nil, errors.New("FEED_URL is required")
	}
	u, err := url.Parse(cfg.FeedURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid FEED_URL %q", cfg.FeedURL)
	}
	if cfg.OutputPath == "" {
		return nil, errors.New("OUTPUT_PATH is required")
	}
	if cfg.HTTPTimeout <= 0 {
		return nil, errors.New("HTTP_TIMEOUT must be positive")
	}
	if cfg.UserAgent == "" {
		return nil, errors.New("USER_AGENT is required")
	}

	return &cfg, nil
}
