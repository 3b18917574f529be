package main

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/chestorix/dsmr-exporter/internal/config"
	"github.com/chestorix/dsmr-exporter/internal/models"
)

// envConfig is filled from flags first; variables that are set override them.
type envConfig struct {
	Address         string        `env:"ADDRESS"`
	BaseURL         string        `env:"DSMR_BASE_URL"`
	Prefix          string        `env:"METRICS_PREFIX"`
	LogLevel        string        `env:"LOG_LEVEL"`
	UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
	ServeStale      bool          `env:"SERVE_STALE"`
	HostMetrics     bool          `env:"HOST_METRICS"`
}

func loadConfig(defaults envConfig) (*config.ExporterConfig, error) {
	conf := defaults
	if err := env.Parse(&conf); err != nil {
		return nil, fmt.Errorf("failed to parse env vars: %w", err)
	}

	if strings.TrimSpace(conf.BaseURL) == "" {
		return nil, fmt.Errorf("%w: DSMR_BASE_URL is empty", models.ErrInvalidConfig)
	}
	baseURL, err := url.Parse(strings.TrimSpace(conf.BaseURL))
	if err != nil {
		return nil, fmt.Errorf("%w: DSMR_BASE_URL: %v", models.ErrInvalidConfig, err)
	}

	address := conf.Address
	if !strings.Contains(address, ":") {
		address = ":" + address
	}

	cfg := &config.ExporterConfig{
		BaseURL:         baseURL,
		Address:         address,
		Prefix:          conf.Prefix,
		LogLevel:        conf.LogLevel,
		UpstreamTimeout: conf.UpstreamTimeout,
		ShutdownTimeout: conf.ShutdownTimeout,
		ServeStale:      conf.ServeStale,
		HostMetrics:     conf.HostMetrics,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
