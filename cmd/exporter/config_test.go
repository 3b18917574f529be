package main

import (
	"io"
	"testing"
	"time"

	"github.com/chestorix/dsmr-exporter/internal/config"
	"github.com/chestorix/dsmr-exporter/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() envConfig {
	return envConfig{
		Address:         ":8080",
		Prefix:          config.DefaultPrefix,
		LogLevel:        "info",
		UpstreamTimeout: 5 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		ServeStale:      true,
	}
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("DSMR_BASE_URL", "http://192.168.1.20")
	t.Setenv("ADDRESS", "9100")
	t.Setenv("UPSTREAM_TIMEOUT", "2s")
	t.Setenv("SERVE_STALE", "false")
	t.Setenv("HOST_METRICS", "true")

	cfg, err := loadConfig(defaults())
	require.NoError(t, err)

	assert.Equal(t, "http://192.168.1.20", cfg.BaseURL.String())
	assert.Equal(t, ":9100", cfg.Address)
	assert.Equal(t, config.DefaultPrefix, cfg.Prefix)
	assert.Equal(t, 2*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.ServeStale)
	assert.True(t, cfg.HostMetrics)
}

func TestLoadConfig_FlagsKeptWhenEnvUnset(t *testing.T) {
	d := defaults()
	d.BaseURL = "http://dsmr.local"
	d.Prefix = "dsmr"

	cfg, err := loadConfig(d)
	require.NoError(t, err)
	assert.Equal(t, "dsmr", cfg.Prefix)
	assert.True(t, cfg.ServeStale)
	assert.Equal(t, ":8080", cfg.Address)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		timeout string
	}{
		{name: "missing url", baseURL: ""},
		{name: "relative url", baseURL: "dsmr.local/api"},
		{name: "malformed url", baseURL: "http://[::1"},
		{name: "bad timeout", baseURL: "http://dsmr.local", timeout: "soon"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DSMR_BASE_URL", tt.baseURL)
			if tt.timeout != "" {
				t.Setenv("UPSTREAM_TIMEOUT", tt.timeout)
			}
			_, err := loadConfig(defaults())
			require.Error(t, err)
			if tt.timeout == "" {
				assert.ErrorIs(t, err, models.ErrInvalidConfig)
			}
		})
	}
}

func TestInitServer(t *testing.T) {
	t.Setenv("DSMR_BASE_URL", "http://127.0.0.1:1")
	cfg, err := loadConfig(defaults())
	require.NoError(t, err)
	cfg.HostMetrics = true

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	server, err := initServer(cfg, logger)
	require.NoError(t, err)
	assert.NotNil(t, server.Handler())
}
