// Package config содержит конфигурацию экспортера.
package config

import (
	"fmt"
	"net/url"
	"regexp"
	"time"

	"github.com/chestorix/dsmr-exporter/internal/models"
)

const DefaultPrefix = "dsmr_logger"

var metricNameRe = regexp.MustCompile(`^[a-zA-Z_:][a-zA-Z0-9_:]*$`)

// builtinPrefixes заняты коллекторами Go runtime и процесса.
var builtinPrefixes = map[string]bool{"go": true, "process": true}

// ExporterConfig содержит конфигурационные параметры экспортера.
type ExporterConfig struct {
	BaseURL         *url.URL      // адрес DSMR data logger'а
	Address         string        // адрес и порт сервера (например: ":8080")
	Prefix          string        // префикс имён метрик
	LogLevel        string        // уровень логирования logrus
	UpstreamTimeout time.Duration // таймаут запроса к data logger'у
	ShutdownTimeout time.Duration // время на завершение активных запросов
	ServeStale      bool          // отдавать последние значения, если data logger недоступен
	HostMetrics     bool          // собирать метрики хоста через gopsutil
}

// Validate проверяет, что конфигурация пригодна для запуска.
func (c *ExporterConfig) Validate() error {
	if c.BaseURL == nil || c.BaseURL.String() == "" {
		return fmt.Errorf("%w: DSMR_BASE_URL is empty", models.ErrInvalidConfig)
	}
	if !c.BaseURL.IsAbs() || c.BaseURL.Host == "" {
		return fmt.Errorf("%w: DSMR_BASE_URL %q is not an absolute URL", models.ErrInvalidConfig, c.BaseURL.String())
	}
	if c.BaseURL.Scheme != "http" && c.BaseURL.Scheme != "https" {
		return fmt.Errorf("%w: unsupported scheme %q", models.ErrInvalidConfig, c.BaseURL.Scheme)
	}
	if !metricNameRe.MatchString(c.Prefix) {
		return fmt.Errorf("%w: metrics prefix %q is not a valid metric name", models.ErrInvalidConfig, c.Prefix)
	}
	if builtinPrefixes[c.Prefix] {
		return fmt.Errorf("%w: metrics prefix %q collides with built-in collectors", models.ErrInvalidConfig, c.Prefix)
	}
	if c.UpstreamTimeout <= 0 {
		return fmt.Errorf("%w: upstream timeout must be positive", models.ErrInvalidConfig)
	}
	return nil
}
