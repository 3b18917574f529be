package main

import (
	"fmt"

	"github.com/chestorix/dsmr-exporter/internal/api"
	"github.com/chestorix/dsmr-exporter/internal/collector"
	"github.com/chestorix/dsmr-exporter/internal/config"
	"github.com/chestorix/dsmr-exporter/internal/mapper"
	"github.com/chestorix/dsmr-exporter/internal/service"
	"github.com/chestorix/dsmr-exporter/internal/sink"
	"github.com/chestorix/dsmr-exporter/internal/upstream"
	"github.com/sirupsen/logrus"
)

func provideSink(cfg *config.ExporterConfig, logger *logrus.Logger) (*sink.Sink, error) {
	s := sink.New()
	if cfg.HostMetrics {
		if err := s.Registerer().Register(collector.NewHostCollector(cfg.Prefix, logger)); err != nil {
			return nil, fmt.Errorf("failed to register host collector: %w", err)
		}
	}
	return s, nil
}

func provideClient(cfg *config.ExporterConfig) *upstream.Client {
	return upstream.NewClient(cfg.BaseURL, cfg.UpstreamTimeout)
}

func provideMapper(cfg *config.ExporterConfig, logger *logrus.Logger) *mapper.Mapper {
	return mapper.New(cfg.Prefix, logger)
}

func provideScraper(client *upstream.Client, m *mapper.Mapper, s *sink.Sink, logger *logrus.Logger, cfg *config.ExporterConfig) (*service.ScrapeService, error) {
	return service.NewScrapeService(client, m, s, logger, service.Options{
		Prefix:     cfg.Prefix,
		ServeStale: cfg.ServeStale,
	})
}

func provideServer(cfg *config.ExporterConfig, scraper *service.ScrapeService, s *sink.Sink, logger *logrus.Logger) (*api.Server, error) {
	return api.NewServer(cfg, scraper, s.Registerer(), logger)
}
