//go:build wireinject

package main

import (
	"github.com/chestorix/dsmr-exporter/internal/api"
	"github.com/chestorix/dsmr-exporter/internal/config"
	"github.com/google/wire"
	"github.com/sirupsen/logrus"
)

func initServer(cfg *config.ExporterConfig, logger *logrus.Logger) (*api.Server, error) {
	wire.Build(
		provideSink,
		provideClient,
		provideMapper,
		provideScraper,
		provideServer,
	)
	return nil, nil
}
