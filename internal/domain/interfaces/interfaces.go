// Package interfaces - определение интерфейсов приложения.
package interfaces

import (
	"context"

	"github.com/chestorix/dsmr-exporter/internal/models"
	"github.com/prometheus/client_golang/prometheus"
)

// Fetcher получает текущие показания от data logger'а.
type Fetcher interface {
	FetchActual(ctx context.Context) (models.Batch, error)
}

// Mapper превращает показания в обновления gauge.
type Mapper interface {
	MapBatch(b models.Batch) ([]models.GaugeUpdate, int)
}

// Sink хранит gauge и отдаёт их в текстовом формате.
type Sink interface {
	Apply(u models.GaugeUpdate)
	Gauges() []models.GaugeUpdate
	Render() (string, error)
	Registerer() prometheus.Registerer
}

// Scraper выполняет один цикл: опрос data logger'а и рендеринг метрик.
type Scraper interface {
	Scrape(ctx context.Context) (models.ScrapeResult, error)
	Gauges() []models.GaugeUpdate
}
