// Package service - логика одного scrape: опрос data logger'а, маппинг и рендеринг метрик.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/chestorix/dsmr-exporter/internal/domain/interfaces"
	"github.com/chestorix/dsmr-exporter/internal/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

const (
	reasonUnreachable = "unreachable"
	reasonDecode      = "decode"
)

type Options struct {
	Prefix     string
	ServeStale bool
}

type ScrapeService struct {
	fetcher  interfaces.Fetcher
	mapper   interfaces.Mapper
	sink     interfaces.Sink
	logger   *logrus.Logger
	stale    prometheus.Gauge
	errors   *prometheus.CounterVec
	duration prometheus.Histogram

	serveStale bool
	polledOnce atomic.Bool
}

func NewScrapeService(fetcher interfaces.Fetcher, mapper interfaces.Mapper, sink interfaces.Sink, logger *logrus.Logger, opts Options) (*ScrapeService, error) {
	s := &ScrapeService{
		fetcher:    fetcher,
		mapper:     mapper,
		sink:       sink,
		logger:     logger,
		serveStale: opts.ServeStale,
		stale: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: opts.Prefix,
			Name:      models.MetricUpstreamStale,
			Help:      "1 if the last poll of the data logger failed and stale values are served.",
		}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: opts.Prefix,
			Name:      models.MetricUpstreamErrors,
			Help:      "Total number of failed data logger polls.",
		}, []string{"reason"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: opts.Prefix,
			Name:      models.MetricUpstreamDuration,
			Help:      "Duration of data logger polls in seconds.",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	for _, c := range []prometheus.Collector{s.stale, s.errors, s.duration} {
		if err := sink.Registerer().Register(c); err != nil {
			return nil, fmt.Errorf("failed to register scrape metrics: %w", err)
		}
	}
	s.errors.WithLabelValues(reasonUnreachable)
	s.errors.WithLabelValues(reasonDecode)

	return s, nil
}

// Scrape polls the data logger once, applies the resulting gauges and renders the sink.
func (s *ScrapeService) Scrape(ctx context.Context) (models.ScrapeResult, error) {
	start := time.Now()
	batch, err := s.fetcher.FetchActual(ctx)
	s.duration.Observe(time.Since(start).Seconds())
	if err != nil {
		return s.fallback(err)
	}

	updates, discarded := s.mapper.MapBatch(batch)
	for _, u := range updates {
		s.sink.Apply(u)
	}
	s.stale.Set(0)
	s.polledOnce.Store(true)

	s.logger.WithFields(logrus.Fields{
		"applied":   len(updates),
		"discarded": discarded,
	}).Debug("data logger polled")

	return models.ScrapeResult{
		Body:      s.render(),
		Applied:   len(updates),
		Discarded: discarded,
	}, nil
}

func (s *ScrapeService) Gauges() []models.GaugeUpdate {
	return s.sink.Gauges()
}

// fallback serves the last known gauges when allowed, otherwise fails the scrape.
func (s *ScrapeService) fallback(err error) (models.ScrapeResult, error) {
	reason := reasonUnreachable
	if errors.Is(err, models.ErrUpstreamDecode) {
		reason = reasonDecode
	}
	s.errors.WithLabelValues(reason).Inc()
	s.logger.WithError(err).WithField("reason", reason).Error("Failed to poll data logger")

	if !s.serveStale || !s.polledOnce.Load() {
		return models.ScrapeResult{}, fmt.Errorf("failed to poll data logger: %w", err)
	}

	s.stale.Set(1)
	return models.ScrapeResult{Body: s.render(), Stale: true}, nil
}

func (s *ScrapeService) render() string {
	body, err := s.sink.Render()
	if err != nil {
		s.logger.WithError(err).Warn("Metrics rendered with errors")
	}
	return body
}
