// Package api - описание хендлеров и эндпоинтов экспортера.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/chestorix/dsmr-exporter/internal/config"
	"github.com/chestorix/dsmr-exporter/internal/domain/interfaces"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

type Server struct {
	cfg    *config.ExporterConfig
	router *Router
	server *http.Server
	logger *logrus.Logger
}

func NewServer(cfg *config.ExporterConfig, scraper interfaces.Scraper, reg prometheus.Registerer, logger *logrus.Logger) (*Server, error) {
	httpMetrics, err := NewHTTPMetrics(cfg.Prefix, reg)
	if err != nil {
		return nil, fmt.Errorf("failed to register HTTP metrics: %w", err)
	}

	router := NewRouter(logger, httpMetrics)
	router.SetupRoutes(NewMetricsHandler(scraper, logger))

	return &Server{
		cfg:    cfg,
		router: router,
		logger: logger,
		server: &http.Server{
			Addr:              cfg.Address,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// Handler returns the routed handler, used by tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start blocks until the server stops. A graceful shutdown is not an error.
func (s *Server) Start() error {
	s.logger.Infoln("Server listened address: ", s.cfg.Address)

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
