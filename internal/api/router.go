package api

import (
	"github.com/chestorix/dsmr-exporter/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

type Router struct {
	chi.Router
	logger *logrus.Logger
}

func NewRouter(logger *logrus.Logger, httpMetrics *HTTPMetrics) *Router {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(NewLoggerMiddleware(logger))
	if httpMetrics != nil {
		r.Use(httpMetrics.Middleware)
	}
	r.Use(chimw.Recoverer)
	r.Use(middleware.GzipMiddleware)

	return &Router{
		Router: r,
		logger: logger,
	}
}

func (r *Router) SetupRoutes(metricsHandler *MetricsHandler) {
	r.Get("/", metricsHandler.IndexHandler)
	r.Get("/metrics", metricsHandler.ScrapeHandler)
}
