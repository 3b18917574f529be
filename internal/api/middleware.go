package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/chestorix/dsmr-exporter/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

func NewLoggerMiddleware(logger *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Специальный ResponseWriter для отслеживания статуса и размера
			ww := &responseWriter{w, http.StatusOK, 0}

			defer func() {
				logger.WithFields(logrus.Fields{
					"uri":      r.RequestURI,
					"method":   r.Method,
					"status":   ww.status,
					"size":     ww.size,
					"duration": time.Since(start).String(),
				}).Info("request completed")
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

// HTTPMetrics - счётчики HTTP запросов к самому экспортеру.
type HTTPMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	ignored  map[string]struct{}
}

func NewHTTPMetrics(prefix string, reg prometheus.Registerer) (*HTTPMetrics, error) {
	labels := []string{"method", "endpoint", "status"}
	m := &HTTPMetrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: prefix,
			Name:      models.MetricHTTPRequests,
			Help:      "Total number of HTTP requests handled by the exporter.",
		}, labels),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: prefix,
			Name:      models.MetricHTTPDuration,
			Help:      "Duration of HTTP requests handled by the exporter in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, labels),
		ignored: map[string]struct{}{
			"/metrics":     {},
			"/favicon.ico": {},
		},
	}
	if err := reg.Register(m.requests); err != nil {
		return nil, err
	}
	if err := reg.Register(m.duration); err != nil {
		return nil, err
	}
	return m, nil
}

// Middleware records every request except scrapes and favicon lookups.
func (m *HTTPMetrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := m.ignored[r.URL.Path]; ok {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		ww := &responseWriter{w, http.StatusOK, 0}
		next.ServeHTTP(ww, r)

		endpoint := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			endpoint = rctx.RoutePattern()
		} else if ww.status == http.StatusNotFound {
			endpoint = "unmatched"
		}
		status := strconv.Itoa(ww.status)
		m.requests.WithLabelValues(r.Method, endpoint, status).Inc()
		m.duration.WithLabelValues(r.Method, endpoint, status).Observe(time.Since(start).Seconds())
	})
}

type responseWriter struct {
	http.ResponseWriter
	status int
	size   int
}

func (w *responseWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	size, err := w.ResponseWriter.Write(b)
	w.size += size
	return size, err
}
