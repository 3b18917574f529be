package api

import (
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"

	"github.com/chestorix/dsmr-exporter/internal/domain/interfaces"
	"github.com/chestorix/dsmr-exporter/internal/sink"
	"github.com/sirupsen/logrus"
)

type MetricsHandler struct {
	scraper interfaces.Scraper
	logger  *logrus.Logger
}

func NewMetricsHandler(scraper interfaces.Scraper, logger *logrus.Logger) *MetricsHandler {
	return &MetricsHandler{scraper: scraper, logger: logger}
}

// ScrapeHandler polls the data logger and returns the metrics snapshot.
func (h *MetricsHandler) ScrapeHandler(w http.ResponseWriter, r *http.Request) {
	res, err := h.scraper.Scrape(r.Context())
	if err != nil {
		http.Error(w, "failed to poll data logger", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", sink.ContentType)
	if res.Stale {
		w.Header().Set("X-Metrics-Stale", "true")
	}
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, res.Body); err != nil {
		h.logger.WithError(err).Warn("Failed to write metrics response")
	}
}

func (h *MetricsHandler) IndexHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	var sb strings.Builder
	sb.WriteString(`
    <!DOCTYPE html>
    <html>
    <head>
        <title>DSMR exporter</title>
        <style>
            body { font-family: Arial, sans-serif; margin: 20px; }
            h1 { color: #333; }
            table { border-collapse: collapse; width: 100%; max-width: 800px; }
            th, td { border: 1px solid #ddd; padding: 8px; text-align: left; }
            th { background-color: #f2f2f2; }
            tr:nth-child(even) { background-color: #f9f9f9; }
        </style>
    </head>
    <body>
        <h1>DSMR exporter</h1>
        <p><a href="/metrics">Metrics</a></p>
        <table>
            <tr>
                <th>Name</th>
                <th>Value</th>
            </tr>
    `)

	for _, g := range h.scraper.Gauges() {
		fmt.Fprintf(&sb, `
            <tr>
                <td>%s</td>
                <td>%v</td>
            </tr>
        `, html.EscapeString(g.Name), g.Value)
	}

	sb.WriteString(`
        </table>
    </body>
    </html>
    `)
	io.WriteString(w, sb.String())
}
