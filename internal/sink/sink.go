// Package sink - хранилище gauge и рендеринг метрик в текстовом формате Prometheus.
package sink

import (
	"bytes"
	"fmt"

	"github.com/chestorix/dsmr-exporter/internal/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/common/expfmt"
)

var textFormat = expfmt.NewFormat(expfmt.TypeTextPlain)

// ContentType is the content type of Render output.
var ContentType = string(textFormat)

const gaugeHelp = "Value reported by the DSMR data logger."

type Sink struct {
	registry *prometheus.Registry
	store    *gaugeStore
}

type options struct {
	runtimeCollectors bool
}

type Option func(*options)

// WithRuntimeCollectors controls registration of the Go and process collectors. Enabled by default.
func WithRuntimeCollectors(enabled bool) Option {
	return func(o *options) {
		o.runtimeCollectors = enabled
	}
}

func New(opts ...Option) *Sink {
	o := options{runtimeCollectors: true}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Sink{
		registry: prometheus.NewRegistry(),
		store:    newGaugeStore(),
	}
	s.registry.MustRegister(&gaugeCollector{store: s.store})
	if o.runtimeCollectors {
		s.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	return s
}

// Apply sets or overwrites the gauge named u.Name.
func (s *Sink) Apply(u models.GaugeUpdate) {
	s.store.set(u.Name, u.Value)
}

func (s *Sink) Value(name string) (float64, bool) {
	return s.store.get(name)
}

// Gauges returns all domain gauges sorted by name.
func (s *Sink) Gauges() []models.GaugeUpdate {
	return s.store.all()
}

// Registerer exposes the sink registry for built-in instrumentation.
func (s *Sink) Registerer() prometheus.Registerer {
	return s.registry
}

// Render encodes every known metric family in text exposition format.
// On a gather error the families that could be gathered are still rendered.
func (s *Sink) Render() (string, error) {
	families, gatherErr := s.registry.Gather()

	var buf bytes.Buffer
	enc := expfmt.NewEncoder(&buf, textFormat)
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return buf.String(), fmt.Errorf("failed to encode metric family %s: %w", mf.GetName(), err)
		}
	}

	if gatherErr != nil {
		return buf.String(), fmt.Errorf("failed to gather metrics: %w", gatherErr)
	}
	return buf.String(), nil
}

// gaugeCollector is an unchecked collector: gauge names are only known at scrape time.
type gaugeCollector struct {
	store *gaugeStore
}

func (c *gaugeCollector) Describe(chan<- *prometheus.Desc) {}

func (c *gaugeCollector) Collect(ch chan<- prometheus.Metric) {
	for _, g := range c.store.all() {
		desc := prometheus.NewDesc(g.Name, gaugeHelp, nil, nil)
		m, err := prometheus.NewConstMetric(desc, prometheus.GaugeValue, g.Value)
		if err != nil {
			ch <- prometheus.NewInvalidMetric(desc, err)
			continue
		}
		ch <- m
	}
}
