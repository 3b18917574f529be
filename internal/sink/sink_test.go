package sink

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/chestorix/dsmr-exporter/internal/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/prometheus/common/expfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSink_Apply(t *testing.T) {
	s := New(WithRuntimeCollectors(false))

	_, ok := s.Value("dsmr_logger_power_delivered_kw")
	assert.False(t, ok)

	u := models.GaugeUpdate{Name: "dsmr_logger_power_delivered_kw", Value: 1.23}
	s.Apply(u)
	once, ok := s.Value(u.Name)
	require.True(t, ok)

	s.Apply(u)
	twice, ok := s.Value(u.Name)
	require.True(t, ok)

	assert.Equal(t, once, twice)
	assert.Len(t, s.Gauges(), 1)
}

func TestSink_ApplyOverwrites(t *testing.T) {
	s := New(WithRuntimeCollectors(false))

	s.Apply(models.GaugeUpdate{Name: "dsmr_logger_voltage_l1_v", Value: 229.1})
	s.Apply(models.GaugeUpdate{Name: "dsmr_logger_voltage_l1_v", Value: 231.4})

	gauges := s.Gauges()
	require.Len(t, gauges, 1)
	assert.Equal(t, 231.4, gauges[0].Value)

	body, err := s.Render()
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(body, "\ndsmr_logger_voltage_l1_v "))
	assert.Contains(t, body, "dsmr_logger_voltage_l1_v 231.4\n")
}

func TestSink_Render(t *testing.T) {
	s := New()
	s.Apply(models.GaugeUpdate{Name: "dsmr_logger_power_delivered_kw", Value: 1.23})
	s.Apply(models.GaugeUpdate{Name: "dsmr_logger_electricity_tariff", Value: 2})

	body, err := s.Render()
	require.NoError(t, err)

	assert.Contains(t, body, "# TYPE dsmr_logger_power_delivered_kw gauge\n")
	assert.Contains(t, body, "dsmr_logger_power_delivered_kw 1.23\n")
	assert.Contains(t, body, "dsmr_logger_electricity_tariff 2\n")
	assert.Contains(t, body, "# TYPE go_goroutines gauge\n")

	goIdx := strings.Index(body, "go_goroutines")
	dsmrIdx := strings.Index(body, "dsmr_logger_power_delivered_kw")
	assert.Less(t, dsmrIdx, goIdx, "families are rendered sorted by name")
}

func TestSink_RenderEmpty(t *testing.T) {
	s := New(WithRuntimeCollectors(false))
	body, err := s.Render()
	require.NoError(t, err)
	assert.Empty(t, body)
}

func TestSink_RenderWithRegisteredInstrumentation(t *testing.T) {
	s := New(WithRuntimeCollectors(false))
	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dsmr_logger_http_requests_total",
		Help: "Total number of HTTP requests.",
	})
	s.Registerer().MustRegister(counter)
	counter.Inc()
	s.Apply(models.GaugeUpdate{Name: "dsmr_logger_gas_delivered_m3", Value: 5421.778})

	body, err := s.Render()
	require.NoError(t, err)

	assert.Contains(t, body, "dsmr_logger_gas_delivered_m3 5421.778\n")
	assert.Contains(t, body, "# HELP dsmr_logger_http_requests_total Total number of HTTP requests.\n")
	assert.Contains(t, body, "dsmr_logger_http_requests_total 1\n")
}

func TestSink_RenderCollision(t *testing.T) {
	s := New(WithRuntimeCollectors(false))
	s.Registerer().MustRegister(prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "dsmr_logger_upstream_stale",
		Help: "Whether the last upstream poll failed.",
	}))
	s.Apply(models.GaugeUpdate{Name: "dsmr_logger_upstream_stale", Value: 7})
	s.Apply(models.GaugeUpdate{Name: "dsmr_logger_power_delivered_kw", Value: 0.4})

	body, err := s.Render()
	require.Error(t, err)
	assert.Contains(t, body, "dsmr_logger_power_delivered_kw 0.4\n")
}

func TestSink_Isolated(t *testing.T) {
	a := New(WithRuntimeCollectors(false))
	b := New(WithRuntimeCollectors(false))

	a.Apply(models.GaugeUpdate{Name: "dsmr_logger_a", Value: 1})

	_, ok := b.Value("dsmr_logger_a")
	assert.False(t, ok)
	assert.Equal(t, 1, testutil.CollectAndCount(&gaugeCollector{store: a.store}))
	assert.Equal(t, 0, testutil.CollectAndCount(&gaugeCollector{store: b.store}))
}

func TestSink_ConcurrentApply(t *testing.T) {
	s := New(WithRuntimeCollectors(false))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.Apply(models.GaugeUpdate{Name: fmt.Sprintf("dsmr_logger_g%d", j%10), Value: float64(i)})
				if j%25 == 0 {
					_, err := s.Render()
					assert.NoError(t, err)
				}
			}
		}(i)
	}
	wg.Wait()

	assert.Len(t, s.Gauges(), 10)
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "text/plain; version=0.0.4; charset=utf-8", ContentType)
}

func TestSink_RenderIsParseable(t *testing.T) {
	s := New()
	s.Apply(models.GaugeUpdate{Name: "dsmr_logger_power_delivered_kw", Value: 0.412})

	body, err := s.Render()
	require.NoError(t, err)

	var parser expfmt.TextParser
	families, err := parser.TextToMetricFamilies(strings.NewReader(body))
	require.NoError(t, err)
	require.Contains(t, families, "dsmr_logger_power_delivered_kw")
	assert.Equal(t, 0.412, families["dsmr_logger_power_delivered_kw"].GetMetric()[0].GetGauge().GetValue())
	assert.Contains(t, families, "go_goroutines")
}
