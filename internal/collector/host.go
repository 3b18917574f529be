// Package collector - метрики хоста, на котором запущен экспортер.
package collector

import (
	"context"
	"time"

	"github.com/chestorix/dsmr-exporter/internal/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/sirupsen/logrus"
)

const collectTimeout = 2 * time.Second

// HostCollector reads memory, load and uptime via gopsutil on every scrape.
type HostCollector struct {
	logger   *logrus.Logger
	memTotal *prometheus.Desc
	memFree  *prometheus.Desc
	memUsed  *prometheus.Desc
	load1    *prometheus.Desc
	load5    *prometheus.Desc
	load15   *prometheus.Desc
	uptime   *prometheus.Desc
}

func NewHostCollector(prefix string, logger *logrus.Logger) *HostCollector {
	name := func(n string) string {
		return prometheus.BuildFQName(prefix, models.HostSubsystem, n)
	}
	return &HostCollector{
		logger:   logger,
		memTotal: prometheus.NewDesc(name("memory_total_bytes"), "Total physical memory of the exporter host.", nil, nil),
		memFree:  prometheus.NewDesc(name("memory_free_bytes"), "Free physical memory of the exporter host.", nil, nil),
		memUsed:  prometheus.NewDesc(name("memory_used_ratio"), "Used physical memory of the exporter host, 0..1.", nil, nil),
		load1:    prometheus.NewDesc(name("load1"), "1m load average of the exporter host.", nil, nil),
		load5:    prometheus.NewDesc(name("load5"), "5m load average of the exporter host.", nil, nil),
		load15:   prometheus.NewDesc(name("load15"), "15m load average of the exporter host.", nil, nil),
		uptime:   prometheus.NewDesc(name("uptime_seconds"), "Uptime of the exporter host in seconds.", nil, nil),
	}
}

func (c *HostCollector) Describe(ch chan<- *prometheus.Desc) {
	for _, d := range []*prometheus.Desc{c.memTotal, c.memFree, c.memUsed, c.load1, c.load5, c.load15, c.uptime} {
		ch <- d
	}
}

// Collect skips a source that cannot be read instead of failing the scrape.
func (c *HostCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), collectTimeout)
	defer cancel()

	if memStat, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		ch <- prometheus.MustNewConstMetric(c.memTotal, prometheus.GaugeValue, float64(memStat.Total))
		ch <- prometheus.MustNewConstMetric(c.memFree, prometheus.GaugeValue, float64(memStat.Available))
		ch <- prometheus.MustNewConstMetric(c.memUsed, prometheus.GaugeValue, memStat.UsedPercent/100)
	} else {
		c.logger.WithError(err).Debug("Failed to read host memory")
	}

	if avg, err := load.AvgWithContext(ctx); err == nil {
		ch <- prometheus.MustNewConstMetric(c.load1, prometheus.GaugeValue, avg.Load1)
		ch <- prometheus.MustNewConstMetric(c.load5, prometheus.GaugeValue, avg.Load5)
		ch <- prometheus.MustNewConstMetric(c.load15, prometheus.GaugeValue, avg.Load15)
	} else {
		c.logger.WithError(err).Debug("Failed to read host load")
	}

	if up, err := host.UptimeWithContext(ctx); err == nil {
		ch <- prometheus.MustNewConstMetric(c.uptime, prometheus.GaugeValue, float64(up))
	} else {
		c.logger.WithError(err).Debug("Failed to read host uptime")
	}
}
