package main

import (
	"flag"
	"time"

	"github.com/chestorix/dsmr-exporter/internal/config"
)

var (
	flagRunAddr         string
	flagBaseURL         string
	flagPrefix          string
	flagLogLevel        string
	flagUpstreamTimeout time.Duration
	flagShutdownTimeout time.Duration
	flagServeStale      bool
	flagHostMetrics     bool
)

func parseFlags() {
	flag.StringVar(&flagRunAddr, "a", ":8080", "address and port to run server")
	flag.StringVar(&flagBaseURL, "u", "", "base URL of the DSMR data logger, e.g. http://192.168.1.20")
	flag.StringVar(&flagPrefix, "p", config.DefaultPrefix, "prefix of exported metric names")
	flag.StringVar(&flagLogLevel, "l", "info", "log level (debug, info, warn, error)")
	flag.DurationVar(&flagUpstreamTimeout, "t", 5*time.Second, "timeout of one data logger request")
	flag.DurationVar(&flagShutdownTimeout, "shutdown-timeout", 10*time.Second, "time to finish active requests on shutdown")
	flag.BoolVar(&flagServeStale, "stale", true, "serve last known values when the data logger is unreachable")
	flag.BoolVar(&flagHostMetrics, "host-metrics", false, "export memory, load and uptime of the exporter host")
	flag.Parse()
}

func flagDefaults() envConfig {
	return envConfig{
		Address:         flagRunAddr,
		BaseURL:         flagBaseURL,
		Prefix:          flagPrefix,
		LogLevel:        flagLogLevel,
		UpstreamTimeout: flagUpstreamTimeout,
		ShutdownTimeout: flagShutdownTimeout,
		ServeStale:      flagServeStale,
		HostMetrics:     flagHostMetrics,
	}
}
