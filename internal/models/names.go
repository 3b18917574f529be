package models

// Имена собственных метрик экспортера, без префикса.
const (
	MetricUpstreamStale    = "upstream_stale"
	MetricUpstreamErrors   = "upstream_errors_total"
	MetricUpstreamDuration = "upstream_request_duration_seconds"
	MetricHTTPRequests     = "http_requests_total"
	MetricHTTPDuration     = "http_requests_duration_seconds"
	HostSubsystem          = "host"
)

// ReservedMetricNames lists names that a measurement must not map onto.
// A name is reserved when it equals an entry or starts with an entry followed by '_',
// which also covers histogram series (_bucket, _sum, _count) and the host subsystem.
var ReservedMetricNames = []string{
	MetricUpstreamStale,
	MetricUpstreamErrors,
	MetricUpstreamDuration,
	MetricHTTPRequests,
	MetricHTTPDuration,
	HostSubsystem,
}
