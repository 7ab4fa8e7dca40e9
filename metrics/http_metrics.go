package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPLatencyBuckets = []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}
)

// HTTPMetrics groups HTTP-related metrics
type HTTPMetrics struct {
	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight prometheus.Gauge
}

// NewHTTPMetrics creates and returns HTTP metrics
func NewHTTPMetrics() *HTTPMetrics {
	return &HTTPMetrics{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bridgeinfo_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "handler", "status_class"}, // status_class: 2xx, 3xx, 4xx, 5xx
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bridgeinfo_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: HTTPLatencyBuckets,
			},
			[]string{"method", "handler"},
		),
		RequestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "bridgeinfo_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
		),
	}
}

// Register registers all HTTP metrics with the given registry
func (h *HTTPMetrics) Register(reg *prometheus.Registry) {
	reg.MustRegister(
		h.RequestsTotal,
		h.RequestDuration,
		h.RequestsInFlight,
	)
}

// GetStatusClass converts HTTP status code to class (2xx, 3xx, 4xx, 5xx)
func GetStatusClass(statusCode int) string {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return "2xx"
	case statusCode >= 300 && statusCode < 400:
		return "3xx"
	case statusCode >= 400 && statusCode < 500:
		return "4xx"
	case statusCode >= 500:
		return "5xx"
	default:
		return "other"
	}
}

// GetHandlerPattern maps a request path to a low-cardinality handler label.
func GetHandlerPattern(path, rpcPath string) string {
	switch {
	case path == rpcPath:
		return "rpc"
	case strings.HasPrefix(path, "/swagger"):
		return "swagger"
	case path == "/health":
		return "health"
	case path == "/status":
		return "status"
	default:
		return "other"
	}
}
