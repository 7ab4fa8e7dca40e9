package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	RPCLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}
)

// RPCMetrics groups JSON-RPC pipeline metrics
type RPCMetrics struct {
	RequestsTotal     *prometheus.CounterVec
	RequestDuration   *prometheus.HistogramVec
	RateLimitedTotal  prometheus.Counter
	TrackedClients    prometheus.Gauge
	TopMethodsLatency *prometheus.GaugeVec
}

// NewRPCMetrics creates and returns JSON-RPC metrics
func NewRPCMetrics() *RPCMetrics {
	return &RPCMetrics{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bridgeinfo_rpc_requests_total",
				Help: "Total number of JSON-RPC requests by method and result code",
			},
			[]string{"method", "code"}, // code: 0 on success, JSON-RPC error code otherwise
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bridgeinfo_rpc_request_duration_seconds",
				Help:    "JSON-RPC request processing time in seconds",
				Buckets: RPCLatencyBuckets,
			},
			[]string{"method"},
		),
		RateLimitedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "bridgeinfo_rpc_rate_limited_total",
				Help: "Total number of requests rejected by the per-client rate limiter",
			},
		),
		TrackedClients: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "bridgeinfo_rpc_rate_limiter_clients",
				Help: "Number of client identities held by the rate limiter",
			},
		),
		TopMethodsLatency: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "bridgeinfo_rpc_method_duration_p99",
				Help: "P99 duration of JSON-RPC methods (updated every 5min)",
			},
			[]string{"method"},
		),
	}
}

// Register registers all JSON-RPC metrics with the given registry
func (r *RPCMetrics) Register(reg *prometheus.Registry) {
	reg.MustRegister(
		r.RequestsTotal,
		r.RequestDuration,
		r.RateLimitedTotal,
		r.TrackedClients,
		r.TopMethodsLatency,
	)
}

// ObserveRPC records the outcome of one JSON-RPC request. method is empty when
// the request never reached a parsed method name.
func ObserveRPC(method string, code int, seconds float64) {
	if method == "" {
		method = "unknown"
	}
	m := GetMetrics().RPC
	m.RequestsTotal.WithLabelValues(method, strconv.Itoa(code)).Inc()
	m.RequestDuration.WithLabelValues(method).Observe(seconds)
	TrackMethod(method, seconds)
}

func RateLimited() {
	GetMetrics().RPC.RateLimitedTotal.Inc()
}

func SetTrackedClients(n int) {
	GetMetrics().RPC.TrackedClients.Set(float64(n))
}
