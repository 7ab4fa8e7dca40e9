package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	StoreLatencyBuckets = []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1}
	SemaphoreBuckets    = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1}
)

// StoreMetrics groups key-value store read metrics
type StoreMetrics struct {
	ReadsTotal            *prometheus.CounterVec
	ReadDuration          *prometheus.HistogramVec
	CacheRequestsTotal    *prometheus.CounterVec
	ConcurrentReads       prometheus.Gauge
	SemaphoreWaitDuration prometheus.Histogram
}

// NewStoreMetrics creates and returns store metrics
func NewStoreMetrics() *StoreMetrics {
	return &StoreMetrics{
		ReadsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bridgeinfo_store_reads_total",
				Help: "Total number of store reads by backend, namespace and outcome",
			},
			[]string{"backend", "namespace", "outcome"}, // outcome: found, absent, error
		),
		ReadDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bridgeinfo_store_read_duration_seconds",
				Help:    "Store read latency in seconds",
				Buckets: StoreLatencyBuckets,
			},
			[]string{"backend"},
		),
		CacheRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bridgeinfo_store_cache_requests_total",
				Help: "Total number of store cache lookups",
			},
			[]string{"result"}, // hit, miss
		),
		ConcurrentReads: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "bridgeinfo_store_concurrent_reads",
				Help: "Number of store reads currently in progress",
			},
		),
		SemaphoreWaitDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "bridgeinfo_store_semaphore_wait_duration_seconds",
				Help:    "Time spent waiting for a store read slot",
				Buckets: SemaphoreBuckets,
			},
		),
	}
}

// Register registers all store metrics with the given registry
func (s *StoreMetrics) Register(reg *prometheus.Registry) {
	reg.MustRegister(
		s.ReadsTotal,
		s.ReadDuration,
		s.CacheRequestsTotal,
		s.ConcurrentReads,
		s.SemaphoreWaitDuration,
	)
}

func StoreReadsTotal() *prometheus.CounterVec {
	return GetMetrics().Store.ReadsTotal
}

func StoreReadDuration() *prometheus.HistogramVec {
	return GetMetrics().Store.ReadDuration
}

func StoreCacheRequestsTotal() *prometheus.CounterVec {
	return GetMetrics().Store.CacheRequestsTotal
}

func StoreConcurrentReads() prometheus.Gauge {
	return GetMetrics().Store.ConcurrentReads
}

func StoreSemaphoreWaitDuration() prometheus.Histogram {
	return GetMetrics().Store.SemaphoreWaitDuration
}
