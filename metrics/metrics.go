package metrics

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/initia-labs/bridgeinfo/config"
)

// DBStatsProvider interface for getting database statistics
type DBStatsProvider interface {
	GetDBStats() (*sql.DBStats, error)
}

// Metrics contains all metric groups
type Metrics struct {
	HTTP     *HTTPMetrics
	RPC      *RPCMetrics
	Store    *StoreMetrics
	Database *DatabaseMetrics
	Error    *ErrorMetrics
}

var (
	// Global registry and metrics
	registry *prometheus.Registry
	metrics  *Metrics

	// Global DB stats updater
	dbStatsUpdater *DBStatsUpdater
	dbStatsMu      sync.Mutex

	// Singleton initialization
	initOnce sync.Once
)

// MetricsServer represents the Prometheus metrics HTTP server
type MetricsServer struct {
	server *http.Server
	logger *slog.Logger
	cfg    *config.MetricsConfig
}

// Init initializes the Prometheus metrics registry and registers all metrics.
// It is safe to call multiple times.
func Init() {
	initOnce.Do(func() {
		registry = prometheus.NewRegistry()

		metrics = &Metrics{
			HTTP:     NewHTTPMetrics(),
			RPC:      NewRPCMetrics(),
			Store:    NewStoreMetrics(),
			Database: NewDatabaseMetrics(),
			Error:    NewErrorMetrics(),
		}

		metrics.HTTP.Register(registry)
		metrics.RPC.Register(registry)
		metrics.Store.Register(registry)
		metrics.Database.Register(registry)
		metrics.Error.Register(registry)

		// Add Go runtime metrics
		registry.MustRegister(collectors.NewGoCollector())
		registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

// Registry returns the registry all metrics are registered with.
func Registry() *prometheus.Registry {
	Init()
	return registry
}

// NewServer creates a new metrics server
func NewServer(cfg *config.Config, logger *slog.Logger) *MetricsServer {
	metricsConfig := cfg.GetMetricsConfig()

	mux := http.NewServeMux()
	mux.Handle(metricsConfig.Path, promhttp.HandlerFor(Registry(), promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	}))

	server := &http.Server{
		Addr:              ":" + metricsConfig.Port,
		Handler:           mux,
		ReadHeaderTimeout: 3 * time.Second,
	}

	return &MetricsServer{
		server: server,
		logger: logger.With("component", "metrics"),
		cfg:    metricsConfig,
	}
}

// Start starts the metrics server and blocks until it stops.
func (m *MetricsServer) Start() error {
	if !m.cfg.Enabled {
		m.logger.Info("metrics server disabled")
		return nil
	}

	StartMethodTracking()

	m.logger.Info("starting metrics server",
		slog.String("addr", m.server.Addr),
		slog.String("path", m.cfg.Path))

	if err := m.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the metrics server
func (m *MetricsServer) Shutdown(ctx context.Context) error {
	if !m.cfg.Enabled {
		return nil
	}

	m.logger.Info("shutting down metrics server")
	StopDBStatsUpdater()
	StopMethodTracking()
	return m.server.Shutdown(ctx)
}

// GetMetrics returns the global metrics instance, initializing it on first use.
func GetMetrics() *Metrics {
	Init()
	return metrics
}

// StartDBStatsUpdater starts periodic database statistics collection
func StartDBStatsUpdater(provider DBStatsProvider, logger *slog.Logger) {
	dbStatsMu.Lock()
	defer dbStatsMu.Unlock()

	if dbStatsUpdater != nil {
		return // Already started
	}

	dbStatsUpdater = NewDBStatsUpdater(provider, logger, GetMetrics().Database)
	dbStatsUpdater.Start()
}

// StopDBStatsUpdater stops the database statistics collection
func StopDBStatsUpdater() {
	dbStatsMu.Lock()
	defer dbStatsMu.Unlock()

	if dbStatsUpdater != nil {
		dbStatsUpdater.Stop()
		dbStatsUpdater = nil
	}
}
