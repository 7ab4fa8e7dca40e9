package metrics

import (
	"database/sql"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const dbStatsInterval = 10 * time.Second

// kv_entry lookups are single-row primary key reads
var kvReadBuckets = []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.5}

// DatabaseMetrics covers the postgres store backend: the sql.DB pool and the
// queries gorm issues against kv_entry.
type DatabaseMetrics struct {
	PoolOpen      prometheus.Gauge
	PoolInUse     prometheus.Gauge
	PoolIdle      prometheus.Gauge
	PoolMaxOpen   prometheus.Gauge
	PoolWaits     prometheus.Counter
	PoolWaitTime  prometheus.Counter
	QueriesTotal  *prometheus.CounterVec
	QueryDuration *prometheus.HistogramVec
}

func NewDatabaseMetrics() *DatabaseMetrics {
	return &DatabaseMetrics{
		PoolOpen: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "bridgeinfo_db_pool_open_connections",
			Help: "Open connections in the store's postgres pool",
		}),
		PoolInUse: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "bridgeinfo_db_pool_in_use_connections",
			Help: "Pool connections currently serving a kv_entry read",
		}),
		PoolIdle: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "bridgeinfo_db_pool_idle_connections",
			Help: "Idle connections in the store's postgres pool",
		}),
		PoolMaxOpen: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "bridgeinfo_db_pool_max_open_connections",
			Help: "Configured DB_MAX_CONNS",
		}),
		PoolWaits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bridgeinfo_db_pool_waits_total",
			Help: "Reads that had to wait for a free pool connection",
		}),
		PoolWaitTime: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bridgeinfo_db_pool_wait_seconds_total",
			Help: "Time reads spent waiting for a free pool connection",
		}),
		QueriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bridgeinfo_db_queries_total",
				Help: "Queries issued by the postgres store, by operation and status",
			},
			[]string{"operation", "status"},
		),
		QueryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bridgeinfo_db_query_duration_seconds",
				Help:    "Query latency of the postgres store",
				Buckets: kvReadBuckets,
			},
			[]string{"operation", "table"},
		),
	}
}

func (d *DatabaseMetrics) Register(reg *prometheus.Registry) {
	reg.MustRegister(
		d.PoolOpen,
		d.PoolInUse,
		d.PoolIdle,
		d.PoolMaxOpen,
		d.PoolWaits,
		d.PoolWaitTime,
		d.QueriesTotal,
		d.QueryDuration,
	)
}

// DBStatsUpdater copies sql.DBStats into the pool metrics on a ticker.
// WaitCount and WaitDuration are cumulative in sql.DBStats, so only the
// growth since the previous sample is added to the counters.
type DBStatsUpdater struct {
	provider DBStatsProvider
	logger   *slog.Logger
	ticker   *time.Ticker
	done     chan struct{}
	metrics  *DatabaseMetrics

	lastWaits    int64
	lastWaitTime time.Duration
}

func NewDBStatsUpdater(provider DBStatsProvider, logger *slog.Logger, metrics *DatabaseMetrics) *DBStatsUpdater {
	return &DBStatsUpdater{
		provider: provider,
		logger:   logger.With("component", "db_stats"),
		ticker:   time.NewTicker(dbStatsInterval),
		done:     make(chan struct{}),
		metrics:  metrics,
	}
}

func (u *DBStatsUpdater) Start() {
	u.logger.Info("starting database stats updater")
	u.updateStats()
	go u.run()
}

func (u *DBStatsUpdater) Stop() {
	u.logger.Info("stopping database stats updater")
	u.ticker.Stop()
	close(u.done)
}

func (u *DBStatsUpdater) run() {
	for {
		select {
		case <-u.ticker.C:
			u.updateStats()
		case <-u.done:
			return
		}
	}
}

func (u *DBStatsUpdater) updateStats() {
	stats, err := u.provider.GetDBStats()
	if err != nil {
		u.logger.Error("failed to get database stats", "error", err)
		return
	}
	u.apply(stats)
}

func (u *DBStatsUpdater) apply(stats *sql.DBStats) {
	u.metrics.PoolOpen.Set(float64(stats.OpenConnections))
	u.metrics.PoolInUse.Set(float64(stats.InUse))
	u.metrics.PoolIdle.Set(float64(stats.Idle))
	u.metrics.PoolMaxOpen.Set(float64(stats.MaxOpenConnections))

	if d := stats.WaitCount - u.lastWaits; d > 0 {
		u.metrics.PoolWaits.Add(float64(d))
	}
	if d := stats.WaitDuration - u.lastWaitTime; d > 0 {
		u.metrics.PoolWaitTime.Add(d.Seconds())
	}
	u.lastWaits = stats.WaitCount
	u.lastWaitTime = stats.WaitDuration

	u.logger.Debug("updated database stats",
		"in_use", stats.InUse,
		"idle", stats.Idle,
		"wait_count", stats.WaitCount)
}

func DBQueriesTotal() *prometheus.CounterVec {
	return GetMetrics().Database.QueriesTotal
}

func DBQueryDuration() *prometheus.HistogramVec {
	return GetMetrics().Database.QueryDuration
}
