package metrics

import (
	"database/sql"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestGetStatusClass(t *testing.T) {
	require.Equal(t, "2xx", GetStatusClass(200))
	require.Equal(t, "4xx", GetStatusClass(429))
	require.Equal(t, "5xx", GetStatusClass(500))
	require.Equal(t, "other", GetStatusClass(101))
}

func TestGetHandlerPattern(t *testing.T) {
	require.Equal(t, "rpc", GetHandlerPattern("/", "/"))
	require.Equal(t, "rpc", GetHandlerPattern("/rpc", "/rpc"))
	require.Equal(t, "health", GetHandlerPattern("/health", "/"))
	require.Equal(t, "swagger", GetHandlerPattern("/swagger/index.html", "/"))
	require.Equal(t, "other", GetHandlerPattern("/nope", "/rpc"))
}

func TestMethodTracker_P99(t *testing.T) {
	mt := newMethodTracker()
	now := time.Now()
	for i := 1; i <= 100; i++ {
		mt.record("get_econConf", float64(i), now)
	}
	mt.record("get_burnStatus", 1, now.Add(-time.Hour))

	p99s := mt.p99s(now.Add(-time.Minute))
	require.Equal(t, float64(100), p99s["get_econConf"])
	_, stale := p99s["get_burnStatus"]
	require.False(t, stale)
}

func TestMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(Middleware("/"))
	app.Post("/", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusTooManyRequests).SendString("slow down")
	})

	before := testutil.ToFloat64(GetMetrics().HTTP.RequestsTotal.WithLabelValues("POST", "rpc", "4xx"))

	req, _ := http.NewRequest(http.MethodPost, "/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)

	after := testutil.ToFloat64(GetMetrics().HTTP.RequestsTotal.WithLabelValues("POST", "rpc", "4xx"))
	require.Equal(t, before+1, after)
}

func TestSetComponentHealth(t *testing.T) {
	SetComponentHealth("store", false)
	require.Equal(t, float64(0), testutil.ToFloat64(GetMetrics().Error.ComponentHealth.WithLabelValues("store")))

	SetComponentHealth("store", true)
	require.Equal(t, float64(1), testutil.ToFloat64(GetMetrics().Error.ComponentHealth.WithLabelValues("store")))
}

func TestRecoverFromPanic(t *testing.T) {
	panics := GetMetrics().Error.PanicsTotal.WithLabelValues("worker")
	errs := GetMetrics().Error.ErrorsTotal.WithLabelValues("worker", "panic")
	panicsBefore := testutil.ToFloat64(panics)
	errsBefore := testutil.ToFloat64(errs)

	var recovered any
	func() {
		defer func() { recovered = recover() }()
		panicking()
	}()
	require.IsType(t, "", recovered)
	require.Contains(t, recovered, "recovered panic in worker.")
	require.Contains(t, recovered, ": boom")
	require.Equal(t, panicsBefore+1, testutil.ToFloat64(panics))
	require.Equal(t, errsBefore+1, testutil.ToFloat64(errs))

	require.NotPanics(t, func() {
		defer RecoverFromPanic("worker")
	})
	require.Equal(t, panicsBefore+1, testutil.ToFloat64(panics))
}

func panicking() {
	defer RecoverFromPanic("worker")
	panic("boom")
}

type stubDBStats struct {
	stats sql.DBStats
}

func (s *stubDBStats) GetDBStats() (*sql.DBStats, error) {
	stats := s.stats
	return &stats, nil
}

func TestDBStatsUpdater_AddsOnlyGrowth(t *testing.T) {
	m := NewDatabaseMetrics()
	provider := &stubDBStats{stats: sql.DBStats{MaxOpenConnections: 10, InUse: 2, Idle: 3, WaitCount: 4, WaitDuration: 2 * time.Second}}
	u := NewDBStatsUpdater(provider, slog.New(slog.NewTextHandler(io.Discard, nil)), m)
	defer u.ticker.Stop()

	u.updateStats()
	u.updateStats()
	require.Equal(t, float64(4), testutil.ToFloat64(m.PoolWaits))
	require.Equal(t, float64(2), testutil.ToFloat64(m.PoolWaitTime))
	require.Equal(t, float64(2), testutil.ToFloat64(m.PoolInUse))
	require.Equal(t, float64(10), testutil.ToFloat64(m.PoolMaxOpen))

	provider.stats.WaitCount = 7
	provider.stats.WaitDuration = 3 * time.Second
	u.updateStats()
	require.Equal(t, float64(7), testutil.ToFloat64(m.PoolWaits))
	require.Equal(t, float64(3), testutil.ToFloat64(m.PoolWaitTime))
}
