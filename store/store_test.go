package store

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/initia-labs/bridgeinfo/cache"
	"github.com/initia-labs/bridgeinfo/config"
	"github.com/initia-labs/bridgeinfo/metrics"
	"github.com/initia-labs/bridgeinfo/orm/testutil"
	"github.com/initia-labs/bridgeinfo/types"
)

const selectEntryQuery = `SELECT \* FROM "kv_entry" WHERE key = \$1 LIMIT \$2`

func TestKey(t *testing.T) {
	require.Equal(t, NamespaceEconConf, EconConfKey("1").Namespace())
	require.Equal(t, NamespaceChains, ChainsKey().Namespace())
	require.Equal(t, NamespaceConfirmations, ConfirmationsKey("1").Namespace())
	require.Equal(t, NamespaceStatus, StatusKey("0xabc").Namespace())
	require.Equal(t, "", Key{}.Namespace())

	require.NotEqual(t, EconConfKey("1").String(), ConfirmationsKey("1").String())
	require.NotEqual(t, Key{"a:b", "c"}.String(), Key{"a", "b:c"}.String())
}

func TestMemory_Get(t *testing.T) {
	mem := NewMemory()
	require.NoError(t, mem.PutValue(StatusKey("0xabc"), "confirmed"))

	value, found, err := mem.Get(context.Background(), StatusKey("0xabc"))
	require.NoError(t, err)
	require.True(t, found)
	require.JSONEq(t, `"confirmed"`, string(value))

	value, found, err = mem.Get(context.Background(), StatusKey("0xdef"))
	require.NoError(t, err)
	require.False(t, found)
	require.Nil(t, value)
}

func TestLoadFixture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.yaml")
	content := `entries:
  - key: [econConf, "1"]
    value:
      gasLimitMultiplier: [11, 10]
      gasPriceMultiplier: [1, 1]
      baseFee: "123456789012345678901234567890"
  - key: [chains]
    value: [1, 10, 8453]
  - key: [status, "0xabc"]
    value: confirmed
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	mem, err := LoadFixture(path)
	require.NoError(t, err)
	require.Equal(t, 3, mem.Len())

	value, found, err := mem.Get(context.Background(), EconConfKey("1"))
	require.NoError(t, err)
	require.True(t, found)

	var conf types.EconConf
	require.NoError(t, json.Unmarshal(value, &conf))
	require.NoError(t, conf.Validate())
	require.Equal(t, "0x18ee90ff6c373e0ee4e3f0ad2", conf.BaseFee.Hex())

	value, found, err = mem.Get(context.Background(), ChainsKey())
	require.NoError(t, err)
	require.True(t, found)
	require.JSONEq(t, `[1, 10, 8453]`, string(value))
}

func TestLoadFixture_Errors(t *testing.T) {
	_, err := LoadFixture(filepath.Join(t.TempDir(), "missing.yaml"))
	require.True(t, types.IsErrorType(err, types.ErrTypeConfig))

	path := filepath.Join(t.TempDir(), "fixture.yaml")
	require.NoError(t, os.WriteFile(path, []byte("entries:\n  - value: 1\n"), 0o600))
	_, err = LoadFixture(path)
	require.True(t, types.IsErrorType(err, types.ErrTypeValidation))

	mem, err := LoadFixture("")
	require.NoError(t, err)
	require.Equal(t, 0, mem.Len())
}

func TestPostgres_Get(t *testing.T) {
	db, mock, err := testutil.NewMockDB()
	require.NoError(t, err)

	mock.ExpectQuery(selectEntryQuery).
		WithArgs(sqlmock.AnyArg(), 1).
		WillReturnRows(sqlmock.NewRows([]string{"key", "value", "updated_at"}).
			AddRow("{status,0xabc}", []byte(`"confirmed"`), time.Now()))

	s := NewPostgres(db, 2)
	value, found, err := s.Get(context.Background(), StatusKey("0xabc"))
	require.NoError(t, err)
	require.True(t, found)
	require.JSONEq(t, `"confirmed"`, string(value))
	require.Equal(t, float64(1), storeHealth())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_Absent(t *testing.T) {
	db, mock, err := testutil.NewMockDB()
	require.NoError(t, err)

	mock.ExpectQuery(selectEntryQuery).
		WithArgs(sqlmock.AnyArg(), 1).
		WillReturnRows(sqlmock.NewRows([]string{"key", "value", "updated_at"}))

	s := NewPostgres(db, 2)
	value, found, err := s.Get(context.Background(), ChainsKey())
	require.NoError(t, err)
	require.False(t, found)
	require.Nil(t, value)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_Error(t *testing.T) {
	db, mock, err := testutil.NewMockDB()
	require.NoError(t, err)

	mock.ExpectQuery(selectEntryQuery).
		WithArgs(sqlmock.AnyArg(), 1).
		WillReturnError(errors.New("connection reset"))

	s := NewPostgres(db, 2)
	_, found, err := s.Get(context.Background(), EconConfKey("1"))
	require.Error(t, err)
	require.False(t, found)
	require.True(t, types.IsErrorType(err, types.ErrTypeDatabase))
	require.Equal(t, float64(0), storeHealth())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_CancelledWhileWaiting(t *testing.T) {
	db, _, err := testutil.NewMockDB()
	require.NoError(t, err)

	s := NewPostgres(db, 1)
	require.True(t, s.sem.TryAcquire(1))
	defer s.sem.Release(1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err = s.Get(ctx, ChainsKey())
	require.True(t, types.IsErrorType(err, types.ErrTypeInternal))
}

type countingStore struct {
	calls int
	inner Store
}

func (c *countingStore) Get(ctx context.Context, key Key) (json.RawMessage, bool, error) {
	c.calls++
	return c.inner.Get(ctx, key)
}

func TestCached_Get(t *testing.T) {
	mem := NewMemory()
	mem.Put(StatusKey("0xabc"), json.RawMessage(`"pending"`))
	backend := &countingStore{inner: mem}

	s := NewCached(backend, cache.New[string, json.RawMessage](10))

	for range 3 {
		value, found, err := s.Get(context.Background(), StatusKey("0xabc"))
		require.NoError(t, err)
		require.True(t, found)
		require.JSONEq(t, `"pending"`, string(value))
	}
	require.Equal(t, 1, backend.calls)

	// absent keys are not cached
	for range 2 {
		_, found, err := s.Get(context.Background(), StatusKey("0xdef"))
		require.NoError(t, err)
		require.False(t, found)
	}
	require.Equal(t, 3, backend.calls)
}

func TestNew(t *testing.T) {
	cfg := &config.Config{}
	cfg.SetStoreConfig(&config.StoreConfig{Backend: config.StoreBackendMemory, CacheSize: 10})

	s, err := New(cfg, nil, testLogger())
	require.NoError(t, err)
	require.IsType(t, &Cached{}, s)

	cfg.SetStoreConfig(&config.StoreConfig{Backend: config.StoreBackendMemory})
	s, err = New(cfg, nil, testLogger())
	require.NoError(t, err)
	require.IsType(t, &Memory{}, s)

	cfg.SetStoreConfig(&config.StoreConfig{Backend: config.StoreBackendPostgres})
	_, err = New(cfg, nil, testLogger())
	require.True(t, types.IsErrorType(err, types.ErrTypeConfig))

	cfg.SetStoreConfig(&config.StoreConfig{Backend: "redis"})
	_, err = New(cfg, nil, testLogger())
	require.True(t, types.IsErrorType(err, types.ErrTypeInvalidValue))
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func storeHealth() float64 {
	return promtestutil.ToFloat64(metrics.GetMetrics().Error.ComponentHealth.WithLabelValues("store"))
}
