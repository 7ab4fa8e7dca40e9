package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"golang.org/x/sync/semaphore"
	"gorm.io/gorm"

	"github.com/initia-labs/bridgeinfo/metrics"
	"github.com/initia-labs/bridgeinfo/orm"
	"github.com/initia-labs/bridgeinfo/sentry_integration"
	"github.com/initia-labs/bridgeinfo/types"
)

const BackendPostgres = "postgres"

// Postgres reads entries from the kv_entry table. Concurrent reads are capped
// by a weighted semaphore; callers block until a slot frees up.
type Postgres struct {
	db  *orm.Database
	sem *semaphore.Weighted
}

var _ Store = (*Postgres)(nil)

func NewPostgres(db *orm.Database, maxConcurrentReads int) *Postgres {
	if maxConcurrentReads < 1 {
		maxConcurrentReads = 1
	}
	return &Postgres{
		db:  db,
		sem: semaphore.NewWeighted(int64(maxConcurrentReads)),
	}
}

func (p *Postgres) Get(ctx context.Context, key Key) (value json.RawMessage, found bool, err error) {
	start := time.Now()
	defer func() { observeRead(BackendPostgres, key, found, err, start) }()

	waitStart := time.Now()
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return nil, false, types.NewInternalError("store read cancelled", err)
	}
	metrics.StoreSemaphoreWaitDuration().Observe(time.Since(waitStart).Seconds())
	metrics.StoreConcurrentReads().Inc()
	defer func() {
		metrics.StoreConcurrentReads().Dec()
		p.sem.Release(1)
	}()

	span, ctx := sentry_integration.StartSentrySpan(ctx, "db.query", "read kv_entry "+key.Namespace())
	defer span.Finish()

	var entry types.StoredEntry
	res := p.db.WithContext(ctx).
		Where("key = ?", pq.StringArray(key)).
		Take(&entry)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, classifyError(res.Error)
	}

	return entry.Value, true, nil
}

func classifyError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return types.NewDatabaseError(fmt.Sprintf("read kv_entry (sqlstate %s)", pgErr.Code), err)
	}
	return types.NewDatabaseError("read kv_entry", err)
}
