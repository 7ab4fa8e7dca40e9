package store

import (
	"encoding/json"
	"log/slog"

	"github.com/initia-labs/bridgeinfo/cache"
	"github.com/initia-labs/bridgeinfo/config"
	"github.com/initia-labs/bridgeinfo/orm"
	"github.com/initia-labs/bridgeinfo/types"
)

// New builds the configured backend and wraps it with the read-through cache.
// db is only used by the postgres backend and may be nil otherwise.
func New(cfg *config.Config, db *orm.Database, logger *slog.Logger) (Store, error) {
	storeCfg := cfg.GetStoreConfig()
	logger = logger.With("component", "store")

	var backend Store
	switch storeCfg.Backend {
	case config.StoreBackendPostgres:
		if db == nil {
			return nil, types.NewConfigError("postgres store backend requires a database", nil)
		}
		backend = NewPostgres(db, storeCfg.MaxConcurrentReads)
	case config.StoreBackendMemory:
		mem, err := LoadFixture(storeCfg.FixturePath)
		if err != nil {
			return nil, err
		}
		logger.Info("loaded store fixture", slog.String("path", storeCfg.FixturePath), slog.Int("entries", mem.Len()))
		backend = mem
	default:
		return nil, types.NewInvalidValueError("STORE_BACKEND", storeCfg.Backend, "unsupported store backend")
	}

	if storeCfg.CacheSize <= 0 {
		return backend, nil
	}

	var c cache.Cacher[string, json.RawMessage]
	if storeCfg.CacheTTL > 0 {
		c = cache.NewTTL[string, json.RawMessage](storeCfg.CacheSize, storeCfg.CacheTTL)
	} else {
		c = cache.New[string, json.RawMessage](storeCfg.CacheSize)
	}
	logger.Info("store cache enabled", slog.Int("size", storeCfg.CacheSize), slog.Duration("ttl", storeCfg.CacheTTL))

	return NewCached(backend, c), nil
}
