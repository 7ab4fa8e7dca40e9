package rpc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/initia-labs/bridgeinfo/store"
	"github.com/initia-labs/bridgeinfo/types"
)

// Each handler performs one store read. A missing key yields a nil result,
// which is served as "result": null.

func getEconConf(ctx context.Context, s store.Store, p ChainIDParams) (any, error) {
	return readEconConf(ctx, s, store.EconConfKey(p.ChainID))
}

func getConfirmations(ctx context.Context, s store.Store, p ChainIDParams) (any, error) {
	return readEconConf(ctx, s, store.ConfirmationsKey(p.ChainID))
}

func getActiveChains(ctx context.Context, s store.Store, _ NoParams) (any, error) {
	raw, found, err := s.Get(ctx, store.ChainsKey())
	if err != nil || !found {
		return nil, err
	}

	var chains []uint64
	if err := json.Unmarshal(raw, &chains); err != nil {
		return nil, types.NewInternalError("stored chain list is malformed", err)
	}
	return chains, nil
}

func getBurnStatus(ctx context.Context, s store.Store, p HashParams) (any, error) {
	raw, found, err := s.Get(ctx, store.StatusKey(p.Hash))
	if err != nil || !found {
		return nil, err
	}
	if !json.Valid(raw) {
		return nil, types.NewInternalError(fmt.Sprintf("stored status for %s is not valid JSON", p.Hash), nil)
	}
	return raw, nil
}

func readEconConf(ctx context.Context, s store.Store, key store.Key) (any, error) {
	raw, found, err := s.Get(ctx, key)
	if err != nil || !found {
		return nil, err
	}

	var conf types.EconConf
	if err := json.Unmarshal(raw, &conf); err != nil {
		return nil, types.NewInternalError(fmt.Sprintf("stored %s entry is malformed", key.Namespace()), err)
	}
	if err := conf.Validate(); err != nil {
		return nil, types.NewInternalError(fmt.Sprintf("stored %s entry is incomplete", key.Namespace()), err)
	}
	return &conf, nil
}
