package rpc

import (
	"context"
	"encoding/json"

	"github.com/initia-labs/bridgeinfo/store"
)

// Method is a supported JSON-RPC method name.
type Method string

const (
	MethodGetEconConf      Method = "get_econConf"
	MethodGetActiveChains  Method = "get_activeChains"
	MethodGetConfirmations Method = "get_confirmations"
	MethodGetBurnStatus    Method = "get_burnStatus"
)

// Methods lists every supported method.
var Methods = []Method{
	MethodGetEconConf,
	MethodGetActiveChains,
	MethodGetConfirmations,
	MethodGetBurnStatus,
}

// call runs a method against the store with already validated params.
type call func(ctx context.Context, s store.Store) (any, error)

// binder validates raw params and returns the call to run. A returned error
// is always an invalid-params error.
type binder func(params json.RawMessage) (call, error)

// Registry maps method names to their binders.
type Registry map[Method]binder

func NewRegistry() Registry {
	return Registry{
		MethodGetEconConf:      bind(parseChainIDParams, getEconConf),
		MethodGetActiveChains:  bind(parseNoParams, getActiveChains),
		MethodGetConfirmations: bind(parseChainIDParams, getConfirmations),
		MethodGetBurnStatus:    bind(parseHashParams, getBurnStatus),
	}
}

// Lookup returns the binder for name, if the method exists.
func (r Registry) Lookup(name string) (binder, bool) {
	b, ok := r[Method(name)]
	return b, ok
}

func bind[P any](
	parse func(json.RawMessage) (P, error),
	handle func(context.Context, store.Store, P) (any, error),
) binder {
	return func(raw json.RawMessage) (call, error) {
		params, err := parse(raw)
		if err != nil {
			return nil, err
		}
		return func(ctx context.Context, s store.Store) (any, error) {
			return handle(ctx, s, params)
		}, nil
	}
}
