package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/initia-labs/bridgeinfo/jsonrpc"
	"github.com/initia-labs/bridgeinfo/metrics"
	"github.com/initia-labs/bridgeinfo/ratelimit"
	"github.com/initia-labs/bridgeinfo/sentry_integration"
	"github.com/initia-labs/bridgeinfo/store"
)

// Pipeline processes one JSON-RPC request body end to end:
// rate limit, envelope, method lookup, params, handler, response.
type Pipeline struct {
	limiter  *ratelimit.Limiter
	registry Registry
	store    store.Store
	logger   *slog.Logger
	errors   ErrorTracker
}

// ErrorTracker counts internal failures; common.BaseHandler implements it.
type ErrorTracker interface {
	TrackError(errorType string)
}

func NewPipeline(limiter *ratelimit.Limiter, registry Registry, s store.Store, logger *slog.Logger, errs ErrorTracker) *Pipeline {
	return &Pipeline{
		limiter:  limiter,
		registry: registry,
		store:    s,
		logger:   logger.With("component", "rpc"),
		errors:   errs,
	}
}

// Handle returns the HTTP status and body for a request from identity.
func (p *Pipeline) Handle(ctx context.Context, identity string, body []byte) (int, []byte) {
	start := time.Now()

	if !p.limiter.Admit(identity) {
		metrics.RateLimited()
		return p.fail(jsonrpc.NewRateLimitedError(), nil, "", start)
	}

	req, err := jsonrpc.ParseRequest(body)
	if err != nil {
		return p.fail(asRPCError(err), nil, "", start)
	}

	bindParams, ok := p.registry.Lookup(req.Method)
	if !ok {
		return p.fail(jsonrpc.NewMethodNotFoundError(req.Method), req.ID, "", start)
	}

	run, err := bindParams(req.Params)
	if err != nil {
		return p.fail(asRPCError(err), req.ID, req.Method, start)
	}

	result, err := run(ctx, p.store)
	if err != nil {
		p.reportInternal(req.Method, err)
		return p.fail(jsonrpc.NewInternalError(), req.ID, req.Method, start)
	}

	resp, err := jsonrpc.Success(req.ID, result)
	if err != nil {
		p.reportInternal(req.Method, err)
		return p.fail(jsonrpc.NewInternalError(), req.ID, req.Method, start)
	}

	metrics.ObserveRPC(req.Method, 0, time.Since(start).Seconds())
	return http.StatusOK, resp
}

func (p *Pipeline) fail(rpcErr *jsonrpc.Error, id json.RawMessage, method string, start time.Time) (int, []byte) {
	metrics.ObserveRPC(method, rpcErr.Code, time.Since(start).Seconds())
	return jsonrpc.StatusOf(rpcErr), jsonrpc.Failure(rpcErr, id)
}

func (p *Pipeline) reportInternal(method string, err error) {
	p.logger.Error("rpc request failed", slog.String("method", method), slog.Any("error", err))
	p.errors.TrackError("internal")
	sentry_integration.CaptureExceptionWithTags(err, sentry.LevelError, map[string]string{"method": method})
}

func asRPCError(err error) *jsonrpc.Error {
	var rpcErr *jsonrpc.Error
	if errors.As(err, &rpcErr) {
		return rpcErr
	}
	return jsonrpc.NewInternalError()
}
