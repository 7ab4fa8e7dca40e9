package sentry_integration

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/initia-labs/bridgeinfo/config"
)

// Init configures the global hub. It reports false when no DSN is set, in
// which case captures are no-ops.
func Init(cfg *config.Config) (bool, error) {
	sentryCfg := cfg.GetSentryConfig()
	if sentryCfg == nil {
		return false, nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              sentryCfg.DSN,
		SampleRate:       sentryCfg.SampleRate,
		TracesSampleRate: sentryCfg.TracesSampleRate,
		EnableTracing:    sentryCfg.TracesSampleRate > 0,
		Environment:      sentryCfg.Environment,
		Release:          config.Version,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// Flush waits up to timeout for buffered events to be sent.
func Flush(timeout time.Duration) {
	sentry.Flush(timeout)
}

func CaptureCurrentHubException(err error, level sentry.Level) {
	CaptureException(sentry.CurrentHub(), err, level)
}

func CaptureException(hub *sentry.Hub, err error, level sentry.Level) {
	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetLevel(level)
		hub.CaptureException(err)
	})
}

// CaptureExceptionWithTags attaches tags to the scope before capturing.
func CaptureExceptionWithTags(err error, level sentry.Level, tags map[string]string) {
	hub := sentry.CurrentHub()
	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetLevel(level)
		scope.SetTags(tags)
		hub.CaptureException(err)
	})
}

func StartSentrySpan(ctx context.Context, operation, description string) (*sentry.Span, context.Context) {
	span := sentry.StartSpan(ctx, operation)
	span.Description = description
	return span, span.Context()
}
