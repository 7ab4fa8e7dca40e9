package sentry_integration

import (
	"context"
	"errors"
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/require"

	"github.com/initia-labs/bridgeinfo/config"
)

func TestInit_DisabledWithoutDSN(t *testing.T) {
	enabled, err := Init(&config.Config{})
	require.NoError(t, err)
	require.False(t, enabled)
}

func TestCaptureWithoutClient(t *testing.T) {
	require.NotPanics(t, func() {
		CaptureCurrentHubException(errors.New("boom"), sentry.LevelFatal)
		CaptureExceptionWithTags(errors.New("boom"), sentry.LevelError, map[string]string{"method": "get_econConf"})
	})
}

func TestStartSentrySpan(t *testing.T) {
	span, ctx := StartSentrySpan(context.Background(), "db.query", "read kv_entry status")
	defer span.Finish()

	require.Equal(t, "db.query", span.Op)
	require.Equal(t, "read kv_entry status", span.Description)
	require.Same(t, span, sentry.SpanFromContext(ctx))
}
