package status

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/initia-labs/bridgeinfo/api/handler/common"
	"github.com/initia-labs/bridgeinfo/config"
	"github.com/initia-labs/bridgeinfo/store"
)

func setup(t *testing.T) (*StatusHandler, *config.Config) {
	t.Helper()
	cfg := &config.Config{}
	cfg.SetStoreConfig(&config.StoreConfig{Backend: config.StoreBackendMemory})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	base := common.NewBaseHandler(store.NewMemory(), cfg, logger)
	return NewStatusHandler(base), cfg
}

func TestGetStatus(t *testing.T) {
	h, _ := setup(t)

	config.SetBuildInfo("1.4", "abc123")
	defer config.SetBuildInfo("dev", "unknown")

	app := fiber.New()
	h.Register(app)

	req, _ := http.NewRequest(http.MethodGet, "/status", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body StatusResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "v1.4.0", body.Version)
	require.Equal(t, "abc123", body.CommitHash)
	require.Equal(t, config.StoreBackendMemory, body.StoreBackend)
}

func TestNormalizeVersion(t *testing.T) {
	tests := map[string]string{
		"1.2.3":       "v1.2.3",
		"v1.2":        "v1.2.0",
		"v1.0.0-rc.1": "v1.0.0-rc.1",
		"dev":         "dev",
		"":            "",
	}
	for in, want := range tests {
		require.Equal(t, want, NormalizeVersion(in), in)
	}
}
