package status

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/mod/semver"

	"github.com/initia-labs/bridgeinfo/config"
)

// status handles GET /status
// @Summary Status check
// @Description Get build version and the configured store backend
// @Tags App
// @Accept json
// @Produce json
// @Success 200 {object} StatusResponse
// @Router /status [get]
func (h *StatusHandler) GetStatus(c *fiber.Ctx) error {
	return c.JSON(StatusResponse{
		Version:      NormalizeVersion(config.Version),
		CommitHash:   config.CommitHash,
		StoreBackend: h.GetConfig().GetStoreBackend(),
	})
}

// NormalizeVersion returns the canonical semver form ("1.2" -> "v1.2.0").
// Non-semver versions such as "dev" are returned unchanged.
func NormalizeVersion(v string) string {
	candidate := v
	if !strings.HasPrefix(candidate, "v") {
		candidate = "v" + candidate
	}
	if !semver.IsValid(candidate) {
		return v
	}
	return semver.Canonical(candidate)
}
