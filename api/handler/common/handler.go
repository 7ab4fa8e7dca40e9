package common

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/initia-labs/bridgeinfo/config"
	"github.com/initia-labs/bridgeinfo/metrics"
	"github.com/initia-labs/bridgeinfo/store"
)

type HandlerRegistrar interface {
	Register(router fiber.Router)
}

type BaseHandler struct {
	store  store.Store
	cfg    *config.Config
	logger *slog.Logger
}

func NewBaseHandler(s store.Store, cfg *config.Config, logger *slog.Logger) *BaseHandler {
	return &BaseHandler{
		store:  s,
		cfg:    cfg,
		logger: logger,
	}
}

func (h *BaseHandler) GetStore() store.Store     { return h.store }
func (h *BaseHandler) GetConfig() *config.Config { return h.cfg }
func (h *BaseHandler) GetLogger() *slog.Logger   { return h.logger }

// TrackError tracks errors in handlers
func (h *BaseHandler) TrackError(errorType string) {
	metrics.TrackError("api", errorType)
}
