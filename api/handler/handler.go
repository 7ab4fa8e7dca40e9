package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/initia-labs/bridgeinfo/api/handler/common"
	"github.com/initia-labs/bridgeinfo/api/handler/rpc"
	"github.com/initia-labs/bridgeinfo/api/handler/status"
	"github.com/initia-labs/bridgeinfo/config"
	"github.com/initia-labs/bridgeinfo/store"
)

func Register(router fiber.Router, s store.Store, cfg *config.Config, logger *slog.Logger) {
	base := common.NewBaseHandler(s, cfg, logger)
	handlers := []common.HandlerRegistrar{
		status.NewStatusHandler(base),
		rpc.NewRPCHandler(base),
	}

	for _, handler := range handlers {
		handler.Register(router)
	}
}
