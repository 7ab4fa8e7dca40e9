package api

import (
	"fmt"
	"html/template"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"

	"github.com/initia-labs/bridgeinfo/api/docs"
	"github.com/initia-labs/bridgeinfo/api/handler"
	"github.com/initia-labs/bridgeinfo/config"
	"github.com/initia-labs/bridgeinfo/metrics"
	"github.com/initia-labs/bridgeinfo/store"
)

type Api struct {
	cfg    *config.Config
	logger *slog.Logger
	app    *fiber.App
}

// @title Bridge Info API
// @version 1.0
// @description JSON-RPC endpoint serving bridge economics, active chains and burn status
// @BasePath /

// @tag.name RPC
// @tag.description JSON-RPC 2.0 methods

// @tag.name App
// @tag.description Service health and status
func New(cfg *config.Config, logger *slog.Logger, s store.Store) *Api {
	app := fiber.New(fiber.Config{
		AppName:               "Bridge Info API",
		DisableStartupMessage: true,
		ProxyHeader:           cfg.GetProxyHeader(),
		BodyLimit:             cfg.GetBodyLimit(),
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	if mc := cfg.GetMetricsConfig(); mc != nil && mc.Enabled {
		app.Use(metrics.Middleware(cfg.GetRPCPath()))
	}

	app.Get("/health", health)

	swaggerConfig := swagger.Config{
		URL:         "/swagger/doc.json",
		DeepLinking: true,
		TagsSorter: template.JS(`function(a, b) {
			const order = ["RPC", "App"];
			return order.indexOf(a) - order.indexOf(b);
		}`),
	}
	app.Get("/swagger/*", swagger.New(swaggerConfig))

	handler.Register(app, s, cfg, logger)

	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%s", cfg.GetListenPort())
	docs.SwaggerInfo.BasePath = "/"

	return &Api{
		cfg:    cfg,
		logger: logger,
		app:    app,
	}
}

// App exposes the underlying fiber app, mainly for tests.
func (a *Api) App() *fiber.App {
	return a.app
}

func (a *Api) Start() error {
	port := a.cfg.GetListenPort()
	a.logger.Info("starting API server",
		slog.String("addr", fmt.Sprintf("http://localhost:%s", port)),
		slog.String("rpc_path", a.cfg.GetRPCPath()))

	return a.app.Listen(":" + port)
}

func (a *Api) Shutdown() error {
	return a.app.Shutdown()
}

// health handles GET /health
// @Summary Health check
// @Tags App
// @Success 200 "OK"
// @Router /health [get]
func health(c *fiber.Ctx) error {
	return c.SendString("OK")
}
