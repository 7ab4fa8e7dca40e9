package rpc

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/initia-labs/bridgeinfo/api/handler/common"
	"github.com/initia-labs/bridgeinfo/metrics"
	"github.com/initia-labs/bridgeinfo/ratelimit"
)

type RPCHandler struct {
	*common.BaseHandler
	pipeline *Pipeline
}

var _ common.HandlerRegistrar = (*RPCHandler)(nil)

func NewRPCHandler(base *common.BaseHandler) *RPCHandler {
	limiter := ratelimit.New(ratelimit.DefaultWindow, ratelimit.WithObserver(metrics.SetTrackedClients))
	return &RPCHandler{
		BaseHandler: base,
		pipeline:    NewPipeline(limiter, NewRegistry(), base.GetStore(), base.GetLogger(), base),
	}
}

func (h *RPCHandler) Register(router fiber.Router) {
	router.Post(h.GetConfig().GetRPCPath(), h.Serve)
}

// Serve handles POST on the RPC path
// @Summary JSON-RPC endpoint
// @Description Single JSON-RPC 2.0 request. Methods: get_econConf {chainId}, get_activeChains {},
// @Description get_confirmations {chainId}, get_burnStatus {hash}. Integers in results are 0x-prefixed hex strings.
// @Tags RPC
// @Accept json
// @Produce json
// @Param request body Request true "JSON-RPC request"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse "method not found"
// @Failure 429 {object} ErrorResponse "rate limited"
// @Failure 500 {object} ErrorResponse "parse error, invalid params or internal error"
// @Router / [post]
func (h *RPCHandler) Serve(c *fiber.Ctx) error {
	// c.IP() may alias the pooled request buffer; the limiter keeps it as a map key
	identity := utils.CopyString(c.IP())
	status, body := h.pipeline.Handle(c.UserContext(), identity, c.Body())
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(status).Send(body)
}
