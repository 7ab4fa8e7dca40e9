package metrics

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// Middleware records request count, latency and in-flight gauge for every
// request passing through the fiber app.
func Middleware(rpcPath string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		m := GetMetrics().HTTP
		m.RequestsInFlight.Inc()
		defer m.RequestsInFlight.Dec()

		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		handler := GetHandlerPattern(c.Path(), rpcPath)
		m.RequestsTotal.WithLabelValues(c.Method(), handler, GetStatusClass(status)).Inc()
		m.RequestDuration.WithLabelValues(c.Method(), handler).Observe(time.Since(start).Seconds())

		return err
	}
}
