package middleware

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Audit writes one structured record per money-moving request, carrying the
// caller's address and the correlation identifier from RequestID. It is
// mounted on the operations group only; the access log covers the rest.
func Audit(logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		attrs := []any{
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.String("ip", c.IP()),
			slog.Int("status", c.Response().StatusCode()),
			slog.Duration("duration", time.Since(start)),
		}
		if id, ok := c.Locals(requestIDHeader).(string); ok && id != "" {
			attrs = append(attrs, slog.String("request_id", id))
		}

		if err != nil {
			attrs = append(attrs, slog.Any("error", err))
			logger.Error("operation audited", attrs...)
			return err
		}

		logger.Info("operation audited", attrs...)
		return nil
	}
}
