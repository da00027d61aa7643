package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// RequestID tags each request with a correlation identifier so the access
// and audit logs for one teller operation can be tied together. A client
// supplied identifier is kept, everything else gets a fresh UUID, and the
// identifier is echoed back on the response.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Locals(requestIDHeader, id)
		c.Set(requestIDHeader, id)

		return c.Next()
	}
}
