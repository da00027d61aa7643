package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/balcao-bank/balcao/internal/client"
)

// RegisterClientRoutes wires client registration and lookup endpoints.
func RegisterClientRoutes(r fiber.Router, h *client.Handler) {
	r.Post("/clients", h.Register)
	r.Get("/clients/:taxId", h.Get)
}
