package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/balcao-bank/balcao/internal/teller"
)

// RegisterOperationRoutes wires the money-movement endpoints. Withdrawals
// sit behind the PIN attempt rate limiter.
func RegisterOperationRoutes(r fiber.Router, h *teller.Handler, withdrawLimiter fiber.Handler) {
	r.Post("/operations/deposits", h.Deposit)
	r.Post("/operations/withdrawals", withdrawLimiter, h.Withdraw)
	r.Get("/operations/statement/:taxId", h.Statement)
}
