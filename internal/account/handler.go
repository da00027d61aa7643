package account

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes account HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds an account HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Balance returns the account balance.
func (h *Handler) Balance(c *fiber.Ctx) error {
	number, err := c.ParamsInt("number")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid account number")
	}
	acc, err := h.service.Get(c.UserContext(), int64(number))
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return fiber.NewError(http.StatusNotFound, err.Error())
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	balance := acc.Balance()
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"account_number": acc.Number,
		"branch":         acc.Branch,
		"balance":        balance,
		"formatted":      FormatAmount(balance),
		"timestamp":      time.Now().UTC(),
	})
}
