package routes

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/balcao-bank/balcao/internal/account"
	"github.com/balcao-bank/balcao/internal/client"
)

// RegisterAccountRoutes wires account endpoints. Opening an account checks
// the owner exists first and links the assigned number back to the client.
func RegisterAccountRoutes(r fiber.Router, h *account.Handler, clients *client.Service, accounts *account.Service, logger *slog.Logger) {
	r.Post("/accounts", func(c *fiber.Ctx) error {
		var req struct {
			TaxID string `json:"tax_id"`
			Kind  string `json:"kind"` // "checking" (default) or "plain"
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(http.StatusBadRequest, err.Error())
		}

		owner, err := clients.FindByTaxID(c.UserContext(), req.TaxID)
		if err != nil {
			if errors.Is(err, client.ErrClientNotFound) {
				return fiber.NewError(http.StatusNotFound, "client not found, register the client first")
			}
			return fiber.NewError(http.StatusInternalServerError, err.Error())
		}

		acc, err := accounts.Open(c.UserContext(), account.OpenInput{
			OwnerTaxID: owner.TaxID,
			Type:       account.Type(req.Kind),
		})
		if err != nil {
			return fiber.NewError(http.StatusBadRequest, err.Error())
		}

		if err := clients.LinkAccount(c.UserContext(), owner.TaxID, acc.Number); err != nil {
			return fiber.NewError(http.StatusInternalServerError, err.Error())
		}

		if logger != nil {
			logger.Info("account opened",
				slog.Int64("account_number", acc.Number),
				slog.String("branch", acc.Branch),
				slog.String("owner_tax_id", owner.TaxID),
				slog.String("type", string(acc.Type)),
			)
		}

		return c.Status(http.StatusCreated).JSON(fiber.Map{
			"account_number": acc.Number,
			"branch":         acc.Branch,
			"owner_tax_id":   owner.TaxID,
			"type":           acc.Type,
		})
	})

	r.Get("/accounts/:number/balance", h.Balance)
}
