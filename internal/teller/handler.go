package teller

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/balcao-bank/balcao/internal/account"
	"github.com/balcao-bank/balcao/internal/client"
)

// Handler exposes the money-movement endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a teller handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type operationRequest struct {
	TaxID         string `json:"tax_id"`
	AccountNumber int64  `json:"account_number"`
	Amount        int64  `json:"amount"` // centavos
	PIN           string `json:"pin"`
}

// Deposit credits an account.
func (h *Handler) Deposit(c *fiber.Ctx) error {
	var req operationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	res, err := h.service.Deposit(c.UserContext(), OperationInput{
		TaxID:         req.TaxID,
		AccountNumber: req.AccountNumber,
		Amount:        req.Amount,
	})
	if err != nil {
		return mapDomainError(err)
	}
	return c.Status(http.StatusCreated).JSON(operationResponse(res))
}

// Withdraw debits an account after PIN verification.
func (h *Handler) Withdraw(c *fiber.Ctx) error {
	var req operationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	res, err := h.service.Withdraw(c.UserContext(), OperationInput{
		TaxID:         req.TaxID,
		AccountNumber: req.AccountNumber,
		Amount:        req.Amount,
		PIN:           req.PIN,
	})
	if err != nil {
		return mapDomainError(err)
	}
	return c.Status(http.StatusCreated).JSON(operationResponse(res))
}

// Statement renders the account movement history.
func (h *Handler) Statement(c *fiber.Ctx) error {
	number := int64(c.QueryInt("account_number"))
	res, err := h.service.Statement(c.UserContext(), c.Params("taxId"), number)
	if err != nil {
		return mapDomainError(err)
	}
	entries := make([]fiber.Map, 0, len(res.Entries))
	for _, e := range res.Entries {
		entries = append(entries, fiber.Map{
			"timestamp": e.RecordedAt,
			"kind":      e.Kind,
			"amount":    e.Amount,
			"formatted": e.String(),
		})
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"account_number": res.AccountNumber,
		"balance":        res.Balance,
		"entries":        entries,
		"lines":          res.Lines,
	})
}

func operationResponse(res OperationResult) fiber.Map {
	return fiber.Map{
		"account_number": res.AccountNumber,
		"balance":        res.Balance,
		"formatted":      account.FormatAmount(res.Balance),
		"entry_id":       res.Entry.ID,
		"kind":           res.Entry.Kind,
		"amount":         res.Entry.Amount,
		"completed_at":   res.CompletedAt,
	}
}

func mapDomainError(err error) error {
	switch {
	case errors.Is(err, account.ErrInvalidAmount):
		return fiber.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, account.ErrInsufficientFunds),
		errors.Is(err, account.ErrWithdrawalLimit),
		errors.Is(err, account.ErrDailyLimit):
		return fiber.NewError(http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, client.ErrClientNotFound), errors.Is(err, account.ErrAccountNotFound):
		return fiber.NewError(http.StatusNotFound, err.Error())
	case errors.Is(err, client.ErrNotOwner):
		return fiber.NewError(http.StatusForbidden, err.Error())
	case errors.Is(err, client.ErrInvalidPIN):
		return fiber.NewError(http.StatusUnauthorized, err.Error())
	default:
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
}
