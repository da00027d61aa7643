package client

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes client HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds a client HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type registerRequest struct {
	Name      string `json:"name"`
	BirthDate string `json:"birth_date"` // YYYY-MM-DD
	TaxID     string `json:"tax_id"`
	Address   string `json:"address"`
	PIN       string `json:"pin"`
}

type clientResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	BirthDate      string  `json:"birth_date"`
	TaxID          string  `json:"tax_id"`
	Address        string  `json:"address"`
	AccountNumbers []int64 `json:"account_numbers"`
}

// Register creates a new client.
func (h *Handler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "birth_date must be YYYY-MM-DD")
	}
	client, err := h.service.Register(c.UserContext(), RegisterInput{
		Name:      req.Name,
		BirthDate: birthDate,
		TaxID:     req.TaxID,
		Address:   req.Address,
		PIN:       req.PIN,
	})
	if err != nil {
		if errors.Is(err, ErrTaxIDTaken) {
			return fiber.NewError(http.StatusConflict, err.Error())
		}
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	return c.Status(http.StatusCreated).JSON(toResponse(client))
}

// Get returns a client profile with its owned account numbers.
func (h *Handler) Get(c *fiber.Ctx) error {
	client, err := h.service.FindByTaxID(c.UserContext(), c.Params("taxId"))
	if err != nil {
		if errors.Is(err, ErrClientNotFound) {
			return fiber.NewError(http.StatusNotFound, err.Error())
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(toResponse(client))
}

func toResponse(client Client) clientResponse {
	accounts := client.AccountNumbers
	if accounts == nil {
		accounts = []int64{}
	}
	return clientResponse{
		ID:             client.ID,
		Name:           client.Name,
		BirthDate:      client.BirthDate.Format("2006-01-02"),
		TaxID:          client.TaxID,
		Address:        client.Address,
		AccountNumbers: accounts,
	}
}
