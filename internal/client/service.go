package client

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Service manages the client lifecycle.
type Service struct {
	repo Repository
}

// NewService creates a new client service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// RegisterInput captures registration data. Values arrive already typed from
// the transport layer.
type RegisterInput struct {
	Name      string
	BirthDate time.Time
	TaxID     string
	Address   string
	PIN       string
}

// Register creates a client with a hashed PIN. The tax identifier must be
// an 11-digit string and unique across the ledger.
func (s *Service) Register(ctx context.Context, input RegisterInput) (Client, error) {
	if input.Name == "" {
		return Client{}, errors.New("name is required")
	}
	if !validTaxID(input.TaxID) {
		return Client{}, errors.New("tax identifier must be 11 digits")
	}
	if input.BirthDate.IsZero() || input.BirthDate.After(time.Now()) {
		return Client{}, errors.New("birth date must be in the past")
	}
	if len(input.PIN) < 4 {
		return Client{}, errors.New("PIN must be at least 4 digits")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.PIN), bcrypt.DefaultCost)
	if err != nil {
		return Client{}, err
	}

	client := Client{
		ID:        uuid.New().String(),
		Name:      input.Name,
		BirthDate: input.BirthDate,
		TaxID:     input.TaxID,
		Address:   input.Address,
		PINHash:   hash,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, client); err != nil {
		return Client{}, err
	}

	return client, nil
}

// FindByTaxID fetches a client by the external lookup key.
func (s *Service) FindByTaxID(ctx context.Context, taxID string) (Client, error) {
	return s.repo.FindByTaxID(ctx, taxID)
}

// VerifyPIN checks the client's PIN before a withdrawal is allowed.
func (s *Service) VerifyPIN(ctx context.Context, taxID, pin string) error {
	client, err := s.repo.FindByTaxID(ctx, taxID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword(client.PINHash, []byte(pin)); err != nil {
		return ErrInvalidPIN
	}
	return nil
}

// LinkAccount appends a freshly opened account to the client's owned list.
func (s *Service) LinkAccount(ctx context.Context, taxID string, number int64) error {
	return s.repo.LinkAccount(ctx, taxID, number)
}

func validTaxID(taxID string) bool {
	if len(taxID) != 11 {
		return false
	}
	for _, r := range taxID {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
