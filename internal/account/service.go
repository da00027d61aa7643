package account

import (
	"context"
	"fmt"
)

// Service exposes account lifecycle operations.
type Service struct {
	repo   Repository
	branch string
	policy CheckingPolicy
}

// NewService builds an account service. branch and policy apply to every
// account opened through it.
func NewService(repo Repository, branch string, policy CheckingPolicy) *Service {
	return &Service{repo: repo, branch: branch, policy: policy}
}

// OpenInput captures the data required to open an account.
type OpenInput struct {
	OwnerTaxID string
	Type       Type
}

// Open creates an account for the owner and lets the store assign its
// number. Checking is the default variant.
func (s *Service) Open(ctx context.Context, input OpenInput) (*Account, error) {
	typ := input.Type
	if typ == "" {
		typ = TypeChecking
	}

	var acc *Account
	switch typ {
	case TypePlain:
		acc = New(0, s.branch, input.OwnerTaxID)
	case TypeChecking:
		acc = NewChecking(0, s.branch, input.OwnerTaxID, s.policy)
	default:
		return nil, fmt.Errorf("unknown account type %q", typ)
	}

	if err := s.repo.Create(ctx, acc); err != nil {
		return nil, err
	}
	return acc, nil
}

// Get fetches an account by number.
func (s *Service) Get(ctx context.Context, number int64) (*Account, error) {
	return s.repo.Get(ctx, number)
}

// ListByOwner returns the owner's accounts, oldest first.
func (s *Service) ListByOwner(ctx context.Context, taxID string) ([]*Account, error) {
	return s.repo.ListByOwner(ctx, taxID)
}

// Save persists state changes after a successful operation.
func (s *Service) Save(ctx context.Context, acc *Account) error {
	return s.repo.Save(ctx, acc)
}
