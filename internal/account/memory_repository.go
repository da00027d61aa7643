package account

import (
	"context"
	"sort"
	"sync"
)

type memoryRepository struct {
	mu       sync.RWMutex
	accounts map[int64]*Account
	next     int64
}

// NewMemoryRepository constructs the in-memory account store, the default
// backend for the running session.
func NewMemoryRepository() Repository {
	return &memoryRepository{accounts: make(map[int64]*Account)}
}

func (r *memoryRepository) Create(_ context.Context, acc *Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	acc.Number = r.next
	r.accounts[acc.Number] = acc
	return nil
}

func (r *memoryRepository) Get(_ context.Context, number int64) (*Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	acc, ok := r.accounts[number]
	if !ok {
		return nil, ErrAccountNotFound
	}
	return acc, nil
}

func (r *memoryRepository) ListByOwner(_ context.Context, taxID string) ([]*Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var accounts []*Account
	for _, acc := range r.accounts {
		if acc.OwnerTaxID == taxID {
			accounts = append(accounts, acc)
		}
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].Number < accounts[j].Number })
	return accounts, nil
}

func (r *memoryRepository) Save(_ context.Context, acc *Account) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if _, ok := r.accounts[acc.Number]; !ok {
		return ErrAccountNotFound
	}
	// Accounts are held live; mutations are already visible.
	return nil
}
