package client

import (
	"context"
	"sync"
)

type memoryRepository struct {
	mu      sync.RWMutex
	clients map[string]Client
}

// NewMemoryRepository builds the in-memory client store, the default backend
// for the running session.
func NewMemoryRepository() Repository {
	return &memoryRepository{clients: make(map[string]Client)}
}

func (r *memoryRepository) Create(_ context.Context, client Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.clients[client.TaxID]; exists {
		return ErrTaxIDTaken
	}
	r.clients[client.TaxID] = client
	return nil
}

func (r *memoryRepository) FindByTaxID(_ context.Context, taxID string) (Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	client, ok := r.clients[taxID]
	if !ok {
		return Client{}, ErrClientNotFound
	}
	return client, nil
}

func (r *memoryRepository) LinkAccount(_ context.Context, taxID string, number int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	client, ok := r.clients[taxID]
	if !ok {
		return ErrClientNotFound
	}
	client.AccountNumbers = append(client.AccountNumbers, number)
	r.clients[taxID] = client
	return nil
}
