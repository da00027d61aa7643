package client

import (
	"errors"
	"time"

	"github.com/balcao-bank/balcao/internal/account"
)

var (
	// ErrClientNotFound indicates a lookup for an unknown tax identifier.
	ErrClientNotFound = errors.New("client not found")

	// ErrTaxIDTaken occurs when registering a tax identifier that is
	// already known to the ledger.
	ErrTaxIDTaken = errors.New("tax identifier already registered")

	// ErrNotOwner occurs when a transaction targets an account the client
	// does not own.
	ErrNotOwner = errors.New("account does not belong to client")

	// ErrInvalidPIN indicates a failed PIN verification.
	ErrInvalidPIN = errors.New("invalid PIN")
)

// Client is a registered account holder. The tax identifier is the external
// lookup key; account numbers are kept in the order the accounts were opened.
type Client struct {
	ID             string
	Name           string
	BirthDate      time.Time
	TaxID          string
	Address        string
	PINHash        []byte
	AccountNumbers []int64
	CreatedAt      time.Time
}

// Perform executes a transaction against one of the client's accounts. It is
// the single entry point through which balance-affecting operations flow.
func (c *Client) Perform(acc *account.Account, tx account.Transaction) error {
	if acc.OwnerTaxID != c.TaxID {
		return ErrNotOwner
	}
	return tx.Register(acc)
}

// OwnsAccount reports whether the account number belongs to the client.
func (c *Client) OwnsAccount(number int64) bool {
	for _, n := range c.AccountNumbers {
		if n == number {
			return true
		}
	}
	return false
}
