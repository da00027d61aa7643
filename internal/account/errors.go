package account

import "errors"

var (
	// ErrInvalidAmount occurs when a deposit or withdrawal is requested
	// with a zero or negative amount.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInsufficientFunds occurs when a withdrawal exceeds the available balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrWithdrawalLimit occurs when a single withdrawal exceeds the
	// checking account's per-withdrawal ceiling.
	ErrWithdrawalLimit = errors.New("withdrawal exceeds per-withdrawal limit")

	// ErrDailyLimit occurs when the checking account's daily withdrawal
	// count has been exhausted.
	ErrDailyLimit = errors.New("daily withdrawal limit reached")

	// ErrAccountNotFound indicates a lookup for an unknown account number.
	ErrAccountNotFound = errors.New("account not found")
)
