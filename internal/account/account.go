package account

import (
	"sync"
	"time"
)

// Default checking account ceilings, in centavos and withdrawals per day.
const (
	DefaultWithdrawalLimit  int64 = 50_000
	DefaultDailyWithdrawals       = 3
)

// Type distinguishes account variants.
type Type string

const (
	// TypePlain accounts have no withdrawal ceilings.
	TypePlain Type = "plain"
	// TypeChecking accounts enforce a per-withdrawal limit and a daily
	// withdrawal count.
	TypeChecking Type = "checking"
)

// ResetPolicy controls when the daily withdrawal counter clears.
type ResetPolicy string

const (
	// ResetNever keeps the counter monotonic for the lifetime of the account.
	ResetNever ResetPolicy = "never"
	// ResetCalendarDay clears the counter on the first withdrawal attempt of
	// a new UTC calendar day.
	ResetCalendarDay ResetPolicy = "daily"
)

// CheckingPolicy bounds withdrawals on checking accounts.
type CheckingPolicy struct {
	WithdrawalLimit  int64 // maximum single withdrawal, centavos
	DailyWithdrawals int   // maximum successful withdrawals per day
	Reset            ResetPolicy
}

// Account holds a balance and the statement history for one account.
// All balance mutations go through Deposit and Withdraw, serialized by a
// per-account mutex.
type Account struct {
	Number     int64
	Branch     string
	OwnerTaxID string
	Type       Type

	policy CheckingPolicy

	mu               sync.Mutex
	balance          int64
	history          History
	withdrawalsToday int
	lastWithdrawal   time.Time

	now func() time.Time
}

// New creates a plain account with no withdrawal ceilings.
func New(number int64, branch, ownerTaxID string) *Account {
	return &Account{
		Number:     number,
		Branch:     branch,
		OwnerTaxID: ownerTaxID,
		Type:       TypePlain,
		now:        time.Now,
	}
}

// NewChecking creates a checking account bounded by the provided policy.
// Zero policy fields fall back to the defaults.
func NewChecking(number int64, branch, ownerTaxID string, policy CheckingPolicy) *Account {
	if policy.WithdrawalLimit <= 0 {
		policy.WithdrawalLimit = DefaultWithdrawalLimit
	}
	if policy.DailyWithdrawals <= 0 {
		policy.DailyWithdrawals = DefaultDailyWithdrawals
	}
	if policy.Reset == "" {
		policy.Reset = ResetNever
	}
	return &Account{
		Number:     number,
		Branch:     branch,
		OwnerTaxID: ownerTaxID,
		Type:       TypeChecking,
		policy:     policy,
		now:        time.Now,
	}
}

// Balance returns the current balance in centavos.
func (a *Account) Balance() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// Policy returns the checking ceilings. Zero value for plain accounts.
func (a *Account) Policy() CheckingPolicy {
	return a.policy
}

// WithdrawalsToday reports the current daily withdrawal count.
func (a *Account) WithdrawalsToday() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.withdrawalsToday
}

// Deposit credits amount to the account. The statement entry is appended by
// the caller (Transaction.Register) after the success signal.
func (a *Account) Deposit(amount int64) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if amount <= 0 {
		return ErrInvalidAmount
	}
	a.balance += amount
	return nil
}

// Withdraw debits amount subject to the account's policy. Checking accounts
// record the movement on their own statement; the returned flag tells the
// caller whether an entry was already appended, so that every successful
// withdrawal ends up with exactly one entry, never zero or two.
//
// Validation order: invalid amount, per-withdrawal limit, daily count,
// insufficient funds. The first failing check wins and the account is left
// untouched.
func (a *Account) Withdraw(amount int64) (recorded bool, err error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if amount <= 0 {
		return false, ErrInvalidAmount
	}

	if a.Type == TypeChecking {
		if amount > a.policy.WithdrawalLimit {
			return false, ErrWithdrawalLimit
		}
		a.rollWithdrawalWindow()
		if a.withdrawalsToday >= a.policy.DailyWithdrawals {
			return false, ErrDailyLimit
		}
		if amount > a.balance {
			return false, ErrInsufficientFunds
		}
		a.balance -= amount
		a.withdrawalsToday++
		a.lastWithdrawal = a.now().UTC()
		a.history.append(KindWithdrawal, amount, a.now().UTC())
		return true, nil
	}

	if amount > a.balance {
		return false, ErrInsufficientFunds
	}
	a.balance -= amount
	return false, nil
}

// rollWithdrawalWindow clears the daily counter when the policy allows it
// and a new calendar day has started. Must be called with the lock held.
func (a *Account) rollWithdrawalWindow() {
	if a.policy.Reset != ResetCalendarDay || a.withdrawalsToday == 0 {
		return
	}
	nowDay := a.now().UTC().Truncate(24 * time.Hour)
	lastDay := a.lastWithdrawal.UTC().Truncate(24 * time.Hour)
	if nowDay.After(lastDay) {
		a.withdrawalsToday = 0
	}
}

// record appends a statement entry for an already-applied movement.
func (a *Account) record(kind Kind, amount int64) Entry {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.history.append(kind, amount, a.now().UTC())
}

// Statement returns the recorded movements in chronological order.
func (a *Account) Statement() []Entry {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.history.Entries()
}

// RenderStatement returns formatted statement lines, or the NoMovements
// indicator when the account has no history.
func (a *Account) RenderStatement() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.history.Render()
}
