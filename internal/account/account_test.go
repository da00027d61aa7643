package account

import (
	"errors"
	"testing"
	"time"
)

func TestDepositIncreasesBalance(t *testing.T) {
	acc := New(1, "0001", "12345678901")

	if err := acc.Deposit(5_000); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if got := acc.Balance(); got != 5_000 {
		t.Fatalf("expected balance 5000, got %d", got)
	}
}

func TestDepositRejectsNonPositiveAmounts(t *testing.T) {
	acc := New(1, "0001", "12345678901")

	for _, amount := range []int64{0, -100} {
		if err := acc.Deposit(amount); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("deposit %d: expected ErrInvalidAmount, got %v", amount, err)
		}
	}
	if acc.Balance() != 0 {
		t.Fatalf("balance changed after rejected deposits: %d", acc.Balance())
	}
}

func TestWithdrawPlainAccount(t *testing.T) {
	acc := New(1, "0001", "12345678901")
	if err := acc.Deposit(5_000); err != nil {
		t.Fatalf("deposit: %v", err)
	}

	if _, err := acc.Withdraw(10_000); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if acc.Balance() != 5_000 {
		t.Fatalf("balance changed after failed withdrawal: %d", acc.Balance())
	}

	recorded, err := acc.Withdraw(5_000)
	if err != nil {
		t.Fatalf("withdraw: %v", err)
	}
	if recorded {
		t.Fatalf("plain account should not record its own entries")
	}
	if acc.Balance() != 0 {
		t.Fatalf("expected balance 0, got %d", acc.Balance())
	}

	// A plain account has no ceilings: a large deposit can be withdrawn whole.
	if err := acc.Deposit(10_000_000); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if _, err := acc.Withdraw(10_000_000); err != nil {
		t.Fatalf("unlimited withdrawal on plain account: %v", err)
	}
}

func TestWithdrawRejectsNonPositiveAmounts(t *testing.T) {
	acc := NewChecking(1, "0001", "12345678901", CheckingPolicy{})
	if _, err := acc.Withdraw(0); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
	if _, err := acc.Withdraw(-1); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestCheckingWithdrawScenario(t *testing.T) {
	// limit 500.00, 3 withdrawals per day, balance 1000.00
	acc := NewChecking(1, "0001", "12345678901", CheckingPolicy{WithdrawalLimit: 50_000, DailyWithdrawals: 3})
	if err := acc.Deposit(100_000); err != nil {
		t.Fatalf("seed deposit: %v", err)
	}

	if _, err := acc.Withdraw(60_000); !errors.Is(err, ErrWithdrawalLimit) {
		t.Fatalf("expected ErrWithdrawalLimit, got %v", err)
	}
	if acc.Balance() != 100_000 {
		t.Fatalf("balance changed after rejected withdrawal: %d", acc.Balance())
	}

	for i, want := range []int64{90_000, 80_000, 70_000} {
		recorded, err := acc.Withdraw(10_000)
		if err != nil {
			t.Fatalf("withdrawal %d: %v", i+1, err)
		}
		if !recorded {
			t.Fatalf("checking withdrawal %d should record its own entry", i+1)
		}
		if acc.Balance() != want {
			t.Fatalf("withdrawal %d: expected balance %d, got %d", i+1, want, acc.Balance())
		}
	}
	if got := len(acc.Statement()); got != 3 {
		t.Fatalf("expected 3 statement entries, got %d", got)
	}

	if _, err := acc.Withdraw(5_000); !errors.Is(err, ErrDailyLimit) {
		t.Fatalf("expected ErrDailyLimit on 4th withdrawal, got %v", err)
	}
	if acc.Balance() != 70_000 {
		t.Fatalf("balance changed after daily limit rejection: %d", acc.Balance())
	}
}

func TestCheckingValidationOrder(t *testing.T) {
	acc := NewChecking(1, "0001", "12345678901", CheckingPolicy{WithdrawalLimit: 50_000, DailyWithdrawals: 1})
	if err := acc.Deposit(1_000); err != nil {
		t.Fatalf("seed deposit: %v", err)
	}

	// Amount above both limit and balance: the limit check wins.
	if _, err := acc.Withdraw(60_000); !errors.Is(err, ErrWithdrawalLimit) {
		t.Fatalf("expected ErrWithdrawalLimit, got %v", err)
	}

	// Exhaust the daily count, then an invalid amount still reports
	// ErrInvalidAmount first.
	if _, err := acc.Withdraw(1_000); err != nil {
		t.Fatalf("withdraw: %v", err)
	}
	if _, err := acc.Withdraw(-50); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
	// And the daily check comes before insufficient funds.
	if _, err := acc.Withdraw(100); !errors.Is(err, ErrDailyLimit) {
		t.Fatalf("expected ErrDailyLimit, got %v", err)
	}
}

func TestDailyCounterNeverResetsByDefault(t *testing.T) {
	acc := NewChecking(1, "0001", "12345678901", CheckingPolicy{DailyWithdrawals: 2})
	current := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	acc.now = func() time.Time { return current }

	if err := acc.Deposit(100_000); err != nil {
		t.Fatalf("seed deposit: %v", err)
	}
	for i := 0; i < 2; i++ {
		if _, err := acc.Withdraw(1_000); err != nil {
			t.Fatalf("withdrawal %d: %v", i+1, err)
		}
	}

	current = current.Add(48 * time.Hour)
	if _, err := acc.Withdraw(1_000); !errors.Is(err, ErrDailyLimit) {
		t.Fatalf("expected ErrDailyLimit across days with ResetNever, got %v", err)
	}
}

func TestDailyCounterCalendarDayReset(t *testing.T) {
	acc := NewChecking(1, "0001", "12345678901", CheckingPolicy{DailyWithdrawals: 2, Reset: ResetCalendarDay})
	current := time.Date(2025, 3, 10, 23, 30, 0, 0, time.UTC)
	acc.now = func() time.Time { return current }

	if err := acc.Deposit(100_000); err != nil {
		t.Fatalf("seed deposit: %v", err)
	}
	for i := 0; i < 2; i++ {
		if _, err := acc.Withdraw(1_000); err != nil {
			t.Fatalf("withdrawal %d: %v", i+1, err)
		}
	}
	if _, err := acc.Withdraw(1_000); !errors.Is(err, ErrDailyLimit) {
		t.Fatalf("expected ErrDailyLimit before midnight, got %v", err)
	}

	// One hour later it is a new calendar day and the window rolls over.
	current = current.Add(time.Hour)
	if _, err := acc.Withdraw(1_000); err != nil {
		t.Fatalf("expected withdrawal to succeed on a new day, got %v", err)
	}
	if got := acc.WithdrawalsToday(); got != 1 {
		t.Fatalf("expected counter 1 after reset, got %d", got)
	}
}

func TestCheckingDefaults(t *testing.T) {
	acc := NewChecking(1, "0001", "12345678901", CheckingPolicy{})
	policy := acc.Policy()
	if policy.WithdrawalLimit != DefaultWithdrawalLimit {
		t.Fatalf("expected default withdrawal limit, got %d", policy.WithdrawalLimit)
	}
	if policy.DailyWithdrawals != DefaultDailyWithdrawals {
		t.Fatalf("expected default daily withdrawals, got %d", policy.DailyWithdrawals)
	}
	if policy.Reset != ResetNever {
		t.Fatalf("expected ResetNever default, got %q", policy.Reset)
	}
}
