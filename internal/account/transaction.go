package account

import "fmt"

// Transaction is a transient request to move money on an account: built per
// request, registered once, then discarded. It never mutates after
// construction.
type Transaction struct {
	kind   Kind
	amount int64
}

// NewDeposit builds a deposit transaction for the given amount in centavos.
func NewDeposit(amount int64) Transaction {
	return Transaction{kind: KindDeposit, amount: amount}
}

// NewWithdrawal builds a withdrawal transaction for the given amount in centavos.
func NewWithdrawal(amount int64) Transaction {
	return Transaction{kind: KindWithdrawal, amount: amount}
}

// Kind reports whether the transaction deposits or withdraws.
func (t Transaction) Kind() Kind {
	return t.kind
}

// Amount returns the requested amount in centavos.
func (t Transaction) Amount() int64 {
	return t.amount
}

// Register applies the transaction against the account. On success exactly
// one entry is left on the account statement; on failure the account state
// is unchanged and the domain error propagates to the caller.
func (t Transaction) Register(a *Account) error {
	switch t.kind {
	case KindDeposit:
		if err := a.Deposit(t.amount); err != nil {
			return err
		}
		a.record(KindDeposit, t.amount)
		return nil
	case KindWithdrawal:
		recorded, err := a.Withdraw(t.amount)
		if err != nil {
			return err
		}
		if !recorded {
			a.record(KindWithdrawal, t.amount)
		}
		return nil
	default:
		return fmt.Errorf("unknown transaction kind %q", t.kind)
	}
}
