package account

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Kind labels a recorded money movement.
type Kind string

const (
	KindDeposit    Kind = "deposit"
	KindWithdrawal Kind = "withdrawal"
)

// Entry is one recorded movement on an account statement.
type Entry struct {
	ID         string
	Kind       Kind
	Amount     int64 // centavos
	RecordedAt time.Time
}

// String renders the entry as a statement line: "DD/MM/YYYY HH:MM:SS - kind: 123.45".
func (e Entry) String() string {
	return fmt.Sprintf("%s - %s: %s", e.RecordedAt.Format("02/01/2006 15:04:05"), e.Kind, FormatAmount(e.Amount))
}

// NoMovements is the statement line rendered when an account has no history.
const NoMovements = "no movements recorded"

// History is the append-only movement log owned by exactly one account.
// Entries are kept in insertion order, which is chronological.
type History struct {
	entries []Entry
}

func (h *History) append(kind Kind, amount int64, at time.Time) Entry {
	e := Entry{ID: uuid.NewString(), Kind: kind, Amount: amount, RecordedAt: at}
	h.entries = append(h.entries, e)
	return e
}

// Entries returns a copy of the recorded movements in chronological order.
func (h *History) Entries() []Entry {
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len reports the number of recorded movements.
func (h *History) Len() int {
	return len(h.entries)
}

// Render produces formatted statement lines in chronological order, or a
// single NoMovements line for an empty history.
func (h *History) Render() []string {
	if len(h.entries) == 0 {
		return []string{NoMovements}
	}
	lines := make([]string, 0, len(h.entries))
	for _, e := range h.entries {
		lines = append(lines, e.String())
	}
	return lines
}

// FormatAmount renders centavos as a two-decimal currency string.
func FormatAmount(amount int64) string {
	return fmt.Sprintf("%d.%02d", amount/100, amount%100)
}
