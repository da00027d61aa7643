package account

import (
	"testing"
	"time"
)

func TestHistoryPreservesInsertionOrder(t *testing.T) {
	var h History
	base := time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC)

	h.append(KindDeposit, 5_000, base)
	h.append(KindWithdrawal, 2_000, base.Add(time.Minute))
	h.append(KindDeposit, 100, base.Add(2*time.Minute))

	if h.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", h.Len())
	}
	entries := h.Entries()
	wantKinds := []Kind{KindDeposit, KindWithdrawal, KindDeposit}
	for i, e := range entries {
		if e.Kind != wantKinds[i] {
			t.Fatalf("entry %d: expected kind %s, got %s", i, wantKinds[i], e.Kind)
		}
		if e.ID == "" {
			t.Fatalf("entry %d has no ID", i)
		}
	}
	if !entries[0].RecordedAt.Before(entries[1].RecordedAt) {
		t.Fatalf("entries out of chronological order")
	}
}

func TestHistoryRenderEmpty(t *testing.T) {
	var h History
	lines := h.Render()
	if len(lines) != 1 || lines[0] != NoMovements {
		t.Fatalf("expected the no-movements indicator, got %v", lines)
	}
}

func TestEntryString(t *testing.T) {
	e := Entry{
		Kind:       KindDeposit,
		Amount:     123_456,
		RecordedAt: time.Date(2025, 6, 10, 14, 30, 5, 0, time.UTC),
	}
	want := "10/06/2025 14:30:05 - deposit: 1234.56"
	if got := e.String(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatAmount(t *testing.T) {
	cases := map[int64]string{
		0:       "0.00",
		5:       "0.05",
		50:      "0.50",
		100:     "1.00",
		123_456: "1234.56",
		50_000:  "500.00",
	}
	for amount, want := range cases {
		if got := FormatAmount(amount); got != want {
			t.Fatalf("FormatAmount(%d): expected %q, got %q", amount, want, got)
		}
	}
}

func TestHistoryEntriesReturnsCopy(t *testing.T) {
	var h History
	h.append(KindDeposit, 100, time.Now().UTC())

	entries := h.Entries()
	entries[0].Amount = 999

	if h.Entries()[0].Amount != 100 {
		t.Fatalf("mutating the returned slice must not touch the history")
	}
}
