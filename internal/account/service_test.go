package account

import (
	"context"
	"testing"
)

func TestServiceOpenAssignsSequentialNumbers(t *testing.T) {
	svc := NewService(NewMemoryRepository(), "0001", CheckingPolicy{})
	ctx := context.Background()

	first, err := svc.Open(ctx, OpenInput{OwnerTaxID: "12345678901"})
	if err != nil {
		t.Fatalf("open first: %v", err)
	}
	second, err := svc.Open(ctx, OpenInput{OwnerTaxID: "98765432100"})
	if err != nil {
		t.Fatalf("open second: %v", err)
	}

	if first.Number != 1 || second.Number != 2 {
		t.Fatalf("expected numbers 1 and 2, got %d and %d", first.Number, second.Number)
	}
	if first.Branch != "0001" {
		t.Fatalf("expected branch 0001, got %s", first.Branch)
	}
	if first.Type != TypeChecking {
		t.Fatalf("expected checking by default, got %s", first.Type)
	}
}

func TestServiceOpenPlain(t *testing.T) {
	svc := NewService(NewMemoryRepository(), "0001", CheckingPolicy{})

	acc, err := svc.Open(context.Background(), OpenInput{OwnerTaxID: "12345678901", Type: TypePlain})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if acc.Type != TypePlain {
		t.Fatalf("expected plain account, got %s", acc.Type)
	}
}

func TestServiceOpenUnknownType(t *testing.T) {
	svc := NewService(NewMemoryRepository(), "0001", CheckingPolicy{})

	if _, err := svc.Open(context.Background(), OpenInput{OwnerTaxID: "12345678901", Type: "savings"}); err == nil {
		t.Fatalf("expected error for unknown account type")
	}
}

func TestServiceGetUnknownAccount(t *testing.T) {
	svc := NewService(NewMemoryRepository(), "0001", CheckingPolicy{})

	if _, err := svc.Get(context.Background(), 42); err != ErrAccountNotFound {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestListByOwnerOrderedByNumber(t *testing.T) {
	svc := NewService(NewMemoryRepository(), "0001", CheckingPolicy{})
	ctx := context.Background()

	if _, err := svc.Open(ctx, OpenInput{OwnerTaxID: "12345678901"}); err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := svc.Open(ctx, OpenInput{OwnerTaxID: "98765432100"}); err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := svc.Open(ctx, OpenInput{OwnerTaxID: "12345678901"}); err != nil {
		t.Fatalf("open: %v", err)
	}

	accounts, err := svc.ListByOwner(ctx, "12345678901")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(accounts) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(accounts))
	}
	if accounts[0].Number != 1 || accounts[1].Number != 3 {
		t.Fatalf("expected numbers 1 and 3, got %d and %d", accounts[0].Number, accounts[1].Number)
	}
}
