package teller

import (
	"context"
	"fmt"
	"time"

	"github.com/balcao-bank/balcao/internal/account"
	"github.com/balcao-bank/balcao/internal/client"
	"github.com/balcao-bank/balcao/internal/notification"
)

// Service executes client-initiated transactions against accounts. Every
// balance-affecting operation in the system flows through here: the client
// is resolved by tax identifier, the target account resolved by number (or
// the client's first account when omitted), and the transaction registered
// through the client.
type Service struct {
	clients  *client.Service
	accounts *account.Service
	notifier notification.Notifier
}

// NewService constructs a teller service.
func NewService(clients *client.Service, accounts *account.Service, notifier notification.Notifier) *Service {
	return &Service{clients: clients, accounts: accounts, notifier: notifier}
}

// OperationInput captures the data needed to move money on an account.
// AccountNumber zero means the client's first account.
type OperationInput struct {
	TaxID         string
	AccountNumber int64
	Amount        int64 // centavos
	PIN           string
}

// OperationResult describes the outcome of a successful operation.
type OperationResult struct {
	AccountNumber int64
	Balance       int64
	Entry         account.Entry
	CompletedAt   time.Time
}

// Deposit credits the amount to the resolved account and records it on the
// statement.
func (s *Service) Deposit(ctx context.Context, input OperationInput) (OperationResult, error) {
	cli, acc, err := s.resolve(ctx, input.TaxID, input.AccountNumber)
	if err != nil {
		return OperationResult{}, err
	}

	if err := cli.Perform(acc, account.NewDeposit(input.Amount)); err != nil {
		return OperationResult{}, err
	}

	body := fmt.Sprintf("Deposit of %s into account %d", account.FormatAmount(input.Amount), acc.Number)
	return s.complete(ctx, cli, acc, notification.KindDepositReceipt, body)
}

// Withdraw verifies the client's PIN, then debits the amount subject to the
// account's withdrawal policy.
func (s *Service) Withdraw(ctx context.Context, input OperationInput) (OperationResult, error) {
	cli, acc, err := s.resolve(ctx, input.TaxID, input.AccountNumber)
	if err != nil {
		return OperationResult{}, err
	}

	if err := s.clients.VerifyPIN(ctx, input.TaxID, input.PIN); err != nil {
		return OperationResult{}, err
	}

	if err := cli.Perform(acc, account.NewWithdrawal(input.Amount)); err != nil {
		return OperationResult{}, err
	}

	body := fmt.Sprintf("Withdrawal of %s from account %d", account.FormatAmount(input.Amount), acc.Number)
	return s.complete(ctx, cli, acc, notification.KindWithdrawalReceipt, body)
}

// StatementResult carries an account statement for display.
type StatementResult struct {
	AccountNumber int64
	Balance       int64
	Entries       []account.Entry
	Lines         []string
}

// Statement returns the resolved account's movement history in
// chronological order.
func (s *Service) Statement(ctx context.Context, taxID string, accountNumber int64) (StatementResult, error) {
	_, acc, err := s.resolve(ctx, taxID, accountNumber)
	if err != nil {
		return StatementResult{}, err
	}
	return StatementResult{
		AccountNumber: acc.Number,
		Balance:       acc.Balance(),
		Entries:       acc.Statement(),
		Lines:         acc.RenderStatement(),
	}, nil
}

// resolve loads the client and the target account, falling back to the
// client's first account when no number is given.
func (s *Service) resolve(ctx context.Context, taxID string, number int64) (client.Client, *account.Account, error) {
	cli, err := s.clients.FindByTaxID(ctx, taxID)
	if err != nil {
		return client.Client{}, nil, err
	}

	if number == 0 {
		if len(cli.AccountNumbers) == 0 {
			return client.Client{}, nil, account.ErrAccountNotFound
		}
		number = cli.AccountNumbers[0]
	} else if !cli.OwnsAccount(number) {
		return client.Client{}, nil, client.ErrNotOwner
	}

	acc, err := s.accounts.Get(ctx, number)
	if err != nil {
		return client.Client{}, nil, err
	}
	return cli, acc, nil
}

// complete persists the mutated account, emits the receipt and builds the
// operation result from the freshly appended statement entry.
func (s *Service) complete(ctx context.Context, cli client.Client, acc *account.Account, kind, body string) (OperationResult, error) {
	if err := s.accounts.Save(ctx, acc); err != nil {
		return OperationResult{}, err
	}

	entries := acc.Statement()
	entry := entries[len(entries)-1]

	if s.notifier != nil {
		_ = s.notifier.Send(ctx, notification.Message{
			Kind:        kind,
			Destination: cli.TaxID,
			Body:        body,
		})
	}

	return OperationResult{
		AccountNumber: acc.Number,
		Balance:       acc.Balance(),
		Entry:         entry,
		CompletedAt:   time.Now().UTC(),
	}, nil
}
