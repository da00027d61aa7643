package account

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository stores accounts and assigns their sequential numbers.
type Repository interface {
	// Create stores the account and assigns the next account number.
	Create(ctx context.Context, acc *Account) error
	Get(ctx context.Context, number int64) (*Account, error)
	// ListByOwner returns the owner's accounts ordered by number, oldest first.
	ListByOwner(ctx context.Context, taxID string) ([]*Account, error)
	// Save persists balance and statement changes after a successful operation.
	Save(ctx context.Context, acc *Account) error
}

// restore rebuilds an account, history included, from persisted state.
func restore(number int64, branch, ownerTaxID string, typ Type, policy CheckingPolicy, balance int64, withdrawalsToday int, lastWithdrawal time.Time, entries []Entry) *Account {
	return &Account{
		Number:           number,
		Branch:           branch,
		OwnerTaxID:       ownerTaxID,
		Type:             typ,
		policy:           policy,
		balance:          balance,
		withdrawalsToday: withdrawalsToday,
		lastWithdrawal:   lastWithdrawal,
		history:          History{entries: entries},
		now:              time.Now,
	}
}

// PostgresRepository stores accounts in PostgreSQL. It is the opt-in durable
// backend; the ledger runs in memory by default.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed account repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts the account row and assigns the database-generated number.
func (r *PostgresRepository) Create(ctx context.Context, acc *Account) error {
	policy := acc.Policy()
	row := r.db.QueryRow(ctx, `INSERT INTO accounts
        (branch, owner_tax_id, type, withdrawal_limit, daily_withdrawals, reset_policy, balance, withdrawals_today)
        VALUES ($1, $2, $3, $4, $5, $6, 0, 0)
        RETURNING number`,
		acc.Branch, acc.OwnerTaxID, string(acc.Type), policy.WithdrawalLimit, policy.DailyWithdrawals, string(policy.Reset))
	return row.Scan(&acc.Number)
}

// Get fetches an account and its statement entries by number.
func (r *PostgresRepository) Get(ctx context.Context, number int64) (*Account, error) {
	row := r.db.QueryRow(ctx, `SELECT number, branch, owner_tax_id, type,
        withdrawal_limit, daily_withdrawals, reset_policy, balance, withdrawals_today, last_withdrawal
        FROM accounts WHERE number = $1`, number)
	acc, err := scanAccount(ctx, r.db, row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return acc, nil
}

// ListByOwner fetches all accounts owned by the tax identifier, oldest first.
func (r *PostgresRepository) ListByOwner(ctx context.Context, taxID string) ([]*Account, error) {
	rows, err := r.db.Query(ctx, `SELECT number, branch, owner_tax_id, type,
        withdrawal_limit, daily_withdrawals, reset_policy, balance, withdrawals_today, last_withdrawal
        FROM accounts WHERE owner_tax_id = $1 ORDER BY number`, taxID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []*Account
	for rows.Next() {
		acc, err := scanAccount(ctx, r.db, rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, acc)
	}
	return accounts, rows.Err()
}

// Save writes back the balance and withdrawal window and appends any
// statement entries not yet persisted.
func (r *PostgresRepository) Save(ctx context.Context, acc *Account) error {
	acc.mu.Lock()
	balance := acc.balance
	withdrawalsToday := acc.withdrawalsToday
	lastWithdrawal := acc.lastWithdrawal
	entries := acc.history.Entries()
	acc.mu.Unlock()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) // nolint:errcheck

	cmd, err := tx.Exec(ctx, `UPDATE accounts
        SET balance = $1, withdrawals_today = $2, last_withdrawal = $3
        WHERE number = $4`, balance, withdrawalsToday, nullableTime(lastWithdrawal), acc.Number)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrAccountNotFound
	}

	for _, e := range entries {
		if _, err := tx.Exec(ctx, `INSERT INTO account_entries (id, account_number, kind, amount, recorded_at)
            VALUES ($1, $2, $3, $4, $5) ON CONFLICT (id) DO NOTHING`,
			e.ID, acc.Number, string(e.Kind), e.Amount, e.RecordedAt.UTC()); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

type pgxRow interface {
	Scan(dest ...any) error
}

func scanAccount(ctx context.Context, db *pgxpool.Pool, row pgxRow) (*Account, error) {
	var (
		number           int64
		branch           string
		ownerTaxID       string
		typ              string
		policy           CheckingPolicy
		reset            string
		balance          int64
		withdrawalsToday int
		lastWithdrawal   *time.Time
	)
	if err := row.Scan(&number, &branch, &ownerTaxID, &typ,
		&policy.WithdrawalLimit, &policy.DailyWithdrawals, &reset,
		&balance, &withdrawalsToday, &lastWithdrawal); err != nil {
		return nil, err
	}
	policy.Reset = ResetPolicy(reset)

	entries, err := loadEntries(ctx, db, number)
	if err != nil {
		return nil, err
	}

	var last time.Time
	if lastWithdrawal != nil {
		last = lastWithdrawal.UTC()
	}
	return restore(number, branch, ownerTaxID, Type(typ), policy, balance, withdrawalsToday, last, entries), nil
}

func loadEntries(ctx context.Context, db *pgxpool.Pool, number int64) ([]Entry, error) {
	rows, err := db.Query(ctx, `SELECT id, kind, amount, recorded_at
        FROM account_entries WHERE account_number = $1 ORDER BY recorded_at, id`, number)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e    Entry
			kind string
		)
		if err := rows.Scan(&e.ID, &kind, &e.Amount, &e.RecordedAt); err != nil {
			return nil, err
		}
		e.Kind = Kind(kind)
		e.RecordedAt = e.RecordedAt.UTC()
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
