package client

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists clients.
type Repository interface {
	Create(ctx context.Context, client Client) error
	FindByTaxID(ctx context.Context, taxID string) (Client, error)
	// LinkAccount appends an account number to the client's owned list.
	LinkAccount(ctx context.Context, taxID string, number int64) error
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed client repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new client. Tax identifier uniqueness is enforced by the
// unique index on clients.tax_id.
func (r *PostgresRepository) Create(ctx context.Context, client Client) error {
	clientID, err := uuid.Parse(client.ID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO clients (id, name, birth_date, tax_id, address, pin_hash, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		clientID, client.Name, client.BirthDate, client.TaxID, client.Address, client.PINHash, client.CreatedAt.UTC())
	return err
}

// FindByTaxID fetches a client and its owned account numbers.
func (r *PostgresRepository) FindByTaxID(ctx context.Context, taxID string) (Client, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, birth_date, tax_id, address, pin_hash, created_at
        FROM clients WHERE tax_id = $1`, taxID)
	var (
		id        uuid.UUID
		birthDate time.Time
		createdAt time.Time
		client    Client
	)
	if err := row.Scan(&id, &client.Name, &birthDate, &client.TaxID, &client.Address, &client.PINHash, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Client{}, ErrClientNotFound
		}
		return Client{}, err
	}
	client.ID = id.String()
	client.BirthDate = birthDate
	client.CreatedAt = createdAt.UTC()

	rows, err := r.db.Query(ctx, `SELECT account_number FROM client_accounts
        WHERE tax_id = $1 ORDER BY linked_at, account_number`, taxID)
	if err != nil {
		return Client{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var number int64
		if err := rows.Scan(&number); err != nil {
			return Client{}, err
		}
		client.AccountNumbers = append(client.AccountNumbers, number)
	}
	return client, rows.Err()
}

// LinkAccount records account ownership for the client.
func (r *PostgresRepository) LinkAccount(ctx context.Context, taxID string, number int64) error {
	cmd, err := r.db.Exec(ctx, `INSERT INTO client_accounts (tax_id, account_number, linked_at)
        SELECT tax_id, $2, $3 FROM clients WHERE tax_id = $1`, taxID, number, time.Now().UTC())
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrClientNotFound
	}
	return nil
}
