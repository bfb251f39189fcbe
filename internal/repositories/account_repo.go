package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/acme/account-service/internal/models"
)

var ErrNotFound = errors.New("not found")

// PostgresAccountRepository stores accounts in a single table:
//
//	accounts(id bigserial primary key, name text not null, email text not null,
//	         address text not null, phone_number text, date_joined date not null)
type PostgresAccountRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresAccountRepository(pool *pgxpool.Pool) *PostgresAccountRepository {
	return &PostgresAccountRepository{pool: pool}
}

func (r *PostgresAccountRepository) Create(ctx context.Context, account *models.Account) error {
	query := `INSERT INTO accounts (name, email, address, phone_number, date_joined)
              VALUES ($1, $2, $3, $4, $5)
              RETURNING id`

	err := r.pool.QueryRow(ctx, query,
		account.Name, account.Email, account.Address, account.PhoneNumber, account.DateJoined).
		Scan(&account.ID)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

func (r *PostgresAccountRepository) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	query := `SELECT id, name, email, address, phone_number, date_joined FROM accounts WHERE id = $1`

	row := r.pool.QueryRow(ctx, query, id)

	var account models.Account
	err := row.Scan(&account.ID, &account.Name, &account.Email, &account.Address,
		&account.PhoneNumber, &account.DateJoined)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

func (r *PostgresAccountRepository) List(ctx context.Context) ([]*models.Account, error) {
	query := `SELECT id, name, email, address, phone_number, date_joined FROM accounts ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	accounts := []*models.Account{}
	for rows.Next() {
		var account models.Account
		err := rows.Scan(&account.ID, &account.Name, &account.Email, &account.Address,
			&account.PhoneNumber, &account.DateJoined)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, &account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

func (r *PostgresAccountRepository) Update(ctx context.Context, account *models.Account) error {
	query := `UPDATE accounts SET name = $1, email = $2, address = $3, phone_number = $4, date_joined = $5
              WHERE id = $6`

	result, err := r.pool.Exec(ctx, query,
		account.Name, account.Email, account.Address, account.PhoneNumber, account.DateJoined, account.ID)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes the row if it exists. Deleting an unknown id is not an
// error; the caller treats both cases the same.
func (r *PostgresAccountRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM accounts WHERE id = $1`
	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return nil
}
