package repository

import (
	"context"
	"database/sql"

	"member-portal/internal/domain"
)

// AccountRepo implements domain.AccountRepository.
//
// The accounts table keys on email, so the primary key is the uniqueness
// constraint that makes concurrent signups for the same address safe: the
// loser of the race gets a ConflictError from mapDBError.
type AccountRepo struct {
	db *sql.DB
}

// NewAccountRepo creates a new AccountRepo.
func NewAccountRepo(db *sql.DB) *AccountRepo {
	return &AccountRepo{db: db}
}

func (r *AccountRepo) Create(ctx context.Context, a *domain.Account) error {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO accounts (email, name, password_hash, role)
		VALUES (?, ?, ?, ?)
		RETURNING created_at`,
		a.Email, a.Name, a.PasswordHash, a.Role,
	)
	if err := row.Scan(&a.CreatedAt); err != nil {
		return mapDBError(err)
	}
	return nil
}

func (r *AccountRepo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var a domain.Account
	row := r.db.QueryRowContext(ctx, `
		SELECT email, name, password_hash, role, created_at
		FROM accounts WHERE email = ?`, email,
	)
	if err := row.Scan(&a.Email, &a.Name, &a.PasswordHash, &a.Role, &a.CreatedAt); err != nil {
		return nil, mapDBError(err)
	}
	return &a, nil
}

func (r *AccountRepo) List(ctx context.Context) ([]domain.Account, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT email, name, password_hash, role, created_at
		FROM accounts ORDER BY created_at, email`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var a domain.Account
		if err := rows.Scan(&a.Email, &a.Name, &a.PasswordHash, &a.Role, &a.CreatedAt); err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

// UpdateRole sets the role for the given email. Updating an absent email is
// not an error; the bool reports whether a row actually changed.
func (r *AccountRepo) UpdateRole(ctx context.Context, email, role string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE accounts SET role = ? WHERE email = ?`, role, email,
	)
	if err != nil {
		return false, mapDBError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
