package repository

import (
	"context"
	"database/sql"
	"time"

	"member-portal/internal/domain"
)

// SessionRepo implements domain.SessionRepository.
//
// Expiry is lazy: reading an expired session deletes the row and reports
// NotFound, so a browser holding a stale cookie is indistinguishable from an
// anonymous one. DeleteExpired exists for bulk cleanup.
type SessionRepo struct {
	db *sql.DB
}

// NewSessionRepo creates a new SessionRepo. It needs a write pool: reads of
// expired rows delete them.
func NewSessionRepo(db *sql.DB) *SessionRepo {
	return &SessionRepo{db: db}
}

func (r *SessionRepo) Create(ctx context.Context, s *domain.Session) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sessions (id, email, name, role, created_at, expires_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		s.ID, s.Email, s.Name, s.Role, s.CreatedAt, s.ExpiresAt,
	)
	return mapDBError(err)
}

func (r *SessionRepo) Get(ctx context.Context, id string) (*domain.Session, error) {
	var s domain.Session
	row := r.db.QueryRowContext(ctx, `
		SELECT id, email, name, role, created_at, expires_at
		FROM sessions WHERE id = ?`, id,
	)
	if err := row.Scan(&s.ID, &s.Email, &s.Name, &s.Role, &s.CreatedAt, &s.ExpiresAt); err != nil {
		return nil, mapDBError(err)
	}
	if s.Expired(time.Now()) {
		_, _ = r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
		return nil, domain.ErrNotFound("session expired")
	}
	return &s, nil
}

func (r *SessionRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return mapDBError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound("session not found")
	}
	return nil
}

func (r *SessionRepo) UpdateRole(ctx context.Context, id, role string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE sessions SET role = ? WHERE id = ?`, role, id,
	)
	return mapDBError(err)
}

func (r *SessionRepo) DeleteExpired(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM sessions WHERE expires_at <= ?`, time.Now(),
	)
	if err != nil {
		return 0, mapDBError(err)
	}
	return res.RowsAffected()
}
