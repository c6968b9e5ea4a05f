package domain

import "context"

// AccountRepository persists accounts, keyed by email. Implementations must
// enforce email uniqueness at the store and surface a violation as
// *ConflictError.
type AccountRepository interface {
	Create(ctx context.Context, account *Account) error
	GetByEmail(ctx context.Context, email string) (*Account, error)
	List(ctx context.Context) ([]Account, error)
	// UpdateRole sets the role for the given email. It reports whether any
	// row changed; updating an absent email is not an error.
	UpdateRole(ctx context.Context, email, role string) (bool, error)
}

// SessionRepository persists server-side sessions keyed by session id.
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	// Get returns *NotFoundError for unknown or expired sessions. An expired
	// row is removed on read.
	Get(ctx context.Context, id string) (*Session, error)
	// Delete returns *NotFoundError when the session does not exist; callers
	// that want idempotent destruction swallow that case.
	Delete(ctx context.Context, id string) error
	UpdateRole(ctx context.Context, id, role string) error
	DeleteExpired(ctx context.Context) (int64, error)
}
