// Package service implements the authentication and authorization core:
// account creation, credential verification, session lifecycle, and
// role changes.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"member-portal/internal/domain"
)

// DefaultSessionTTL is the fixed lifetime of a session, measured from
// creation. There is no touch-on-read; expiry is absolute.
const DefaultSessionTTL = time.Hour

// genericLoginFailure is shown for both unknown emails and wrong passwords
// so the login form cannot be used to enumerate accounts. Logs keep the
// distinction.
const genericLoginFailure = "invalid email or password"

// AuthService validates input, creates accounts, verifies credentials,
// manages session lifecycle, and enforces role-based access. It is the only
// writer of session state; transport code just carries the session id cookie.
type AuthService struct {
	accounts domain.AccountRepository
	sessions domain.SessionRepository
	ttl      time.Duration
	logger   *slog.Logger
}

// NewAuthService creates a new AuthService. A non-positive ttl falls back to
// DefaultSessionTTL.
func NewAuthService(accounts domain.AccountRepository, sessions domain.SessionRepository, ttl time.Duration, logger *slog.Logger) *AuthService {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		accounts: accounts,
		sessions: sessions,
		ttl:      ttl,
		logger:   logger,
	}
}

// Signup validates the request, creates an account with role "user", and
// establishes an authenticated session for it.
//
// A duplicate email fails with *domain.ConflictError. The friendly path is
// the pre-check below, but the authoritative guard is the primary key on
// accounts.email: if two signups race past the pre-check, the insert loser
// still gets a ConflictError.
func (s *AuthService) Signup(ctx context.Context, req domain.SignupRequest) (*domain.Account, *domain.Session, error) {
	if err := req.Validate(); err != nil {
		return nil, nil, err
	}

	if _, err := s.accounts.GetByEmail(ctx, req.Email); err == nil {
		return nil, nil, domain.ErrConflict("an account with this email is already registered")
	} else if !isNotFound(err) {
		return nil, nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	account := &domain.Account{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		var conflict *domain.ConflictError
		if errors.As(err, &conflict) {
			return nil, nil, domain.ErrConflict("an account with this email is already registered")
		}
		return nil, nil, err
	}

	session, err := s.createSession(ctx, account)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("account created", "email", account.Email)
	return account, session, nil
}

// Login verifies the credentials and establishes an authenticated session
// carrying the account's current name, email, and role.
//
// Unknown email and wrong password both return the same
// *domain.AuthenticationError; only the log line tells them apart.
func (s *AuthService) Login(ctx context.Context, req domain.LoginRequest) (*domain.Account, *domain.Session, error) {
	if err := req.Validate(); err != nil {
		return nil, nil, err
	}

	account, err := s.accounts.GetByEmail(ctx, req.Email)
	if err != nil {
		if isNotFound(err) {
			s.logger.Info("login failed", "email", req.Email, "reason", "unknown email")
			return nil, nil, domain.ErrAuthentication(genericLoginFailure)
		}
		return nil, nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Info("login failed", "email", req.Email, "reason", "bad password")
		return nil, nil, domain.ErrAuthentication(genericLoginFailure)
	}

	session, err := s.createSession(ctx, account)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("login succeeded", "email", account.Email)
	return account, session, nil
}

// Logout destroys the session. Logging out a session that no longer exists
// succeeds: the client ends up anonymous either way.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		if isNotFound(err) {
			return nil
		}
		return err
	}
	return nil
}

// Promote grants the admin role to the target account. The acting principal
// must be an admin.
func (s *AuthService) Promote(ctx context.Context, targetEmail string) error {
	return s.setRole(ctx, targetEmail, domain.RoleAdmin)
}

// Demote revokes the admin role from the target account. The acting principal
// must be an admin.
func (s *AuthService) Demote(ctx context.Context, targetEmail string) error {
	return s.setRole(ctx, targetEmail, domain.RoleUser)
}

// setRole updates the target account's role. Updating an absent email is a
// no-op success (unconditional-update semantics).
//
// Open sessions keep the role they were created with; the one exception is
// the acting admin changing their own role, which updates their session in
// place so the new privilege applies without re-login.
func (s *AuthService) setRole(ctx context.Context, targetEmail, role string) error {
	acting, ok := domain.PrincipalFromContext(ctx)
	if !ok {
		return domain.ErrAccessDenied("authentication required")
	}
	if !acting.IsAdmin() {
		return domain.ErrAccessDenied("admin role required")
	}

	changed, err := s.accounts.UpdateRole(ctx, targetEmail, role)
	if err != nil {
		return err
	}

	if changed && acting.Email == targetEmail {
		if err := s.sessions.UpdateRole(ctx, acting.SessionID, role); err != nil {
			return err
		}
	}

	s.logger.Info("role updated", "actor", acting.Email, "target", targetEmail, "role", role, "changed", changed)
	return nil
}

// ListAccounts returns all accounts for the admin area.
func (s *AuthService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	acting, ok := domain.PrincipalFromContext(ctx)
	if !ok {
		return nil, domain.ErrAccessDenied("authentication required")
	}
	if !acting.IsAdmin() {
		return nil, domain.ErrAccessDenied("admin role required")
	}
	return s.accounts.List(ctx)
}

// PurgeExpiredSessions removes expired session rows in bulk. Expiry is
// otherwise detected lazily on read; this keeps the table tidy.
func (s *AuthService) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	return s.sessions.DeleteExpired(ctx)
}

// SessionTTL returns the configured session lifetime. The transport layer
// uses it for the cookie MaxAge so cookie and server-side state expire
// together.
func (s *AuthService) SessionTTL() time.Duration {
	return s.ttl
}

func (s *AuthService) createSession(ctx context.Context, account *domain.Account) (*domain.Session, error) {
	id, err := domain.NewSessionID()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	session := &domain.Session{
		ID:        id,
		Email:     account.Email,
		Name:      account.Name,
		Role:      account.Role,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func isNotFound(err error) bool {
	var notFound *domain.NotFoundError
	return errors.As(err, &notFound)
}
