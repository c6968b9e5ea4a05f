// Package app provides application-level wiring and dependency injection
// for the member portal.
package app

import (
	"context"
	"database/sql"
	"log/slog"

	"member-portal/internal/config"
	"member-portal/internal/db/repository"
	"member-portal/internal/domain"
	"member-portal/internal/service"
)

// Deps holds the external dependencies that main() must provide: database
// handles, config, and the root logger.
type Deps struct {
	Cfg     *config.Config
	WriteDB *sql.DB
	ReadDB  *sql.DB
	Logger  *slog.Logger
}

// App holds the fully-wired application.
type App struct {
	Auth     *service.AuthService
	Accounts domain.AccountRepository
	Sessions domain.SessionRepository
}

// New wires repositories and services from the provided deps and runs the
// optional admin seed.
func New(ctx context.Context, deps Deps) (*App, error) {
	cfg := deps.Cfg

	// Both repos write: accounts on signup/role change, sessions on every
	// login/logout and on lazy expiry.
	accountRepo := repository.NewAccountRepo(deps.WriteDB)
	sessionRepo := repository.NewSessionRepo(deps.WriteDB)

	authSvc := service.NewAuthService(
		accountRepo, sessionRepo,
		cfg.SessionTTL,
		deps.Logger.With("component", "auth"),
	)

	if cfg.AdminEmail != "" {
		if err := seedAdmin(ctx, accountRepo, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			deps.Logger.Warn("seed admin failed", "error", err)
		}
	}

	return &App{
		Auth:     authSvc,
		Accounts: accountRepo,
		Sessions: sessionRepo,
	}, nil
}
