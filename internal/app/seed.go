package app

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"member-portal/internal/domain"
)

// seedAdmin creates the bootstrap admin account from config. It is skipped
// as soon as any account exists, so a reconfigured ADMIN_EMAIL never touches
// a live database.
func seedAdmin(ctx context.Context, accounts domain.AccountRepository, email, password string) error {
	existing, err := accounts.List(ctx)
	if err != nil {
		return fmt.Errorf("list accounts: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	if err := accounts.Create(ctx, &domain.Account{
		Email:        email,
		Name:         "Administrator",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	}); err != nil {
		return fmt.Errorf("create admin account: %w", err)
	}
	return nil
}
