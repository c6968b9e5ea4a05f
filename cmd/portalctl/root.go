package main

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"

	internaldb "member-portal/internal/db"
	"member-portal/internal/db/repository"
	"member-portal/internal/domain"
)

func newRootCmd() *cobra.Command {
	var dbPath string

	rootCmd := &cobra.Command{
		Use:           "portalctl",
		Short:         "Member portal operator CLI",
		Long:          "Operator tool for the member portal database: create the bootstrap admin, change account roles, and clean up expired sessions.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to the portal SQLite database (defaults to DB_PATH or portal.sqlite)")

	rootCmd.AddCommand(newCreateAdminCmd(&dbPath))
	rootCmd.AddCommand(newSetRoleCmd(&dbPath, "promote", domain.RoleAdmin))
	rootCmd.AddCommand(newSetRoleCmd(&dbPath, "demote", domain.RoleUser))
	rootCmd.AddCommand(newListCmd(&dbPath))
	rootCmd.AddCommand(newSessionsCmd(&dbPath))

	return rootCmd
}

// openDB opens a single write pool and runs migrations, so portalctl works
// against a fresh database file too.
func openDB(dbPath string) (*sql.DB, error) {
	path := dbPath
	if path == "" {
		path = os.Getenv("DB_PATH")
	}
	if path == "" {
		path = "portal.sqlite"
	}
	db, err := internaldb.OpenSQLite(path, "write", 0)
	if err != nil {
		return nil, err
	}
	if err := internaldb.RunMigrations(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func newCreateAdminCmd(dbPath *string) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "create-admin EMAIL",
		Short: "Create an account with the admin role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			email := strings.ToLower(strings.TrimSpace(args[0]))

			password, err := promptPassword()
			if err != nil {
				return err
			}
			req := domain.SignupRequest{Name: name, Email: email, Password: password}
			if err := req.Validate(); err != nil {
				return err
			}

			db, err := openDB(*dbPath)
			if err != nil {
				return err
			}
			defer db.Close()

			hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			accounts := repository.NewAccountRepo(db)
			account := &domain.Account{
				Email:        email,
				Name:         name,
				PasswordHash: string(hash),
				Role:         domain.RoleAdmin,
			}
			if err := accounts.Create(cmd.Context(), account); err != nil {
				var conflict *domain.ConflictError
				if errors.As(err, &conflict) {
					return fmt.Errorf("an account for %s already exists (use promote instead)", email)
				}
				return err
			}
			fmt.Printf("Admin account %s created.\n", email)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "Administrator", "display name for the admin account")
	return cmd
}

func newSetRoleCmd(dbPath *string, use, role string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " EMAIL",
		Short: fmt.Sprintf("Set an account's role to %q", role),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			email := strings.ToLower(strings.TrimSpace(args[0]))

			db, err := openDB(*dbPath)
			if err != nil {
				return err
			}
			defer db.Close()

			// Operator path: writes the store directly. Open sessions keep
			// their cached role until they expire or sign in again.
			accounts := repository.NewAccountRepo(db)
			changed, err := accounts.UpdateRole(cmd.Context(), email, role)
			if err != nil {
				return err
			}
			if !changed {
				fmt.Printf("No account for %s (or role already %q).\n", email, role)
				return nil
			}
			fmt.Printf("Account %s is now %q.\n", email, role)
			return nil
		},
	}
}

func newListCmd(dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := openDB(*dbPath)
			if err != nil {
				return err
			}
			defer db.Close()

			accounts, err := repository.NewAccountRepo(db).List(cmd.Context())
			if err != nil {
				return err
			}
			if len(accounts) == 0 {
				fmt.Println("No accounts.")
				return nil
			}
			for _, a := range accounts {
				fmt.Printf("%-30s  %-20s  %s\n", a.Email, a.Name, a.Role)
			}
			return nil
		},
	}
}

func newSessionsCmd(dbPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Session maintenance",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "gc",
		Short: "Delete expired sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := openDB(*dbPath)
			if err != nil {
				return err
			}
			defer db.Close()

			n, err := repository.NewSessionRepo(db).DeleteExpired(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("Deleted %d expired session(s).\n", n)
			return nil
		},
	})
	return cmd
}

func promptPassword() (string, error) {
	fmt.Print("Password: ")
	first, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	fmt.Print("Confirm password: ")
	second, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	if string(first) != string(second) {
		return "", fmt.Errorf("passwords do not match")
	}
	return string(first), nil
}
