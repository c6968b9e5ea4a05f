package domain

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Account roles. A new account always starts as RoleUser.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Account represents a registered user, keyed by email.
type Account struct {
	Email        string
	Name         string
	PasswordHash string
	Role         string // "user" or "admin"
	CreatedAt    time.Time
}

// IsAdmin reports whether the account holds the admin role.
func (a *Account) IsAdmin() bool { return a.Role == RoleAdmin }

var validate = validator.New(validator.WithRequiredStructEnabled())

// SignupRequest holds parameters for creating a new account.
type SignupRequest struct {
	Name     string `validate:"required,max=30"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

// Validate checks that the request is well-formed.
func (r *SignupRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = normalizeEmail(r.Email)
	if err := validate.Struct(r); err != nil {
		return signupValidationError(err)
	}
	return nil
}

// LoginRequest holds parameters for authenticating an account.
type LoginRequest struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// Validate checks that the request is well-formed.
func (r *LoginRequest) Validate() error {
	r.Email = normalizeEmail(r.Email)
	if err := validate.Struct(r); err != nil {
		return ErrValidation("email and password are required")
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// signupValidationError converts the first field error into a message the
// signup form can render inline.
func signupValidationError(err error) error {
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return ErrValidation("invalid input")
	}
	fe := errs[0]
	switch fe.Field() {
	case "Name":
		if fe.Tag() == "max" {
			return ErrValidation("name must be at most 30 characters")
		}
		return ErrValidation("name is required")
	case "Email":
		return ErrValidation("a valid email address is required")
	case "Password":
		if fe.Tag() == "min" {
			return ErrValidation("password must be at least 6 characters")
		}
		return ErrValidation("password is required")
	}
	return ErrValidation("invalid input")
}
