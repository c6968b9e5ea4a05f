package domain

import "context"

type principalKey struct{}

// ContextPrincipal carries the authenticated identity through request context.
// Its presence in a context means the request belongs to a live session.
type ContextPrincipal struct {
	SessionID string
	Email     string
	Name      string
	Role      string // "user" or "admin"
}

// IsAdmin reports whether the principal holds the admin role.
func (p ContextPrincipal) IsAdmin() bool { return p.Role == RoleAdmin }

// WithPrincipal stores a ContextPrincipal in the context.
func WithPrincipal(ctx context.Context, p ContextPrincipal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext extracts the ContextPrincipal from the context.
func PrincipalFromContext(ctx context.Context) (ContextPrincipal, bool) {
	p, ok := ctx.Value(principalKey{}).(ContextPrincipal)
	return p, ok
}
