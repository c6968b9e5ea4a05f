package domain

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// Session is the server-side session state for one signed-in browser.
// Name and Role are snapshots of the account at session creation; they are
// not refreshed when the account changes, except for the admin self-update
// rule in AuthService.Promote/Demote.
type Session struct {
	ID        string // opaque capability token, held by the client in a cookie
	Email     string
	Name      string
	Role      string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session has passed its expiry at the given time.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// NewSessionID generates a cryptographically secure session token.
func NewSessionID() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generate session id: %w", err)
	}
	return hex.EncodeToString(raw), nil
}
