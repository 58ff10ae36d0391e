package domain

import "time"

// Session maps an opaque token to an authenticated account. Tokens are
// random identifiers, not signed credentials.
type Session struct {
	Token     string
	AccountID string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session has passed its expiry.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
