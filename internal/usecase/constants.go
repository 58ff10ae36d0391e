package usecase

import "time"

const (
	// StartingBalance is credited to every account created on signup.
	StartingBalance = "1000.00"

	// DefaultSessionTTL is how long a session token stays valid.
	DefaultSessionTTL = 24 * time.Hour

	// IdempotencyKeyTTL is how long idempotency keys are cached.
	IdempotencyKeyTTL = 24 * time.Hour
)
