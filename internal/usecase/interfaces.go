package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/minibank/internal/domain"
)

// AccountRepository defines data access for accounts.
type AccountRepository interface {
	CreateTx(ctx context.Context, tx Transaction, account *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)
	GetByIDTx(ctx context.Context, tx Transaction, id string) (*domain.Account, error)
	GetByUsernameTx(ctx context.Context, tx Transaction, username string) (*domain.Account, error)
	UpdateBalance(ctx context.Context, tx Transaction, id string, balance decimal.Decimal) error
	List(ctx context.Context, limit, offset int) ([]*domain.Account, error)
}

// TransactionRepository defines data access for the append-only
// transaction log.
type TransactionRepository interface {
	AppendTx(ctx context.Context, tx Transaction, txn *domain.Transaction) error
	GetByID(ctx context.Context, id string) (*domain.Transaction, error)
	ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.Transaction, error)
}

// SecurityLogRepository defines data access for the append-only
// security-event log.
type SecurityLogRepository interface {
	Append(ctx context.Context, log *domain.SecurityLog) error
	AppendTx(ctx context.Context, tx Transaction, log *domain.SecurityLog) error
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.SecurityLog, error)
}

// CredentialRepository stores the demo plain-text credentials keyed by
// username. Accounts with no stored credential can never authenticate.
type CredentialRepository interface {
	SetTx(ctx context.Context, tx Transaction, username, password string) error
	Get(ctx context.Context, username string) (string, error)
}

// SessionStore maps opaque tokens to authenticated accounts.
type SessionStore interface {
	Create(ctx context.Context, session *domain.Session) error
	Get(ctx context.Context, token string) (*domain.Session, error)
	Delete(ctx context.Context, token string) error
}

// Transaction represents a store transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle. For the in-memory
// store, a transaction is the single critical section covering balance
// mutations and log appends.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
