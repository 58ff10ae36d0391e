package memory

import (
	"context"

	"github.com/iho/minibank/internal/domain"
	"github.com/iho/minibank/internal/usecase"
)

// CredentialRepository implements usecase.CredentialRepository over the
// Store. Passwords are held as plain text because this is a demo data
// layer; nothing here is suitable for real credentials.
type CredentialRepository struct {
	store *Store
}

// NewCredentialRepository creates a new CredentialRepository.
func NewCredentialRepository(store *Store) *CredentialRepository {
	return &CredentialRepository{store: store}
}

// SetTx stores a credential inside an open transaction.
func (r *CredentialRepository) SetTx(ctx context.Context, tx usecase.Transaction, username, password string) error {
	if _, err := r.store.claim(tx); err != nil {
		return err
	}

	r.store.credentials[username] = password
	return nil
}

// Get returns the stored password for a username.
func (r *CredentialRepository) Get(ctx context.Context, username string) (string, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	password, ok := r.store.credentials[username]
	if !ok {
		return "", domain.ErrInvalidCredentials
	}

	return password, nil
}
