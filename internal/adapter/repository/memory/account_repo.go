package memory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/iho/minibank/internal/domain"
	"github.com/iho/minibank/internal/usecase"
)

// AccountRepository implements usecase.AccountRepository over the Store.
type AccountRepository struct {
	store *Store
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(store *Store) *AccountRepository {
	return &AccountRepository{store: store}
}

// CreateTx inserts an account inside an open transaction. The username
// must not already be taken; comparison is case-sensitive.
func (r *AccountRepository) CreateTx(ctx context.Context, tx usecase.Transaction, account *domain.Account) error {
	if _, err := r.store.claim(tx); err != nil {
		return err
	}

	if _, exists := r.store.usernames[account.Username]; exists {
		return domain.ErrUsernameTaken
	}

	r.store.accounts[account.ID] = cloneAccount(account)
	r.store.usernames[account.Username] = account.ID
	return nil
}

// GetByID returns a copy of the account with the given ID.
func (r *AccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.getByID(id)
}

// GetByUsername returns a copy of the account with the given username.
func (r *AccountRepository) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.getByUsername(username)
}

// GetByIDTx is GetByID inside an open transaction.
func (r *AccountRepository) GetByIDTx(ctx context.Context, tx usecase.Transaction, id string) (*domain.Account, error) {
	if _, err := r.store.claim(tx); err != nil {
		return nil, err
	}
	return r.getByID(id)
}

// GetByUsernameTx is GetByUsername inside an open transaction.
func (r *AccountRepository) GetByUsernameTx(ctx context.Context, tx usecase.Transaction, username string) (*domain.Account, error) {
	if _, err := r.store.claim(tx); err != nil {
		return nil, err
	}
	return r.getByUsername(username)
}

// UpdateBalance replaces the balance of an account inside an open
// transaction.
func (r *AccountRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal) error {
	if _, err := r.store.claim(tx); err != nil {
		return err
	}

	account, ok := r.store.accounts[id]
	if !ok {
		return domain.ErrAccountNotFound
	}

	account.Balance = balance
	return nil
}

// List returns accounts ordered by creation time.
func (r *AccountRepository) List(ctx context.Context, limit, offset int) ([]*domain.Account, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	accounts := make([]*domain.Account, 0, len(r.store.accounts))
	for _, a := range r.store.accounts {
		accounts = append(accounts, cloneAccount(a))
	}

	sort.Slice(accounts, func(i, j int) bool {
		if accounts[i].CreatedAt.Equal(accounts[j].CreatedAt) {
			return accounts[i].ID < accounts[j].ID
		}
		return accounts[i].CreatedAt.Before(accounts[j].CreatedAt)
	})

	return paginate(accounts, limit, offset), nil
}

func (r *AccountRepository) getByID(id string) (*domain.Account, error) {
	account, ok := r.store.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return cloneAccount(account), nil
}

func (r *AccountRepository) getByUsername(username string) (*domain.Account, error) {
	id, ok := r.store.usernames[username]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return r.getByID(id)
}

// paginate slices a sorted result set.
func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}

	end := offset + limit
	if limit <= 0 || end > len(items) {
		end = len(items)
	}

	return items[offset:end]
}
