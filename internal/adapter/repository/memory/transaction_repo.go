package memory

import (
	"context"
	"sort"

	"github.com/iho/minibank/internal/domain"
	"github.com/iho/minibank/internal/usecase"
)

// TransactionRepository implements usecase.TransactionRepository over the
// Store. The log is append-only; records are never updated or deleted.
type TransactionRepository struct {
	store *Store
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(store *Store) *TransactionRepository {
	return &TransactionRepository{store: store}
}

// AppendTx appends a transaction record inside an open transaction.
func (r *TransactionRepository) AppendTx(ctx context.Context, tx usecase.Transaction, txn *domain.Transaction) error {
	if _, err := r.store.claim(tx); err != nil {
		return err
	}

	r.store.transactions = append(r.store.transactions, cloneTransaction(txn))
	return nil
}

// GetByID returns a copy of the transaction with the given ID.
func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, txn := range r.store.transactions {
		if txn.ID == id {
			return cloneTransaction(txn), nil
		}
	}

	return nil, domain.ErrTransactionNotFound
}

// ListByAccount returns transactions where the account is sender or
// receiver, most recent first.
func (r *TransactionRepository) ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.Transaction, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var result []*domain.Transaction
	for _, txn := range r.store.transactions {
		if txn.Involves(accountID) {
			result = append(result, cloneTransaction(txn))
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Timestamp.After(result[j].Timestamp)
	})

	return paginate(result, limit, offset), nil
}
