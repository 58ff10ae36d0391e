package memory

import (
	"context"
	"errors"

	"github.com/iho/minibank/internal/domain"
	"github.com/iho/minibank/internal/usecase"
)

// ErrForeignTransaction is returned when a repository receives a
// transaction that was not started by its own store.
var ErrForeignTransaction = errors.New("transaction does not belong to this store")

// TxManager implements usecase.TransactionManager over the Store's mutex.
// Begin takes the store lock and snapshots mutable state; Commit releases
// the lock, Rollback restores the snapshot first. Holding the lock for
// the whole transaction makes each operation an atomic, non-preemptible
// step for every other caller.
type TxManager struct {
	store *Store
}

// NewTxManager creates a new TxManager.
func NewTxManager(store *Store) *TxManager {
	return &TxManager{store: store}
}

// Begin starts a store transaction.
func (m *TxManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	m.store.mu.Lock()
	return &memTx{store: m.store, snap: m.store.snapshot()}, nil
}

type snapshot struct {
	accounts    map[string]*domain.Account
	usernames   map[string]string
	credentials map[string]string
	txnLen      int
	logLen      int
}

// snapshot copies the state a rollback must restore. Caller holds the lock.
func (s *Store) snapshot() *snapshot {
	snap := &snapshot{
		accounts:    make(map[string]*domain.Account, len(s.accounts)),
		usernames:   make(map[string]string, len(s.usernames)),
		credentials: make(map[string]string, len(s.credentials)),
		txnLen:      len(s.transactions),
		logLen:      len(s.securityLogs),
	}

	for id, a := range s.accounts {
		snap.accounts[id] = cloneAccount(a)
	}
	for name, id := range s.usernames {
		snap.usernames[name] = id
	}
	for name, pw := range s.credentials {
		snap.credentials[name] = pw
	}

	return snap
}

type memTx struct {
	store *Store
	snap  *snapshot
	done  bool
}

// Commit finishes the transaction, keeping all mutations.
func (t *memTx) Commit(ctx context.Context) error {
	if t.done {
		return nil
	}
	t.done = true
	t.snap = nil
	t.store.mu.Unlock()
	return nil
}

// Rollback restores the snapshot taken at Begin. Calling Rollback after
// Commit is a no-op, so it is safe to defer.
func (t *memTx) Rollback(ctx context.Context) error {
	if t.done {
		return nil
	}
	t.done = true

	t.store.accounts = t.snap.accounts
	t.store.usernames = t.snap.usernames
	t.store.credentials = t.snap.credentials
	t.store.transactions = t.store.transactions[:t.snap.txnLen]
	t.store.securityLogs = t.store.securityLogs[:t.snap.logLen]
	t.snap = nil

	t.store.mu.Unlock()
	return nil
}

// claim checks the transaction belongs to this store and is still open.
func (s *Store) claim(tx usecase.Transaction) (*memTx, error) {
	t, ok := tx.(*memTx)
	if !ok || t.store != s || t.done {
		return nil, ErrForeignTransaction
	}
	return t, nil
}
