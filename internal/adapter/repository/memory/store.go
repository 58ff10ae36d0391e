package memory

import (
	"sync"

	"github.com/iho/minibank/internal/domain"
)

// Store owns every collection of the ledger: accounts, the append-only
// transaction log, the append-only security-event log, demo credentials
// and sessions. A single mutex guards all of them, so every store
// transaction is one critical section and no observer can ever see a
// half-applied transfer.
type Store struct {
	mu sync.RWMutex

	accounts     map[string]*domain.Account
	usernames    map[string]string // username -> account ID, case-sensitive
	transactions []*domain.Transaction
	securityLogs []*domain.SecurityLog
	credentials  map[string]string // username -> plain-text demo password
	sessions     map[string]*domain.Session
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		accounts:    make(map[string]*domain.Account),
		usernames:   make(map[string]string),
		credentials: make(map[string]string),
		sessions:    make(map[string]*domain.Session),
	}
}

func cloneAccount(a *domain.Account) *domain.Account {
	c := *a
	return &c
}

func cloneTransaction(t *domain.Transaction) *domain.Transaction {
	c := *t
	return &c
}

func cloneSecurityLog(l *domain.SecurityLog) *domain.SecurityLog {
	c := *l
	return &c
}
