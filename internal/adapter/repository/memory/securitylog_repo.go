package memory

import (
	"context"
	"sort"

	"github.com/iho/minibank/internal/domain"
	"github.com/iho/minibank/internal/usecase"
)

// SecurityLogRepository implements usecase.SecurityLogRepository over the
// Store. Append-only, like the transaction log.
type SecurityLogRepository struct {
	store *Store
}

// NewSecurityLogRepository creates a new SecurityLogRepository.
func NewSecurityLogRepository(store *Store) *SecurityLogRepository {
	return &SecurityLogRepository{store: store}
}

// Append appends a security log on its own.
func (r *SecurityLogRepository) Append(ctx context.Context, log *domain.SecurityLog) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.securityLogs = append(r.store.securityLogs, cloneSecurityLog(log))
	return nil
}

// AppendTx appends a security log inside an open transaction.
func (r *SecurityLogRepository) AppendTx(ctx context.Context, tx usecase.Transaction, log *domain.SecurityLog) error {
	if _, err := r.store.claim(tx); err != nil {
		return err
	}

	r.store.securityLogs = append(r.store.securityLogs, cloneSecurityLog(log))
	return nil
}

// ListByUser returns security logs for an account, most recent first.
func (r *SecurityLogRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.SecurityLog, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var result []*domain.SecurityLog
	for _, log := range r.store.securityLogs {
		if log.UserID == userID {
			result = append(result, cloneSecurityLog(log))
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Timestamp.After(result[j].Timestamp)
	})

	return paginate(result, limit, offset), nil
}
