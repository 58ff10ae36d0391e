package usecase

import (
	"context"

	"github.com/iho/minibank/internal/domain"
)

// SecurityUseCase exposes the security-event log.
type SecurityUseCase struct {
	logRepo SecurityLogRepository
}

// NewSecurityUseCase creates a new SecurityUseCase.
func NewSecurityUseCase(logRepo SecurityLogRepository) *SecurityUseCase {
	return &SecurityUseCase{logRepo: logRepo}
}

// ListSecurityLogsInput represents input for listing security logs.
type ListSecurityLogsInput struct {
	AccountID string
	Limit     int
	Offset    int
}

// ListByAccount lists security logs for an account, most recent first.
func (uc *SecurityUseCase) ListByAccount(ctx context.Context, input ListSecurityLogsInput) ([]*domain.SecurityLog, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)
	return uc.logRepo.ListByUser(ctx, input.AccountID, limit, offset)
}
