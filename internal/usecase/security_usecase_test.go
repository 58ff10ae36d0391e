package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/iho/minibank/internal/domain"
	"github.com/iho/minibank/internal/usecase"
	"github.com/iho/minibank/internal/usecase/mocks"
)

func TestSecurityUseCase_ListByAccount(t *testing.T) {
	logRepo := mocks.NewMockSecurityLogRepository()
	logRepo.ListByUserFunc = func(ctx context.Context, userID string, limit, offset int) ([]*domain.SecurityLog, error) {
		if userID != "1" {
			t.Errorf("unexpected user %q", userID)
		}
		if limit != 50 || offset != 0 {
			t.Errorf("expected default pagination, got limit=%d offset=%d", limit, offset)
		}
		return []*domain.SecurityLog{
			{ID: "s2", UserID: "1", ActivityType: domain.ActivityTransfer, Timestamp: time.Now()},
			{ID: "s1", UserID: "1", ActivityType: domain.ActivityLogin, Timestamp: time.Now().Add(-time.Hour)},
		}, nil
	}

	uc := usecase.NewSecurityUseCase(logRepo)

	logs, err := uc.ListByAccount(context.Background(), usecase.ListSecurityLogsInput{AccountID: "1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(logs) != 2 {
		t.Errorf("expected 2 logs, got %d", len(logs))
	}
}
