package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/minibank/internal/adapter/http/dto"
	"github.com/iho/minibank/internal/domain"
	"github.com/iho/minibank/internal/usecase"
)

// SecurityService is the security-log surface the handler depends on.
type SecurityService interface {
	ListByAccount(ctx context.Context, input usecase.ListSecurityLogsInput) ([]*domain.SecurityLog, error)
}

// SecurityHandler serves the security-event log.
type SecurityHandler struct {
	security SecurityService
}

// NewSecurityHandler creates a new SecurityHandler.
func NewSecurityHandler(security SecurityService) *SecurityHandler {
	return &SecurityHandler{security: security}
}

// ListByAccount lists security logs for an account, most recent first.
func (h *SecurityHandler) ListByAccount(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")
	if accountID == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	logs, err := h.security.ListByAccount(r.Context(), usecase.ListSecurityLogsInput{
		AccountID: accountID,
		Limit:     parseIntQuery(r, "limit", 20),
		Offset:    parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list security logs", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SecurityLogsFromDomain(logs))
}
