package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/minibank/internal/adapter/http/dto"
	"github.com/iho/minibank/internal/domain"
	"github.com/iho/minibank/internal/infrastructure/metrics"
	"github.com/iho/minibank/internal/usecase"
)

// TransferService is the transfer surface the handler depends on.
type TransferService interface {
	Transfer(ctx context.Context, input usecase.TransferInput) (*domain.Transaction, error)
	GetTransaction(ctx context.Context, id string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, input usecase.ListTransactionsInput) ([]*domain.Transaction, error)
}

// TransferHandler handles transfer-related HTTP requests.
type TransferHandler struct {
	ledger  TransferService
	metrics *metrics.Metrics
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(ledger TransferService, m *metrics.Metrics) *TransferHandler {
	return &TransferHandler{ledger: ledger, metrics: m}
}

// Create executes a fund transfer.
func (h *TransferHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	txn, err := h.ledger.Transfer(r.Context(), req.ToUseCaseInput(clientIP(r)))
	if err != nil {
		if h.metrics != nil {
			h.metrics.TransferErrors.WithLabelValues(errorType(err)).Inc()
		}
		writeError(w, mapDomainError(err), "failed to create transfer", err.Error())
		return
	}

	if h.metrics != nil {
		h.metrics.TransfersCompleted.Inc()
		amount, _ := txn.Amount.Float64()
		h.metrics.TransferAmount.Observe(amount)
		h.metrics.SecurityEvents.WithLabelValues(string(domain.ActivityTransfer), string(domain.SeverityLow)).Inc()
	}

	writeJSON(w, http.StatusCreated, dto.TransactionFromDomain(txn))
}

// Get retrieves a transaction by ID.
func (h *TransferHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing transaction ID", "")
		return
	}

	txn, err := h.ledger.GetTransaction(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get transaction", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionFromDomain(txn))
}

// ListByAccount lists transactions where the account is sender or
// receiver, most recent first.
func (h *TransferHandler) ListByAccount(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")
	if accountID == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	txns, err := h.ledger.ListTransactions(r.Context(), usecase.ListTransactionsInput{
		AccountID: accountID,
		Limit:     parseIntQuery(r, "limit", 20),
		Offset:    parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list transactions", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionsFromDomain(txns))
}

// errorType labels transfer failures for metrics.
func errorType(err error) string {
	switch err {
	case domain.ErrInvalidAmount:
		return "invalid_amount"
	case domain.ErrInsufficientFunds:
		return "insufficient_funds"
	case domain.ErrAccountNotFound:
		return "account_not_found"
	default:
		return "other"
	}
}
