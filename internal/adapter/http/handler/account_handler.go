package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/iho/minibank/internal/adapter/http/dto"
	"github.com/iho/minibank/internal/domain"
	"github.com/iho/minibank/internal/infrastructure/metrics"
	"github.com/iho/minibank/internal/usecase"
)

// AccountService is the account surface the handler depends on.
type AccountService interface {
	GetAccount(ctx context.Context, id string) (*domain.Account, error)
	ListAccounts(ctx context.Context, limit, offset int) ([]*domain.Account, error)
	GetBalance(ctx context.Context, accountID string) (decimal.Decimal, error)
	Deposit(ctx context.Context, input usecase.DepositInput) (*domain.Transaction, error)
	Withdraw(ctx context.Context, input usecase.DepositInput) (*domain.Transaction, error)
}

// AccountHandler handles account-related HTTP requests.
type AccountHandler struct {
	ledger  AccountService
	metrics *metrics.Metrics
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(ledger AccountService, m *metrics.Metrics) *AccountHandler {
	return &AccountHandler{ledger: ledger, metrics: m}
}

// Get retrieves an account by ID.
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	account, err := h.ledger.GetAccount(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get account", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountFromDomain(account))
}

// List lists accounts.
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	accounts, err := h.ledger.ListAccounts(r.Context(), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list accounts", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountsFromDomain(accounts))
}

// GetBalance returns the account balance. Unknown accounts read as zero,
// matching the dashboard contract.
func (h *AccountHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	balance, err := h.ledger.GetBalance(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get balance", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BalanceResponse{AccountID: id, Balance: balance})
}

// Deposit credits the account.
func (h *AccountHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	h.adjust(w, r, h.ledger.Deposit, func() {
		if h.metrics != nil {
			h.metrics.DepositsCompleted.Inc()
		}
	})
}

// Withdraw debits the account.
func (h *AccountHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	h.adjust(w, r, h.ledger.Withdraw, func() {
		if h.metrics != nil {
			h.metrics.WithdrawalsDone.Inc()
		}
	})
}

func (h *AccountHandler) adjust(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, input usecase.DepositInput) (*domain.Transaction, error),
	onSuccess func(),
) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	var req dto.BalanceAdjustmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	txn, err := op(r.Context(), req.ToUseCaseInput(id))
	if err != nil {
		writeError(w, mapDomainError(err), "operation failed", err.Error())
		return
	}

	onSuccess()
	writeJSON(w, http.StatusCreated, dto.TransactionFromDomain(txn))
}
