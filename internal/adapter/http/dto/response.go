package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/minibank/internal/domain"
)

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID        string          `json:"id"`
	Username  string          `json:"username"`
	Email     string          `json:"email"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
}

// AccountFromDomain converts a domain account to a response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:        a.ID,
		Username:  a.Username,
		Email:     a.Email,
		Balance:   a.Balance,
		CreatedAt: a.CreatedAt,
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// SessionResponse represents an authenticated session.
type SessionResponse struct {
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expires_at"`
	Account   *AccountResponse `json:"account"`
}

// SessionFromDomain converts a session and its account to a response.
func SessionFromDomain(s *domain.Session, a *domain.Account) *SessionResponse {
	return &SessionResponse{
		Token:     s.Token,
		ExpiresAt: s.ExpiresAt,
		Account:   AccountFromDomain(a),
	}
}

// BalanceResponse represents a balance lookup result.
type BalanceResponse struct {
	AccountID string          `json:"account_id"`
	Balance   decimal.Decimal `json:"balance"`
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID          string          `json:"id"`
	SenderID    string          `json:"sender_id"`
	ReceiverID  string          `json:"receiver_id"`
	Amount      decimal.Decimal `json:"amount"`
	Timestamp   time.Time       `json:"timestamp"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Status      string          `json:"status"`
}

// TransactionFromDomain converts a domain transaction to a response.
func TransactionFromDomain(t *domain.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:          t.ID,
		SenderID:    t.SenderID,
		ReceiverID:  t.ReceiverID,
		Amount:      t.Amount,
		Timestamp:   t.Timestamp,
		Type:        string(t.Type),
		Description: t.Description,
		Status:      string(t.Status),
	}
}

// TransactionsFromDomain converts domain transactions to responses.
func TransactionsFromDomain(txns []*domain.Transaction) []*TransactionResponse {
	result := make([]*TransactionResponse, len(txns))
	for i, t := range txns {
		result[i] = TransactionFromDomain(t)
	}
	return result
}

// SecurityLogResponse represents a security log in API responses.
type SecurityLogResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	ActivityType string    `json:"activity_type"`
	Timestamp    time.Time `json:"timestamp"`
	Description  string    `json:"description"`
	IPAddress    string    `json:"ip_address"`
	Severity     string    `json:"severity"`
}

// SecurityLogFromDomain converts a domain security log to a response.
func SecurityLogFromDomain(l *domain.SecurityLog) *SecurityLogResponse {
	return &SecurityLogResponse{
		ID:           l.ID,
		UserID:       l.UserID,
		ActivityType: string(l.ActivityType),
		Timestamp:    l.Timestamp,
		Description:  l.Description,
		IPAddress:    l.IPAddress,
		Severity:     string(l.Severity),
	}
}

// SecurityLogsFromDomain converts domain security logs to responses.
func SecurityLogsFromDomain(logs []*domain.SecurityLog) []*SecurityLogResponse {
	result := make([]*SecurityLogResponse, len(logs))
	for i, l := range logs {
		result[i] = SecurityLogFromDomain(l)
	}
	return result
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
