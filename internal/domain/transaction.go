package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a ledger transaction.
type TransactionType string

const (
	TransactionTypeTransfer   TransactionType = "transfer"
	TransactionTypeDeposit    TransactionType = "deposit"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
)

// TransactionStatus is the lifecycle state of a transaction.
type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// Transaction is an immutable record of a completed money movement.
// Deposits and withdrawals reference the same account on both sides.
type Transaction struct {
	ID          string
	SenderID    string
	ReceiverID  string
	Amount      decimal.Decimal
	Timestamp   time.Time
	Type        TransactionType
	Description string
	Status      TransactionStatus
}

// Validate validates the transaction before it is appended to the log.
// Self-transfers are allowed; they net to zero.
func (t *Transaction) Validate() error {
	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if (t.Type == TransactionTypeDeposit || t.Type == TransactionTypeWithdrawal) && t.SenderID != t.ReceiverID {
		return ErrInvalidTransactionParties
	}

	return nil
}

// Involves reports whether the account appears on either side.
func (t *Transaction) Involves(accountID string) bool {
	return t.SenderID == accountID || t.ReceiverID == accountID
}
