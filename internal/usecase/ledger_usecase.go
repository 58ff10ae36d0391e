package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/minibank/internal/domain"
)

// LedgerUseCase handles balances, transfers and transaction history.
type LedgerUseCase struct {
	txManager   TransactionManager
	accountRepo AccountRepository
	txnRepo     TransactionRepository
	logRepo     SecurityLogRepository
	idGen       IDGenerator
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	txnRepo TransactionRepository,
	logRepo SecurityLogRepository,
	idGen IDGenerator,
) *LedgerUseCase {
	return &LedgerUseCase{
		txManager:   txManager,
		accountRepo: accountRepo,
		txnRepo:     txnRepo,
		logRepo:     logRepo,
		idGen:       idGen,
	}
}

// GetBalance returns the current balance, or zero when the account does
// not exist. The lenient default mirrors the dashboard contract: an
// unknown account reads as an empty one.
func (uc *LedgerUseCase) GetBalance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	account, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return decimal.Zero, nil
	}

	return account.Balance, nil
}

// TransferInput represents a fund transfer request. The sender is
// addressed by account ID, the receiver by username.
type TransferInput struct {
	SenderID         string
	ReceiverUsername string
	Amount           decimal.Decimal
	Description      string
	IPAddress        string
}

// Transfer moves funds between two accounts as one atomic step: both
// balance mutations, the transaction append and the security-log append
// happen inside a single store transaction. A failed transfer leaves no
// trace. Sender and receiver may coincide, producing a net-zero transfer.
func (uc *LedgerUseCase) Transfer(ctx context.Context, input TransferInput) (*domain.Transaction, error) {
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	sender, err := uc.accountRepo.GetByIDTx(ctx, tx, input.SenderID)
	if err != nil {
		return nil, domain.ErrAccountNotFound
	}

	receiver, err := uc.accountRepo.GetByUsernameTx(ctx, tx, input.ReceiverUsername)
	if err != nil {
		return nil, domain.ErrAccountNotFound
	}

	if err := sender.ValidateDebit(input.Amount); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	if sender.ID == receiver.ID {
		// Net zero, balance untouched.
	} else {
		err = uc.accountRepo.UpdateBalance(ctx, tx, sender.ID, sender.ApplyDebit(input.Amount))
		if err != nil {
			return nil, err
		}

		err = uc.accountRepo.UpdateBalance(ctx, tx, receiver.ID, receiver.ApplyCredit(input.Amount))
		if err != nil {
			return nil, err
		}
	}

	txn := &domain.Transaction{
		ID:          uc.idGen.Generate(),
		SenderID:    sender.ID,
		ReceiverID:  receiver.ID,
		Amount:      input.Amount,
		Timestamp:   now,
		Type:        domain.TransactionTypeTransfer,
		Description: input.Description,
		Status:      domain.TransactionStatusCompleted,
	}

	if err := txn.Validate(); err != nil {
		return nil, err
	}

	if err := uc.txnRepo.AppendTx(ctx, tx, txn); err != nil {
		return nil, err
	}

	err = uc.logRepo.AppendTx(ctx, tx, &domain.SecurityLog{
		ID:           uc.idGen.Generate(),
		UserID:       sender.ID,
		ActivityType: domain.ActivityTransfer,
		Timestamp:    now,
		Description:  fmt.Sprintf("Transfer of $%s to %s", input.Amount.StringFixed(2), receiver.Username),
		IPAddress:    input.IPAddress,
		Severity:     domain.SeverityLow,
	})
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return txn, nil
}

// DepositInput represents a deposit or withdrawal request.
type DepositInput struct {
	AccountID   string
	Amount      decimal.Decimal
	Description string
}

// Deposit credits an account and records a deposit transaction with
// sender == receiver.
func (uc *LedgerUseCase) Deposit(ctx context.Context, input DepositInput) (*domain.Transaction, error) {
	return uc.adjustBalance(ctx, input, domain.TransactionTypeDeposit)
}

// Withdraw debits an account and records a withdrawal transaction with
// sender == receiver. Fails with ErrInsufficientFunds when the balance
// would go negative.
func (uc *LedgerUseCase) Withdraw(ctx context.Context, input DepositInput) (*domain.Transaction, error) {
	return uc.adjustBalance(ctx, input, domain.TransactionTypeWithdrawal)
}

func (uc *LedgerUseCase) adjustBalance(ctx context.Context, input DepositInput, txnType domain.TransactionType) (*domain.Transaction, error) {
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	account, err := uc.accountRepo.GetByIDTx(ctx, tx, input.AccountID)
	if err != nil {
		return nil, domain.ErrAccountNotFound
	}

	var newBalance decimal.Decimal
	if txnType == domain.TransactionTypeWithdrawal {
		if err := account.ValidateDebit(input.Amount); err != nil {
			return nil, err
		}
		newBalance = account.ApplyDebit(input.Amount)
	} else {
		newBalance = account.ApplyCredit(input.Amount)
	}

	if err := uc.accountRepo.UpdateBalance(ctx, tx, account.ID, newBalance); err != nil {
		return nil, err
	}

	txn := &domain.Transaction{
		ID:          uc.idGen.Generate(),
		SenderID:    account.ID,
		ReceiverID:  account.ID,
		Amount:      input.Amount,
		Timestamp:   time.Now().UTC(),
		Type:        txnType,
		Description: input.Description,
		Status:      domain.TransactionStatusCompleted,
	}

	if err := txn.Validate(); err != nil {
		return nil, err
	}

	if err := uc.txnRepo.AppendTx(ctx, tx, txn); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return txn, nil
}

// GetTransaction retrieves a transaction by ID.
func (uc *LedgerUseCase) GetTransaction(ctx context.Context, id string) (*domain.Transaction, error) {
	return uc.txnRepo.GetByID(ctx, id)
}

// ListTransactionsInput represents input for listing transactions.
type ListTransactionsInput struct {
	AccountID string
	Limit     int
	Offset    int
}

// ListTransactions lists transactions where the account is sender or
// receiver, most recent first.
func (uc *LedgerUseCase) ListTransactions(ctx context.Context, input ListTransactionsInput) ([]*domain.Transaction, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)
	return uc.txnRepo.ListByAccount(ctx, input.AccountID, limit, offset)
}

// GetAccount retrieves an account by ID.
func (uc *LedgerUseCase) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	return uc.accountRepo.GetByID(ctx, id)
}

// ListAccounts lists accounts with pagination.
func (uc *LedgerUseCase) ListAccounts(ctx context.Context, limit, offset int) ([]*domain.Account, error) {
	limit, offset = domain.ValidatePagination(limit, offset)
	return uc.accountRepo.List(ctx, limit, offset)
}
