package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/minibank/internal/domain"
	"github.com/iho/minibank/internal/usecase"
	"github.com/iho/minibank/internal/usecase/mocks"
)

type ledgerFixture struct {
	txManager   *mocks.MockTransactionManager
	accountRepo *mocks.MockAccountRepository
	txnRepo     *mocks.MockTransactionRepository
	logRepo     *mocks.MockSecurityLogRepository
	uc          *usecase.LedgerUseCase
}

func newLedgerFixture() *ledgerFixture {
	f := &ledgerFixture{
		txManager:   mocks.NewMockTransactionManager(),
		accountRepo: mocks.NewMockAccountRepository(),
		txnRepo:     mocks.NewMockTransactionRepository(),
		logRepo:     mocks.NewMockSecurityLogRepository(),
	}
	f.uc = usecase.NewLedgerUseCase(
		f.txManager, f.accountRepo, f.txnRepo, f.logRepo,
		mocks.NewMockIDGenerator(),
	)
	return f
}

func (f *ledgerFixture) seedAccounts() {
	f.accountRepo.Put(&domain.Account{
		ID:       "1",
		Username: "jaya",
		Balance:  decimal.RequireFromString("5000.00"),
	})
	f.accountRepo.Put(&domain.Account{
		ID:       "2",
		Username: "alex",
		Balance:  decimal.RequireFromString("3500.50"),
	})
}

func (f *ledgerFixture) balance(t *testing.T, id string) decimal.Decimal {
	t.Helper()
	acc, err := f.accountRepo.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("account %s: %v", id, err)
	}
	return acc.Balance
}

func TestLedgerUseCase_Transfer(t *testing.T) {
	t.Run("moves funds and preserves the total", func(t *testing.T) {
		f := newLedgerFixture()
		f.seedAccounts()

		txn, err := f.uc.Transfer(context.Background(), usecase.TransferInput{
			SenderID:         "1",
			ReceiverUsername: "alex",
			Amount:           decimal.RequireFromString("250.00"),
			Description:      "rent",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got := f.balance(t, "1"); !got.Equal(decimal.RequireFromString("4750.00")) {
			t.Errorf("sender balance = %s, want 4750.00", got)
		}
		if got := f.balance(t, "2"); !got.Equal(decimal.RequireFromString("3750.50")) {
			t.Errorf("receiver balance = %s, want 3750.50", got)
		}

		if txn.Type != domain.TransactionTypeTransfer || txn.Status != domain.TransactionStatusCompleted {
			t.Errorf("unexpected transaction %+v", txn)
		}
		if txn.SenderID != "1" || txn.ReceiverID != "2" {
			t.Errorf("transaction parties = %s -> %s, want 1 -> 2", txn.SenderID, txn.ReceiverID)
		}

		if len(f.txnRepo.Transactions) != 1 {
			t.Fatalf("expected 1 recorded transaction, got %d", len(f.txnRepo.Transactions))
		}
		if len(f.logRepo.Logs) != 1 || f.logRepo.Logs[0].ActivityType != domain.ActivityTransfer {
			t.Fatalf("expected 1 transfer security log, got %+v", f.logRepo.Logs)
		}
		if f.logRepo.Logs[0].UserID != "1" {
			t.Errorf("transfer log attributed to %q, want sender 1", f.logRepo.Logs[0].UserID)
		}
		if !f.txManager.Last.Committed {
			t.Error("expected the transfer transaction to commit")
		}
	})

	t.Run("insufficient funds leaves no trace", func(t *testing.T) {
		f := newLedgerFixture()
		f.seedAccounts()

		_, err := f.uc.Transfer(context.Background(), usecase.TransferInput{
			SenderID:         "1",
			ReceiverUsername: "alex",
			Amount:           decimal.RequireFromString("999999.00"),
		})
		if !errors.Is(err, domain.ErrInsufficientFunds) {
			t.Fatalf("expected ErrInsufficientFunds, got %v", err)
		}

		if got := f.balance(t, "1"); !got.Equal(decimal.RequireFromString("5000.00")) {
			t.Errorf("sender balance changed to %s", got)
		}
		if len(f.txnRepo.Transactions) != 0 || len(f.logRepo.Logs) != 0 {
			t.Error("failed transfer must append nothing")
		}
		if f.txManager.Last.Committed {
			t.Error("failed transfer must not commit")
		}
	})

	t.Run("non-positive amounts are rejected", func(t *testing.T) {
		f := newLedgerFixture()
		f.seedAccounts()

		for _, amount := range []string{"0", "-10.00"} {
			_, err := f.uc.Transfer(context.Background(), usecase.TransferInput{
				SenderID:         "1",
				ReceiverUsername: "alex",
				Amount:           decimal.RequireFromString(amount),
			})
			if !errors.Is(err, domain.ErrInvalidAmount) {
				t.Errorf("amount %s: expected ErrInvalidAmount, got %v", amount, err)
			}
		}
		if len(f.txnRepo.Transactions) != 0 {
			t.Error("rejected transfers must append nothing")
		}
	})

	t.Run("unknown sender or receiver", func(t *testing.T) {
		f := newLedgerFixture()
		f.seedAccounts()

		_, err := f.uc.Transfer(context.Background(), usecase.TransferInput{
			SenderID:         "99",
			ReceiverUsername: "alex",
			Amount:           decimal.NewFromInt(10),
		})
		if !errors.Is(err, domain.ErrAccountNotFound) {
			t.Errorf("unknown sender: expected ErrAccountNotFound, got %v", err)
		}

		_, err = f.uc.Transfer(context.Background(), usecase.TransferInput{
			SenderID:         "1",
			ReceiverUsername: "ghost",
			Amount:           decimal.NewFromInt(10),
		})
		if !errors.Is(err, domain.ErrAccountNotFound) {
			t.Errorf("unknown receiver: expected ErrAccountNotFound, got %v", err)
		}
	})

	t.Run("self transfer nets to zero but is recorded", func(t *testing.T) {
		f := newLedgerFixture()
		f.seedAccounts()

		txn, err := f.uc.Transfer(context.Background(), usecase.TransferInput{
			SenderID:         "1",
			ReceiverUsername: "jaya",
			Amount:           decimal.RequireFromString("100.00"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got := f.balance(t, "1"); !got.Equal(decimal.RequireFromString("5000.00")) {
			t.Errorf("self transfer changed balance to %s", got)
		}
		if txn.SenderID != txn.ReceiverID {
			t.Errorf("expected matching parties, got %s -> %s", txn.SenderID, txn.ReceiverID)
		}
		if len(f.txnRepo.Transactions) != 1 || len(f.logRepo.Logs) != 1 {
			t.Error("self transfer must still be recorded")
		}
	})

	t.Run("self transfer still requires sufficient funds", func(t *testing.T) {
		f := newLedgerFixture()
		f.seedAccounts()

		_, err := f.uc.Transfer(context.Background(), usecase.TransferInput{
			SenderID:         "1",
			ReceiverUsername: "jaya",
			Amount:           decimal.RequireFromString("5000.01"),
		})
		if !errors.Is(err, domain.ErrInsufficientFunds) {
			t.Fatalf("expected ErrInsufficientFunds, got %v", err)
		}
	})
}

func TestLedgerUseCase_GetBalance(t *testing.T) {
	f := newLedgerFixture()
	f.seedAccounts()

	balance, err := f.uc.GetBalance(context.Background(), "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !balance.Equal(decimal.RequireFromString("5000.00")) {
		t.Errorf("balance = %s, want 5000.00", balance)
	}

	// Unknown accounts read as empty, not as an error.
	balance, err = f.uc.GetBalance(context.Background(), "missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !balance.Equal(decimal.Zero) {
		t.Errorf("balance for unknown account = %s, want 0", balance)
	}
}

func TestLedgerUseCase_Deposit(t *testing.T) {
	f := newLedgerFixture()
	f.seedAccounts()

	txn, err := f.uc.Deposit(context.Background(), usecase.DepositInput{
		AccountID: "1",
		Amount:    decimal.RequireFromString("500.00"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if txn.Type != domain.TransactionTypeDeposit || txn.SenderID != txn.ReceiverID {
		t.Errorf("unexpected transaction %+v", txn)
	}
	if got := f.balance(t, "1"); !got.Equal(decimal.RequireFromString("5500.00")) {
		t.Errorf("balance = %s, want 5500.00", got)
	}
}

func TestLedgerUseCase_Withdraw(t *testing.T) {
	f := newLedgerFixture()
	f.seedAccounts()

	txn, err := f.uc.Withdraw(context.Background(), usecase.DepositInput{
		AccountID: "2",
		Amount:    decimal.RequireFromString("500.50"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if txn.Type != domain.TransactionTypeWithdrawal {
		t.Errorf("unexpected type %s", txn.Type)
	}
	if got := f.balance(t, "2"); !got.Equal(decimal.RequireFromString("3000.00")) {
		t.Errorf("balance = %s, want 3000.00", got)
	}

	_, err = f.uc.Withdraw(context.Background(), usecase.DepositInput{
		AccountID: "2",
		Amount:    decimal.RequireFromString("3000.01"),
	})
	if !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if got := f.balance(t, "2"); !got.Equal(decimal.RequireFromString("3000.00")) {
		t.Errorf("failed withdrawal changed balance to %s", got)
	}
}
