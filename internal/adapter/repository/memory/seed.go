package memory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/minibank/internal/domain"
)

// Seed loads the demo data set: three accounts, five transactions, four
// security logs and the single valid credential pair (jaya / ntr). The
// other seeded accounts have no credential and cannot log in.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts := []*domain.Account{
		{
			ID:        "1",
			Username:  "jaya",
			Email:     "jaya@example.com",
			Balance:   decimal.RequireFromString("5000.00"),
			CreatedAt: time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:        "2",
			Username:  "alex",
			Email:     "alex@example.com",
			Balance:   decimal.RequireFromString("3500.50"),
			CreatedAt: time.Date(2023, 2, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:        "3",
			Username:  "sarah",
			Email:     "sarah@example.com",
			Balance:   decimal.RequireFromString("7200.25"),
			CreatedAt: time.Date(2023, 3, 5, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, a := range accounts {
		s.accounts[a.ID] = a
		s.usernames[a.Username] = a.ID
	}

	s.credentials["jaya"] = "ntr"

	s.transactions = []*domain.Transaction{
		{
			ID:          "t1",
			SenderID:    "1",
			ReceiverID:  "2",
			Amount:      decimal.RequireFromString("250.00"),
			Timestamp:   time.Date(2023, 4, 10, 14, 30, 0, 0, time.UTC),
			Type:        domain.TransactionTypeTransfer,
			Description: "Rent payment",
			Status:      domain.TransactionStatusCompleted,
		},
		{
			ID:          "t2",
			SenderID:    "3",
			ReceiverID:  "1",
			Amount:      decimal.RequireFromString("75.25"),
			Timestamp:   time.Date(2023, 4, 9, 9, 45, 0, 0, time.UTC),
			Type:        domain.TransactionTypeTransfer,
			Description: "Dinner split",
			Status:      domain.TransactionStatusCompleted,
		},
		{
			ID:          "t3",
			SenderID:    "1",
			ReceiverID:  "3",
			Amount:      decimal.RequireFromString("120.00"),
			Timestamp:   time.Date(2023, 4, 5, 16, 20, 0, 0, time.UTC),
			Type:        domain.TransactionTypeTransfer,
			Description: "Concert tickets",
			Status:      domain.TransactionStatusCompleted,
		},
		{
			ID:          "t4",
			SenderID:    "2",
			ReceiverID:  "1",
			Amount:      decimal.RequireFromString("400.00"),
			Timestamp:   time.Date(2023, 4, 1, 11, 15, 0, 0, time.UTC),
			Type:        domain.TransactionTypeTransfer,
			Description: "Freelance work",
			Status:      domain.TransactionStatusCompleted,
		},
		{
			ID:          "t5",
			SenderID:    "1",
			ReceiverID:  "1",
			Amount:      decimal.RequireFromString("1000.00"),
			Timestamp:   time.Date(2023, 3, 28, 10, 0, 0, 0, time.UTC),
			Type:        domain.TransactionTypeDeposit,
			Description: "Salary deposit",
			Status:      domain.TransactionStatusCompleted,
		},
	}

	s.securityLogs = []*domain.SecurityLog{
		{
			ID:           "s1",
			UserID:       "1",
			ActivityType: domain.ActivityLogin,
			Timestamp:    time.Date(2023, 4, 10, 14, 25, 0, 0, time.UTC),
			Description:  "Successful login",
			IPAddress:    "192.168.1.1",
			Severity:     domain.SeverityLow,
		},
		{
			ID:           "s2",
			UserID:       "1",
			ActivityType: domain.ActivityLoginFailed,
			Timestamp:    time.Date(2023, 4, 10, 14, 24, 30, 0, time.UTC),
			Description:  "Failed login attempt",
			IPAddress:    "192.168.1.1",
			Severity:     domain.SeverityMedium,
		},
		{
			ID:           "s3",
			UserID:       "1",
			ActivityType: domain.ActivityTransfer,
			Timestamp:    time.Date(2023, 4, 10, 14, 30, 10, 0, time.UTC),
			Description:  "Fund transfer to Alex",
			IPAddress:    "192.168.1.1",
			Severity:     domain.SeverityLow,
		},
		{
			ID:           "s4",
			UserID:       "1",
			ActivityType: domain.ActivitySuspicious,
			Timestamp:    time.Date(2023, 4, 9, 2, 15, 0, 0, time.UTC),
			Description:  "Login attempt from unknown location",
			IPAddress:    "45.67.89.10",
			Severity:     domain.SeverityHigh,
		},
	}
}
