package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents a bank account identified by a unique username.
type Account struct {
	ID        string
	Username  string
	Email     string
	Balance   decimal.Decimal
	CreatedAt time.Time
}

// ValidateDebit checks if the account can be debited by amount without
// going negative.
func (a *Account) ValidateDebit(amount decimal.Decimal) error {
	if a.Balance.LessThan(amount) {
		return ErrInsufficientFunds
	}
	return nil
}

// ApplyDebit returns the balance after a debit.
func (a *Account) ApplyDebit(amount decimal.Decimal) decimal.Decimal {
	return a.Balance.Sub(amount)
}

// ApplyCredit returns the balance after a credit.
func (a *Account) ApplyCredit(amount decimal.Decimal) decimal.Decimal {
	return a.Balance.Add(amount)
}
