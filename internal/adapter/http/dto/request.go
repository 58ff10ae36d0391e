package dto

import (
	"github.com/shopspring/decimal"

	"github.com/iho/minibank/internal/usecase"
)

// LoginRequest represents a login request.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ToUseCaseInput converts to use case input.
func (r *LoginRequest) ToUseCaseInput(ipAddress string) usecase.LoginInput {
	return usecase.LoginInput{
		Username:  r.Username,
		Password:  r.Password,
		IPAddress: ipAddress,
	}
}

// SignupRequest represents a signup request.
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ToUseCaseInput converts to use case input.
func (r *SignupRequest) ToUseCaseInput(ipAddress string) usecase.RegisterInput {
	return usecase.RegisterInput{
		Username:  r.Username,
		Email:     r.Email,
		Password:  r.Password,
		IPAddress: ipAddress,
	}
}

// CreateTransferRequest represents a request to transfer funds. The
// sender is addressed by account ID, the receiver by username.
type CreateTransferRequest struct {
	SenderID         string          `json:"sender_id"`
	ReceiverUsername string          `json:"receiver_username"`
	Amount           decimal.Decimal `json:"amount"`
	Description      string          `json:"description"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateTransferRequest) ToUseCaseInput(ipAddress string) usecase.TransferInput {
	return usecase.TransferInput{
		SenderID:         r.SenderID,
		ReceiverUsername: r.ReceiverUsername,
		Amount:           r.Amount,
		Description:      r.Description,
		IPAddress:        ipAddress,
	}
}

// BalanceAdjustmentRequest represents a deposit or withdrawal request.
type BalanceAdjustmentRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// ToUseCaseInput converts to use case input.
func (r *BalanceAdjustmentRequest) ToUseCaseInput(accountID string) usecase.DepositInput {
	return usecase.DepositInput{
		AccountID:   accountID,
		Amount:      r.Amount,
		Description: r.Description,
	}
}
