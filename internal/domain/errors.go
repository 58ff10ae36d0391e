package domain

import "errors"

var (
	// Auth errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrSessionNotFound    = errors.New("session not found")

	// Account errors
	ErrAccountNotFound = errors.New("account not found")

	// Transaction errors
	ErrInsufficientFunds         = errors.New("insufficient funds")
	ErrInvalidAmount             = errors.New("amount must be positive")
	ErrInvalidTransactionParties = errors.New("deposit and withdrawal must reference a single account")
	ErrTransactionNotFound       = errors.New("transaction not found")
)
