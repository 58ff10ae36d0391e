package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/minibank/internal/domain"
)

// AuthUseCase handles login, signup and session lifecycle.
type AuthUseCase struct {
	txManager   TransactionManager
	accountRepo AccountRepository
	credRepo    CredentialRepository
	logRepo     SecurityLogRepository
	sessions    SessionStore
	idGen       IDGenerator
	sessionTTL  time.Duration
}

// NewAuthUseCase creates a new AuthUseCase.
func NewAuthUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	credRepo CredentialRepository,
	logRepo SecurityLogRepository,
	sessions SessionStore,
	idGen IDGenerator,
	sessionTTL time.Duration,
) *AuthUseCase {
	if sessionTTL <= 0 {
		sessionTTL = DefaultSessionTTL
	}

	return &AuthUseCase{
		txManager:   txManager,
		accountRepo: accountRepo,
		credRepo:    credRepo,
		logRepo:     logRepo,
		sessions:    sessions,
		idGen:       idGen,
		sessionTTL:  sessionTTL,
	}
}

// LoginInput represents a login attempt.
type LoginInput struct {
	Username  string
	Password  string
	IPAddress string
}

// Login authenticates by exact plain-string credential match. This is a
// demo policy: credentials are never hashed, and only accounts with a
// stored credential can authenticate.
//
// A failed attempt is logged against the attempted username when it
// resolves to an account, and unattributed otherwise.
func (uc *AuthUseCase) Login(ctx context.Context, input LoginInput) (*domain.Account, *domain.Session, error) {
	account, accErr := uc.accountRepo.GetByUsername(ctx, input.Username)

	password, credErr := uc.credRepo.Get(ctx, input.Username)
	if accErr != nil || credErr != nil || password != input.Password {
		uc.recordFailedLogin(ctx, account, input)
		return nil, nil, domain.ErrInvalidCredentials
	}

	session, err := uc.createSession(ctx, account.ID)
	if err != nil {
		return nil, nil, err
	}

	err = uc.logRepo.Append(ctx, &domain.SecurityLog{
		ID:           uc.idGen.Generate(),
		UserID:       account.ID,
		ActivityType: domain.ActivityLogin,
		Timestamp:    time.Now().UTC(),
		Description:  "Successful login",
		IPAddress:    input.IPAddress,
		Severity:     domain.SeverityLow,
	})
	if err != nil {
		return nil, nil, err
	}

	return account, session, nil
}

func (uc *AuthUseCase) recordFailedLogin(ctx context.Context, account *domain.Account, input LoginInput) {
	userID := ""
	if account != nil {
		userID = account.ID
	}

	// Best effort: a failed append must not mask the credential error.
	_ = uc.logRepo.Append(ctx, &domain.SecurityLog{
		ID:           uc.idGen.Generate(),
		UserID:       userID,
		ActivityType: domain.ActivityLoginFailed,
		Timestamp:    time.Now().UTC(),
		Description:  fmt.Sprintf("Failed login attempt for user: %s", input.Username),
		IPAddress:    input.IPAddress,
		Severity:     domain.SeverityMedium,
	})
}

// RegisterInput represents a signup request.
type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	IPAddress string
}

// Register creates a new account with the starting balance and an active
// session. Case-sensitive username uniqueness is the only validation;
// email format and password strength are deliberately not checked here.
func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*domain.Account, *domain.Session, error) {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer tx.Rollback(ctx)

	existing, err := uc.accountRepo.GetByUsernameTx(ctx, tx, input.Username)
	if err == nil && existing != nil {
		return nil, nil, domain.ErrUsernameTaken
	}

	now := time.Now().UTC()
	balance, err := decimal.NewFromString(StartingBalance)
	if err != nil {
		return nil, nil, err
	}

	account := &domain.Account{
		ID:        uc.idGen.Generate(),
		Username:  input.Username,
		Email:     input.Email,
		Balance:   balance,
		CreatedAt: now,
	}

	if err := uc.accountRepo.CreateTx(ctx, tx, account); err != nil {
		return nil, nil, err
	}

	if err := uc.credRepo.SetTx(ctx, tx, input.Username, input.Password); err != nil {
		return nil, nil, err
	}

	err = uc.logRepo.AppendTx(ctx, tx, &domain.SecurityLog{
		ID:           uc.idGen.Generate(),
		UserID:       account.ID,
		ActivityType: domain.ActivitySignup,
		Timestamp:    now,
		Description:  "New account created",
		IPAddress:    input.IPAddress,
		Severity:     domain.SeverityLow,
	})
	if err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, err
	}

	session, err := uc.createSession(ctx, account.ID)
	if err != nil {
		return nil, nil, err
	}

	return account, session, nil
}

// Logout ends the session identified by token. Unknown tokens are a no-op.
func (uc *AuthUseCase) Logout(ctx context.Context, token, ipAddress string) error {
	session, err := uc.sessions.Get(ctx, token)
	if err != nil {
		return nil
	}

	err = uc.logRepo.Append(ctx, &domain.SecurityLog{
		ID:           uc.idGen.Generate(),
		UserID:       session.AccountID,
		ActivityType: domain.ActivityLogout,
		Timestamp:    time.Now().UTC(),
		Description:  "User logged out",
		IPAddress:    ipAddress,
		Severity:     domain.SeverityLow,
	})
	if err != nil {
		return err
	}

	return uc.sessions.Delete(ctx, token)
}

// CurrentAccount resolves a session token to its account.
func (uc *AuthUseCase) CurrentAccount(ctx context.Context, token string) (*domain.Account, error) {
	session, err := uc.sessions.Get(ctx, token)
	if err != nil {
		return nil, err
	}

	if session.Expired(time.Now().UTC()) {
		_ = uc.sessions.Delete(ctx, token)
		return nil, domain.ErrSessionNotFound
	}

	return uc.accountRepo.GetByID(ctx, session.AccountID)
}

func (uc *AuthUseCase) createSession(ctx context.Context, accountID string) (*domain.Session, error) {
	now := time.Now().UTC()

	session := &domain.Session{
		Token:     uc.idGen.Generate(),
		AccountID: accountID,
		CreatedAt: now,
		ExpiresAt: now.Add(uc.sessionTTL),
	}

	if err := uc.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}
