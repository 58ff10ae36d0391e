package mocks

import (
	"context"
	"strconv"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/iho/minibank/internal/domain"
	"github.com/iho/minibank/internal/usecase"
)

// MockAccountRepository is a mock implementation of AccountRepository.
type MockAccountRepository struct {
	mu        sync.RWMutex
	accounts  map[string]*domain.Account
	usernames map[string]string

	CreateTxFunc        func(ctx context.Context, tx usecase.Transaction, account *domain.Account) error
	GetByIDFunc         func(ctx context.Context, id string) (*domain.Account, error)
	GetByUsernameFunc   func(ctx context.Context, username string) (*domain.Account, error)
	GetByIDTxFunc       func(ctx context.Context, tx usecase.Transaction, id string) (*domain.Account, error)
	GetByUsernameTxFunc func(ctx context.Context, tx usecase.Transaction, username string) (*domain.Account, error)
	UpdateBalanceFunc   func(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal) error
	ListFunc            func(ctx context.Context, limit, offset int) ([]*domain.Account, error)
}

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{
		accounts:  make(map[string]*domain.Account),
		usernames: make(map[string]string),
	}
}

// Put seeds the mock with an account, bypassing any Func hooks.
func (m *MockAccountRepository) Put(account *domain.Account) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.ID] = account
	m.usernames[account.Username] = account.ID
}

func (m *MockAccountRepository) CreateTx(ctx context.Context, tx usecase.Transaction, account *domain.Account) error {
	if m.CreateTxFunc != nil {
		return m.CreateTxFunc(ctx, tx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.usernames[account.Username]; exists {
		return domain.ErrUsernameTaken
	}
	m.accounts[account.ID] = account
	m.usernames[account.Username] = account.ID
	return nil
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if acc, ok := m.accounts[id]; ok {
		return acc, nil
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if id, ok := m.usernames[username]; ok {
		return m.accounts[id], nil
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) GetByIDTx(ctx context.Context, tx usecase.Transaction, id string) (*domain.Account, error) {
	if m.GetByIDTxFunc != nil {
		return m.GetByIDTxFunc(ctx, tx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *MockAccountRepository) GetByUsernameTx(ctx context.Context, tx usecase.Transaction, username string) (*domain.Account, error) {
	if m.GetByUsernameTxFunc != nil {
		return m.GetByUsernameTxFunc(ctx, tx, username)
	}
	return m.GetByUsername(ctx, username)
}

func (m *MockAccountRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal) error {
	if m.UpdateBalanceFunc != nil {
		return m.UpdateBalanceFunc(ctx, tx, id, balance)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	acc, ok := m.accounts[id]
	if !ok {
		return domain.ErrAccountNotFound
	}
	acc.Balance = balance
	return nil
}

func (m *MockAccountRepository) List(ctx context.Context, limit, offset int) ([]*domain.Account, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var accounts []*domain.Account
	for _, acc := range m.accounts {
		accounts = append(accounts, acc)
	}
	return accounts, nil
}

// MockTransactionRepository is a mock implementation of TransactionRepository.
type MockTransactionRepository struct {
	mu           sync.RWMutex
	Transactions []*domain.Transaction

	AppendTxFunc      func(ctx context.Context, tx usecase.Transaction, txn *domain.Transaction) error
	GetByIDFunc       func(ctx context.Context, id string) (*domain.Transaction, error)
	ListByAccountFunc func(ctx context.Context, accountID string, limit, offset int) ([]*domain.Transaction, error)
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{}
}

func (m *MockTransactionRepository) AppendTx(ctx context.Context, tx usecase.Transaction, txn *domain.Transaction) error {
	if m.AppendTxFunc != nil {
		return m.AppendTxFunc(ctx, tx, txn)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Transactions = append(m.Transactions, txn)
	return nil
}

func (m *MockTransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, txn := range m.Transactions {
		if txn.ID == id {
			return txn, nil
		}
	}
	return nil, domain.ErrTransactionNotFound
}

func (m *MockTransactionRepository) ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.Transaction, error) {
	if m.ListByAccountFunc != nil {
		return m.ListByAccountFunc(ctx, accountID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.Transaction
	for _, txn := range m.Transactions {
		if txn.Involves(accountID) {
			result = append(result, txn)
		}
	}
	return result, nil
}

// MockSecurityLogRepository is a mock implementation of SecurityLogRepository.
type MockSecurityLogRepository struct {
	mu   sync.RWMutex
	Logs []*domain.SecurityLog

	AppendFunc     func(ctx context.Context, log *domain.SecurityLog) error
	AppendTxFunc   func(ctx context.Context, tx usecase.Transaction, log *domain.SecurityLog) error
	ListByUserFunc func(ctx context.Context, userID string, limit, offset int) ([]*domain.SecurityLog, error)
}

func NewMockSecurityLogRepository() *MockSecurityLogRepository {
	return &MockSecurityLogRepository{}
}

func (m *MockSecurityLogRepository) Append(ctx context.Context, log *domain.SecurityLog) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, log)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, log)
	return nil
}

func (m *MockSecurityLogRepository) AppendTx(ctx context.Context, tx usecase.Transaction, log *domain.SecurityLog) error {
	if m.AppendTxFunc != nil {
		return m.AppendTxFunc(ctx, tx, log)
	}
	return m.Append(ctx, log)
}

func (m *MockSecurityLogRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.SecurityLog, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.SecurityLog
	for _, log := range m.Logs {
		if log.UserID == userID {
			result = append(result, log)
		}
	}
	return result, nil
}

// MockCredentialRepository is a mock implementation of CredentialRepository.
type MockCredentialRepository struct {
	mu          sync.RWMutex
	credentials map[string]string

	SetTxFunc func(ctx context.Context, tx usecase.Transaction, username, password string) error
	GetFunc   func(ctx context.Context, username string) (string, error)
}

func NewMockCredentialRepository() *MockCredentialRepository {
	return &MockCredentialRepository{credentials: make(map[string]string)}
}

// Put seeds the mock with a credential, bypassing any Func hooks.
func (m *MockCredentialRepository) Put(username, password string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.credentials[username] = password
}

func (m *MockCredentialRepository) SetTx(ctx context.Context, tx usecase.Transaction, username, password string) error {
	if m.SetTxFunc != nil {
		return m.SetTxFunc(ctx, tx, username, password)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.credentials[username] = password
	return nil
}

func (m *MockCredentialRepository) Get(ctx context.Context, username string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, username)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	password, ok := m.credentials[username]
	if !ok {
		return "", domain.ErrInvalidCredentials
	}
	return password, nil
}

// MockSessionStore is a mock implementation of SessionStore.
type MockSessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session

	CreateFunc func(ctx context.Context, session *domain.Session) error
	GetFunc    func(ctx context.Context, token string) (*domain.Session, error)
	DeleteFunc func(ctx context.Context, token string) error
}

func NewMockSessionStore() *MockSessionStore {
	return &MockSessionStore{sessions: make(map[string]*domain.Session)}
}

func (m *MockSessionStore) Create(ctx context.Context, session *domain.Session) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, session)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.Token] = session
	return nil
}

func (m *MockSessionStore) Get(ctx context.Context, token string) (*domain.Session, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, token)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	session, ok := m.sessions[token]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

func (m *MockSessionStore) Delete(ctx context.Context, token string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, token)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
	return nil
}

// Len returns the number of stored sessions.
func (m *MockSessionStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// MockTransaction is a mock implementation of Transaction.
type MockTransaction struct {
	Committed  bool
	RolledBack bool

	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error
}

func (m *MockTransaction) Commit(ctx context.Context) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	m.Committed = true
	return nil
}

func (m *MockTransaction) Rollback(ctx context.Context) error {
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	if !m.Committed {
		m.RolledBack = true
	}
	return nil
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	Last *MockTransaction

	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	m.Last = &MockTransaction{}
	return m.Last, nil
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	mu      sync.Mutex
	counter int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return "id-" + strconv.Itoa(m.counter)
}
