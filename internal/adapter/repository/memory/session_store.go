package memory

import (
	"context"

	"github.com/iho/minibank/internal/domain"
)

// SessionStore implements usecase.SessionStore over the Store.
type SessionStore struct {
	store *Store
}

// NewSessionStore creates a new SessionStore.
func NewSessionStore(store *Store) *SessionStore {
	return &SessionStore{store: store}
}

// Create registers a session token.
func (s *SessionStore) Create(ctx context.Context, session *domain.Session) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	c := *session
	s.store.sessions[session.Token] = &c
	return nil
}

// Get resolves a token to its session.
func (s *SessionStore) Get(ctx context.Context, token string) (*domain.Session, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	session, ok := s.store.sessions[token]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}

	c := *session
	return &c, nil
}

// Delete removes a session. Deleting an unknown token is a no-op.
func (s *SessionStore) Delete(ctx context.Context, token string) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	delete(s.store.sessions, token)
	return nil
}
