package session

import (
	"context"

	"campus_portal/internal/domain/repository"

	"github.com/google/uuid"
)

// Manager hands out one Store per browser session, keyed by the sid claim of
// the portal's session token.
type Manager struct {
	repo repository.SessionRepository
	auth Authenticator
}

func NewManager(repo repository.SessionRepository, auth Authenticator) *Manager {
	return &Manager{repo: repo, auth: auth}
}

// NewSession creates a fresh, unauthenticated store with a random ID.
func (m *Manager) NewSession() *Store {
	return NewStore(uuid.NewString(), m.repo, m.auth)
}

// Load returns the store for sessionID, rehydrated from the persisted slot.
func (m *Manager) Load(ctx context.Context, sessionID string) (*Store, error) {
	store := NewStore(sessionID, m.repo, m.auth)
	if err := store.Rehydrate(ctx); err != nil {
		return nil, err
	}
	return store, nil
}
