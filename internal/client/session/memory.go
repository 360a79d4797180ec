package session

import (
	"context"
	"sync"

	"github.com/dkalinin/eduhub/internal/client/models"
)

// MemoryStore is an in-memory Store for tests and throwaway sessions.
type MemoryStore struct {
	mu   sync.Mutex
	user *models.User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(ctx context.Context) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.user.Valid() {
		return nil, nil
	}
	u := *s.user
	return &u, nil
}

func (s *MemoryStore) Save(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := *user
	s.user = &u
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	return nil
}
