package memory

import (
	"context"
	"sync"

	"github.com/asbuyukgungor-bot/bus-erp/internal/model"
	"github.com/asbuyukgungor-bot/bus-erp/internal/repository"

	"github.com/google/uuid"
)

// UserStore is the in-memory user directory (seed data only).
type UserStore struct {
	mu    sync.RWMutex
	users map[string]*model.User
}

func NewUserStore() *UserStore { return &UserStore{users: make(map[string]*model.User)} }

var _ repository.UserRepository = (*UserStore)(nil)

func (s *UserStore) Create(_ context.Context, u *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[u.Username]; ok {
		return repository.ErrDuplicate
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	cp := *u
	s.users[u.Username] = &cp
	return nil
}

func (s *UserStore) FindByUsername(_ context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}
