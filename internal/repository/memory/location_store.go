package memory

import (
	"context"
	"sync"

	"github.com/asbuyukgungor-bot/bus-erp/internal/model"
	"github.com/asbuyukgungor-bot/bus-erp/internal/repository"
)

// LocationStore holds static location reference data.
type LocationStore struct {
	mu        sync.RWMutex
	locations []model.Location
}

func NewLocationStore() *LocationStore { return &LocationStore{} }

var _ repository.LocationRepository = (*LocationStore)(nil)

func (s *LocationStore) Add(l model.Location) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locations = append(s.locations, l)
}

func (s *LocationStore) List(_ context.Context) ([]model.Location, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Location(nil), s.locations...), nil
}
