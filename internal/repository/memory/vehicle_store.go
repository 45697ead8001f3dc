package memory

import (
	"context"
	"sync"

	"github.com/asbuyukgungor-bot/bus-erp/internal/model"
	"github.com/asbuyukgungor-bot/bus-erp/internal/repository"

	"github.com/google/uuid"
)

// VehicleStore is the in-memory vehicle registry.
type VehicleStore struct {
	mu       sync.RWMutex
	vehicles []*model.Vehicle
}

func NewVehicleStore() *VehicleStore { return &VehicleStore{} }

var _ repository.VehicleRepository = (*VehicleStore)(nil)

func (s *VehicleStore) Create(_ context.Context, v *model.Vehicle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.vehicles {
		if existing.VIN == v.VIN {
			return repository.ErrDuplicate
		}
	}
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	cp := *v
	s.vehicles = append(s.vehicles, &cp)
	return nil
}

func (s *VehicleStore) List(_ context.Context) ([]model.Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Vehicle, 0, len(s.vehicles))
	for _, v := range s.vehicles {
		out = append(out, *v)
	}
	return out, nil
}

func (s *VehicleStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.vehicles), nil
}
