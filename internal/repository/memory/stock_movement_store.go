package memory

import (
	"context"
	"sync"

	"github.com/asbuyukgungor-bot/bus-erp/internal/model"
	"github.com/asbuyukgungor-bot/bus-erp/internal/repository"

	"github.com/google/uuid"
)

// StockMovementStore is the in-memory audit trail of stock changes.
type StockMovementStore struct {
	mu        sync.RWMutex
	movements []*model.StockMovement
}

func NewStockMovementStore() *StockMovementStore { return &StockMovementStore{} }

var _ repository.StockMovementRepository = (*StockMovementStore)(nil)

func (s *StockMovementStore) Create(_ context.Context, m *model.StockMovement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	cp := *m
	s.movements = append(s.movements, &cp)
	return nil
}

// List returns newest movements first, matching the Postgres backend.
func (s *StockMovementStore) List(_ context.Context, filter repository.StockMovementFilter) ([]model.StockMovement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.StockMovement
	for i := len(s.movements) - 1; i >= 0; i-- {
		m := s.movements[i]
		if filter.PartNumber != "" && m.PartNumber != filter.PartNumber {
			continue
		}
		if filter.Type != "" && m.Type != filter.Type {
			continue
		}
		out = append(out, *m)
	}
	return out, nil
}
