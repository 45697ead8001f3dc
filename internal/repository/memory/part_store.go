package memory

import (
	"context"
	"sync"

	"github.com/asbuyukgungor-bot/bus-erp/internal/model"
	"github.com/asbuyukgungor-bot/bus-erp/internal/repository"

	"github.com/google/uuid"
)

// PartStore is the in-memory part catalog. A single mutex covers the
// check-then-decrement, so concurrent work orders cannot oversell a part.
type PartStore struct {
	mu    sync.RWMutex
	parts []*model.Part
}

func NewPartStore() *PartStore { return &PartStore{} }

var _ repository.PartRepository = (*PartStore)(nil)

func (s *PartStore) Create(_ context.Context, p *model.Part) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.parts {
		if existing.PartNumber == p.PartNumber {
			return repository.ErrDuplicate
		}
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	cp := *p
	s.parts = append(s.parts, &cp)
	return nil
}

// List returns parts in insertion order.
func (s *PartStore) List(_ context.Context) ([]model.Part, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Part, 0, len(s.parts))
	for _, p := range s.parts {
		out = append(out, *p)
	}
	return out, nil
}

func (s *PartStore) FindByNumber(_ context.Context, partNumber string) (*model.Part, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.parts {
		if p.PartNumber == partNumber {
			cp := *p
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *PartStore) DecrementStock(_ context.Context, partNumber string, qty int) (*model.Part, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.parts {
		if p.PartNumber != partNumber {
			continue
		}
		if p.Quantity < qty {
			return nil, &repository.InsufficientStockError{
				PartName:  p.Name,
				Required:  qty,
				Available: p.Quantity,
			}
		}
		p.Quantity -= qty
		cp := *p
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (s *PartStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.parts), nil
}

func (s *PartStore) CountBelow(_ context.Context, threshold int) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, p := range s.parts {
		if p.Quantity < threshold {
			n++
		}
	}
	return n, nil
}

func (s *PartStore) ListBelow(_ context.Context, threshold int) ([]model.Part, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Part
	for _, p := range s.parts {
		if p.Quantity < threshold {
			out = append(out, *p)
		}
	}
	return out, nil
}
