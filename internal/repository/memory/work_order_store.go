package memory

import (
	"context"
	"sync"

	"github.com/asbuyukgungor-bot/bus-erp/internal/model"
	"github.com/asbuyukgungor-bot/bus-erp/internal/repository"
)

// WorkOrderStore is the in-memory work order ledger.
type WorkOrderStore struct {
	mu     sync.RWMutex
	orders []*model.WorkOrder
}

func NewWorkOrderStore() *WorkOrderStore { return &WorkOrderStore{} }

var _ repository.WorkOrderRepository = (*WorkOrderStore)(nil)

func (s *WorkOrderStore) Create(_ context.Context, wo *model.WorkOrder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.orders {
		if existing.ID == wo.ID {
			return repository.ErrDuplicate
		}
	}
	for i := range wo.ItemsUsed {
		wo.ItemsUsed[i].Position = i
	}
	cp := *wo
	cp.ItemsUsed = append([]model.WorkOrderItem(nil), wo.ItemsUsed...)
	s.orders = append(s.orders, &cp)
	return nil
}

func (s *WorkOrderStore) List(_ context.Context) ([]model.WorkOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.WorkOrder, 0, len(s.orders))
	for _, wo := range s.orders {
		out = append(out, *wo)
	}
	return out, nil
}

func (s *WorkOrderStore) FindByID(_ context.Context, id string) (*model.WorkOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, wo := range s.orders {
		if wo.ID == id {
			cp := *wo
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *WorkOrderStore) UpdateStatus(_ context.Context, id, status string) (*model.WorkOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, wo := range s.orders {
		if wo.ID == id {
			wo.Status = status
			cp := *wo
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *WorkOrderStore) CountOpen(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, wo := range s.orders {
		if wo.Status != model.StatusCompleted {
			n++
		}
	}
	return n, nil
}
