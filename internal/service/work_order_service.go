package service

import (
	"context"
	"fmt"

	"github.com/asbuyukgungor-bot/bus-erp/internal/dto"
	"github.com/asbuyukgungor-bot/bus-erp/internal/model"
	"github.com/asbuyukgungor-bot/bus-erp/internal/repository"
	"github.com/asbuyukgungor-bot/bus-erp/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// PartNotFoundError is returned when a work order references an unknown part.
type PartNotFoundError struct{ PartNumber string }

func (e *PartNotFoundError) Error() string {
	return fmt.Sprintf("Part with number %s not found.", e.PartNumber)
}

type WorkOrderService interface {
	Create(ctx context.Context, req dto.CreateWorkOrderRequest) (*dto.WorkOrderResponse, error)
	List(ctx context.Context) ([]dto.WorkOrderResponse, error)
	Get(ctx context.Context, id string) (*dto.WorkOrderResponse, error)
	UpdateStatus(ctx context.Context, id, status string) (*dto.WorkOrderResponse, error)
}

type workOrderService struct {
	repo              repository.WorkOrderRepository
	parts             repository.PartRepository
	movements         repository.StockMovementRepository
	dispatcher        *worker.Dispatcher
	lowStockThreshold int
}

func NewWorkOrderService(
	repo repository.WorkOrderRepository,
	parts repository.PartRepository,
	movements repository.StockMovementRepository,
	dispatcher *worker.Dispatcher,
	lowStockThreshold int,
) WorkOrderService {
	return &workOrderService{
		repo:              repo,
		parts:             parts,
		movements:         movements,
		dispatcher:        dispatcher,
		lowStockThreshold: lowStockThreshold,
	}
}

// Create consumes stock for each item in list order, then appends the order.
//
// Items are processed sequentially and earlier decrements are NOT rolled back
// when a later item fails — callers that retry after a mid-list failure will
// see the already-consumed stock. Each individual decrement is atomic at the
// store boundary, so concurrent orders cannot drive a part's quantity negative.
func (s *workOrderService) Create(ctx context.Context, req dto.CreateWorkOrderRequest) (*dto.WorkOrderResponse, error) {
	order := &model.WorkOrder{
		ID:          req.ID,
		VehicleVIN:  req.VehicleVIN,
		Description: req.Description,
		Status:      req.Status,
	}
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	if order.Status == "" {
		order.Status = model.StatusPending
	}

	// Reject a reused id before any stock is touched — a 409 must leave
	// quantities and the movement ledger exactly as they were.
	if _, err := s.repo.FindByID(ctx, order.ID); err == nil {
		return nil, repository.ErrDuplicate
	} else if err != repository.ErrNotFound {
		return nil, err
	}

	for _, item := range req.ItemsUsed {
		part, err := s.parts.DecrementStock(ctx, item.PartNumber, item.QuantityUsed)
		if err != nil {
			if err == repository.ErrNotFound {
				return nil, &PartNotFoundError{PartNumber: item.PartNumber}
			}
			return nil, err
		}

		orderRef := order.ID
		if s.movements != nil {
			mov := &model.StockMovement{
				PartNumber:     part.PartNumber,
				Type:           "work_order",
				Quantity:       -item.QuantityUsed,
				QuantityBefore: part.Quantity + item.QuantityUsed,
				QuantityAfter:  part.Quantity,
				Reason:         fmt.Sprintf("Work order %s", order.ID),
				WorkOrderID:    &orderRef,
			}
			if err := s.movements.Create(ctx, mov); err != nil {
				return nil, err
			}
		}

		// Async low-stock alert — best effort, fire & forget
		if s.dispatcher != nil && part.Quantity < s.lowStockThreshold {
			payload := map[string]interface{}{
				"part_number": part.PartNumber,
				"name":        part.Name,
				"quantity":    part.Quantity,
				"threshold":   s.lowStockThreshold,
			}
			if err := s.dispatcher.EnqueueLowStockAlert(ctx, payload); err != nil {
				log.Warn().Err(err).Str("part_number", part.PartNumber).Msg("failed to enqueue low stock alert")
			}
		}

		order.ItemsUsed = append(order.ItemsUsed, model.WorkOrderItem{
			WorkOrderID:  order.ID,
			PartNumber:   item.PartNumber,
			QuantityUsed: item.QuantityUsed,
		})
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, err
	}
	return workOrderToResponse(order), nil
}

func (s *workOrderService) List(ctx context.Context) ([]dto.WorkOrderResponse, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.WorkOrderResponse, 0, len(orders))
	for i := range orders {
		resp = append(resp, *workOrderToResponse(&orders[i]))
	}
	return resp, nil
}

func (s *workOrderService) Get(ctx context.Context, id string) (*dto.WorkOrderResponse, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return workOrderToResponse(order), nil
}

func (s *workOrderService) UpdateStatus(ctx context.Context, id, status string) (*dto.WorkOrderResponse, error) {
	order, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	return workOrderToResponse(order), nil
}

func workOrderToResponse(wo *model.WorkOrder) *dto.WorkOrderResponse {
	items := make([]dto.WorkOrderItemResponse, 0, len(wo.ItemsUsed))
	for _, item := range wo.ItemsUsed {
		items = append(items, dto.WorkOrderItemResponse{
			PartNumber:   item.PartNumber,
			QuantityUsed: item.QuantityUsed,
		})
	}
	return &dto.WorkOrderResponse{
		ID:          wo.ID,
		VehicleVIN:  wo.VehicleVIN,
		Description: wo.Description,
		Status:      wo.Status,
		ItemsUsed:   items,
	}
}
