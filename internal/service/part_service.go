package service

import (
	"context"

	"github.com/asbuyukgungor-bot/bus-erp/internal/dto"
	"github.com/asbuyukgungor-bot/bus-erp/internal/model"
	"github.com/asbuyukgungor-bot/bus-erp/internal/repository"
)

type PartService interface {
	Create(ctx context.Context, req dto.CreatePartRequest) (*dto.PartResponse, error)
	List(ctx context.Context) ([]dto.PartResponse, error)
	Get(ctx context.Context, partNumber string) (*dto.PartResponse, error)
}

type partService struct {
	repo      repository.PartRepository
	movements repository.StockMovementRepository
}

func NewPartService(repo repository.PartRepository, movements repository.StockMovementRepository) PartService {
	return &partService{repo: repo, movements: movements}
}

func (s *partService) Create(ctx context.Context, req dto.CreatePartRequest) (*dto.PartResponse, error) {
	part := &model.Part{
		Name:       req.Name,
		PartNumber: req.PartNumber,
		Supplier:   req.Supplier,
		Quantity:   req.Quantity,
		Price:      req.Price,
	}
	if err := s.repo.Create(ctx, part); err != nil {
		return nil, err
	}

	if req.Quantity > 0 && s.movements != nil {
		if err := s.movements.Create(ctx, &model.StockMovement{
			PartNumber:     part.PartNumber,
			Type:           "initial_stock",
			Quantity:       part.Quantity,
			QuantityBefore: 0,
			QuantityAfter:  part.Quantity,
			Reason:         "Part created",
		}); err != nil {
			return nil, err
		}
	}

	return partToResponse(part), nil
}

func (s *partService) List(ctx context.Context) ([]dto.PartResponse, error) {
	parts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.PartResponse, 0, len(parts))
	for i := range parts {
		resp = append(resp, *partToResponse(&parts[i]))
	}
	return resp, nil
}

func (s *partService) Get(ctx context.Context, partNumber string) (*dto.PartResponse, error) {
	part, err := s.repo.FindByNumber(ctx, partNumber)
	if err != nil {
		return nil, err
	}
	return partToResponse(part), nil
}

func partToResponse(p *model.Part) *dto.PartResponse {
	return &dto.PartResponse{
		Name:       p.Name,
		PartNumber: p.PartNumber,
		Supplier:   p.Supplier,
		Quantity:   p.Quantity,
		Price:      p.Price,
	}
}
