package service

import (
	"context"

	"github.com/asbuyukgungor-bot/bus-erp/internal/dto"
	"github.com/asbuyukgungor-bot/bus-erp/internal/model"
	"github.com/asbuyukgungor-bot/bus-erp/internal/repository"
)

type VehicleService interface {
	Create(ctx context.Context, req dto.CreateVehicleRequest) (*dto.VehicleResponse, error)
	List(ctx context.Context) ([]dto.VehicleResponse, error)
}

type vehicleService struct {
	repo repository.VehicleRepository
}

func NewVehicleService(repo repository.VehicleRepository) VehicleService {
	return &vehicleService{repo: repo}
}

func (s *vehicleService) Create(ctx context.Context, req dto.CreateVehicleRequest) (*dto.VehicleResponse, error) {
	vehicle := &model.Vehicle{
		Name: req.Name,
		VIN:  req.VIN,
		Make: req.Make,
		Model: req.Model,
		Year: req.Year,
	}
	if err := s.repo.Create(ctx, vehicle); err != nil {
		return nil, err
	}
	return vehicleToResponse(vehicle), nil
}

func (s *vehicleService) List(ctx context.Context) ([]dto.VehicleResponse, error) {
	vehicles, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.VehicleResponse, 0, len(vehicles))
	for i := range vehicles {
		resp = append(resp, *vehicleToResponse(&vehicles[i]))
	}
	return resp, nil
}

func vehicleToResponse(v *model.Vehicle) *dto.VehicleResponse {
	return &dto.VehicleResponse{
		Name: v.Name,
		VIN:  v.VIN,
		Make: v.Make,
		Model: v.Model,
		Year: v.Year,
	}
}
