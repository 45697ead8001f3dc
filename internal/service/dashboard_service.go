package service

import (
	"context"

	"github.com/asbuyukgungor-bot/bus-erp/internal/dto"
	"github.com/asbuyukgungor-bot/bus-erp/internal/repository"
)

// DashboardService is a read-only computed view over the three stores.
type DashboardService interface {
	Stats(ctx context.Context) (*dto.DashboardStatsResponse, error)
}

type dashboardService struct {
	parts             repository.PartRepository
	vehicles          repository.VehicleRepository
	workOrders        repository.WorkOrderRepository
	lowStockThreshold int
}

func NewDashboardService(
	parts repository.PartRepository,
	vehicles repository.VehicleRepository,
	workOrders repository.WorkOrderRepository,
	lowStockThreshold int,
) DashboardService {
	return &dashboardService{
		parts:             parts,
		vehicles:          vehicles,
		workOrders:        workOrders,
		lowStockThreshold: lowStockThreshold,
	}
}

func (s *dashboardService) Stats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	totalParts, err := s.parts.Count(ctx)
	if err != nil {
		return nil, err
	}
	lowStock, err := s.parts.CountBelow(ctx, s.lowStockThreshold)
	if err != nil {
		return nil, err
	}
	totalVehicles, err := s.vehicles.Count(ctx)
	if err != nil {
		return nil, err
	}
	openOrders, err := s.workOrders.CountOpen(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardStatsResponse{
		TotalParts:     totalParts,
		LowStockParts:  lowStock,
		TotalVehicles:  totalVehicles,
		OpenWorkOrders: openOrders,
	}, nil
}
