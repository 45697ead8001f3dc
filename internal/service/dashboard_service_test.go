package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/asbuyukgungor-bot/bus-erp/internal/model"
	"github.com/asbuyukgungor-bot/bus-erp/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStats(t *testing.T) {
	ctx := context.Background()
	stores := memory.NewStores()

	for i, q := range []int{25, 8, 50, 5} {
		require.NoError(t, stores.Parts.Create(ctx, &model.Part{
			Name: fmt.Sprintf("Part %d", i), PartNumber: fmt.Sprintf("P-%d", i), Supplier: "S", Quantity: q,
		}))
	}
	require.NoError(t, stores.Vehicles.Create(ctx, &model.Vehicle{Name: "Bus-101", VIN: "V1", Make: "M", Model: "X", Year: 2021}))
	require.NoError(t, stores.Vehicles.Create(ctx, &model.Vehicle{Name: "Bus-102", VIN: "V2", Make: "M", Model: "X", Year: 2022}))

	orders := []*model.WorkOrder{
		{ID: "a", VehicleVIN: "V1", Status: model.StatusPending},
		{ID: "b", VehicleVIN: "V1", Status: model.StatusInProgress},
		{ID: "c", VehicleVIN: "V2", Status: model.StatusCompleted},
	}
	for _, wo := range orders {
		require.NoError(t, stores.WorkOrders.Create(ctx, wo))
	}

	svc := NewDashboardService(stores.Parts, stores.Vehicles, stores.WorkOrders, 10)
	stats, err := svc.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 4, stats.TotalParts)
	assert.Equal(t, 2, stats.LowStockParts)
	assert.Equal(t, 2, stats.TotalVehicles)
	assert.Equal(t, 2, stats.OpenWorkOrders)
}

func TestDashboardStatsEmpty(t *testing.T) {
	stores := memory.NewStores()
	svc := NewDashboardService(stores.Parts, stores.Vehicles, stores.WorkOrders, 10)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalParts)
	assert.Equal(t, 0, stats.LowStockParts)
	assert.Equal(t, 0, stats.TotalVehicles)
	assert.Equal(t, 0, stats.OpenWorkOrders)
}
