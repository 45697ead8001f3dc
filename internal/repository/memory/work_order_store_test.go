package memory

import (
	"context"
	"testing"

	"github.com/asbuyukgungor-bot/bus-erp/internal/model"
	"github.com/asbuyukgungor-bot/bus-erp/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkOrderStoreRejectsDuplicateID(t *testing.T) {
	ctx := context.Background()
	store := NewWorkOrderStore()

	require.NoError(t, store.Create(ctx, &model.WorkOrder{
		ID: "WO-1", VehicleVIN: "VIN101ABC", Description: "Brake service", Status: model.StatusPending,
	}))
	err := store.Create(ctx, &model.WorkOrder{
		ID: "WO-1", VehicleVIN: "VIN101ABC", Description: "Duplicate", Status: model.StatusPending,
	})
	assert.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestWorkOrderStoreUpdateStatus(t *testing.T) {
	ctx := context.Background()
	store := NewWorkOrderStore()
	require.NoError(t, store.Create(ctx, &model.WorkOrder{
		ID: "WO-2", VehicleVIN: "VIN101ABC", Description: "Oil change", Status: model.StatusPending,
		ItemsUsed: []model.WorkOrderItem{{WorkOrderID: "WO-2", PartNumber: "OF-1022", QuantityUsed: 1}},
	}))

	updated, err := store.UpdateStatus(ctx, "WO-2", model.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, updated.Status)
	// only the status changes
	assert.Equal(t, "Oil change", updated.Description)
	require.Len(t, updated.ItemsUsed, 1)
	assert.Equal(t, "OF-1022", updated.ItemsUsed[0].PartNumber)

	_, err = store.UpdateStatus(ctx, "WO-404", model.StatusCompleted)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestWorkOrderStoreCountOpen(t *testing.T) {
	ctx := context.Background()
	store := NewWorkOrderStore()
	orders := []*model.WorkOrder{
		{ID: "a", VehicleVIN: "v", Status: model.StatusPending},
		{ID: "b", VehicleVIN: "v", Status: model.StatusInProgress},
		{ID: "c", VehicleVIN: "v", Status: model.StatusCompleted},
	}
	for _, wo := range orders {
		require.NoError(t, store.Create(ctx, wo))
	}

	open, err := store.CountOpen(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, open)
}

func TestVehicleStoreRejectsDuplicateVIN(t *testing.T) {
	ctx := context.Background()
	store := NewVehicleStore()
	require.NoError(t, store.Create(ctx, &model.Vehicle{
		Name: "Bus-101", VIN: "VIN101ABC", Make: "Mercedes-Benz", Model: "Tourismo", Year: 2021,
	}))
	err := store.Create(ctx, &model.Vehicle{
		Name: "Bus-102", VIN: "VIN101ABC", Make: "MAN", Model: "Lion's Coach", Year: 2020,
	})
	assert.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestStockMovementStoreFiltersAndOrder(t *testing.T) {
	ctx := context.Background()
	store := NewStockMovementStore()
	woID := "WO-9"
	movements := []*model.StockMovement{
		{PartNumber: "OF-1022", Type: "initial_stock", Quantity: 25, QuantityAfter: 25},
		{PartNumber: "OF-1022", Type: "work_order", Quantity: -2, QuantityBefore: 25, QuantityAfter: 23, WorkOrderID: &woID},
		{PartNumber: "BP-4510", Type: "initial_stock", Quantity: 8, QuantityAfter: 8},
	}
	for _, m := range movements {
		require.NoError(t, store.Create(ctx, m))
	}

	all, err := store.List(ctx, repository.StockMovementFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	// newest first
	assert.Equal(t, "BP-4510", all[0].PartNumber)

	byPart, err := store.List(ctx, repository.StockMovementFilter{PartNumber: "OF-1022"})
	require.NoError(t, err)
	assert.Len(t, byPart, 2)

	byType, err := store.List(ctx, repository.StockMovementFilter{Type: "work_order"})
	require.NoError(t, err)
	require.Len(t, byType, 1)
	assert.Equal(t, -2, byType[0].Quantity)
}
