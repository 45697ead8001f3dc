package service

import (
	"context"
	"errors"
	"testing"

	"github.com/asbuyukgungor-bot/bus-erp/internal/dto"
	"github.com/asbuyukgungor-bot/bus-erp/internal/model"
	"github.com/asbuyukgungor-bot/bus-erp/internal/repository"
	"github.com/asbuyukgungor-bot/bus-erp/internal/repository/memory"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededStores(t *testing.T) *repository.Stores {
	t.Helper()
	stores := memory.NewStores()
	ctx := context.Background()
	parts := []*model.Part{
		{Name: "Oil Filter", PartNumber: "OF-1022", Supplier: "Supplier A", Quantity: 25, Price: decimal.NewFromFloat(15.50)},
		{Name: "Brake Pad Set", PartNumber: "BP-4510", Supplier: "Supplier B", Quantity: 8, Price: decimal.NewFromFloat(75.00)},
	}
	for _, p := range parts {
		require.NoError(t, stores.Parts.Create(ctx, p))
	}
	require.NoError(t, stores.Vehicles.Create(ctx, &model.Vehicle{
		Name: "Bus-101", VIN: "VIN101ABC", Make: "Mercedes-Benz", Model: "Tourismo", Year: 2021,
	}))
	return stores
}

func newWorkOrderService(stores *repository.Stores) WorkOrderService {
	return NewWorkOrderService(stores.WorkOrders, stores.Parts, stores.Movements, nil, 10)
}

func TestCreateWorkOrderConsumesStock(t *testing.T) {
	ctx := context.Background()
	stores := seededStores(t)
	svc := newWorkOrderService(stores)

	resp, err := svc.Create(ctx, dto.CreateWorkOrderRequest{
		VehicleVIN:  "VIN101ABC",
		Description: "60k km service",
		ItemsUsed: []dto.WorkOrderItemRequest{
			{PartNumber: "OF-1022", QuantityUsed: 2},
			{PartNumber: "BP-4510", QuantityUsed: 4},
		},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, model.StatusPending, resp.Status)
	require.Len(t, resp.ItemsUsed, 2)

	oil, err := stores.Parts.FindByNumber(ctx, "OF-1022")
	require.NoError(t, err)
	assert.Equal(t, 23, oil.Quantity)

	brake, err := stores.Parts.FindByNumber(ctx, "BP-4510")
	require.NoError(t, err)
	assert.Equal(t, 4, brake.Quantity)
}

func TestCreateWorkOrderRecordsStockMovements(t *testing.T) {
	ctx := context.Background()
	stores := seededStores(t)
	svc := newWorkOrderService(stores)

	resp, err := svc.Create(ctx, dto.CreateWorkOrderRequest{
		VehicleVIN:  "VIN101ABC",
		Description: "Brake service",
		ItemsUsed:   []dto.WorkOrderItemRequest{{PartNumber: "BP-4510", QuantityUsed: 3}},
	})
	require.NoError(t, err)

	movements, err := stores.Movements.List(ctx, repository.StockMovementFilter{PartNumber: "BP-4510"})
	require.NoError(t, err)
	require.Len(t, movements, 1)
	m := movements[0]
	assert.Equal(t, "work_order", m.Type)
	assert.Equal(t, -3, m.Quantity)
	assert.Equal(t, 8, m.QuantityBefore)
	assert.Equal(t, 5, m.QuantityAfter)
	require.NotNil(t, m.WorkOrderID)
	assert.Equal(t, resp.ID, *m.WorkOrderID)
}

func TestCreateWorkOrderUnknownPart(t *testing.T) {
	ctx := context.Background()
	stores := seededStores(t)
	svc := newWorkOrderService(stores)

	_, err := svc.Create(ctx, dto.CreateWorkOrderRequest{
		VehicleVIN:  "VIN101ABC",
		Description: "Phantom part",
		ItemsUsed:   []dto.WorkOrderItemRequest{{PartNumber: "XX-0000", QuantityUsed: 1}},
	})
	var notFound *PartNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "Part with number XX-0000 not found.", err.Error())

	// nothing was consumed and no order was persisted
	oil, _ := stores.Parts.FindByNumber(ctx, "OF-1022")
	assert.Equal(t, 25, oil.Quantity)
	orders, _ := stores.WorkOrders.List(ctx)
	assert.Empty(t, orders)
}

// A failure on a later line item does not restore stock already consumed by
// earlier line items.
func TestCreateWorkOrderPartialConsumptionOnFailure(t *testing.T) {
	ctx := context.Background()
	stores := seededStores(t)
	svc := newWorkOrderService(stores)

	_, err := svc.Create(ctx, dto.CreateWorkOrderRequest{
		VehicleVIN:  "VIN101ABC",
		Description: "Overdraw",
		ItemsUsed: []dto.WorkOrderItemRequest{
			{PartNumber: "OF-1022", QuantityUsed: 5},
			{PartNumber: "BP-4510", QuantityUsed: 9},
		},
	})
	var insufficient *repository.InsufficientStockError
	require.True(t, errors.As(err, &insufficient))
	assert.Equal(t, "Not enough stock for part Brake Pad Set. Required: 9, Available: 8", err.Error())

	oil, _ := stores.Parts.FindByNumber(ctx, "OF-1022")
	assert.Equal(t, 20, oil.Quantity, "first line item stays consumed")
	brake, _ := stores.Parts.FindByNumber(ctx, "BP-4510")
	assert.Equal(t, 8, brake.Quantity, "failed line item is untouched")

	orders, _ := stores.WorkOrders.List(ctx)
	assert.Empty(t, orders)
}

func TestCreateWorkOrderHonorsClientID(t *testing.T) {
	ctx := context.Background()
	stores := seededStores(t)
	svc := newWorkOrderService(stores)

	resp, err := svc.Create(ctx, dto.CreateWorkOrderRequest{
		ID:          "WO-CLIENT-1",
		VehicleVIN:  "VIN101ABC",
		Description: "Inspection",
	})
	require.NoError(t, err)
	assert.Equal(t, "WO-CLIENT-1", resp.ID)

	_, err = svc.Create(ctx, dto.CreateWorkOrderRequest{
		ID:          "WO-CLIENT-1",
		VehicleVIN:  "VIN101ABC",
		Description: "Same id again",
	})
	assert.ErrorIs(t, err, repository.ErrDuplicate)
}

// A rejected duplicate id must not consume stock or leave movement rows —
// the retry path has to be idempotent.
func TestCreateWorkOrderDuplicateIDLeavesStockUntouched(t *testing.T) {
	ctx := context.Background()
	stores := seededStores(t)
	svc := newWorkOrderService(stores)

	req := dto.CreateWorkOrderRequest{
		ID:          "WO-1",
		VehicleVIN:  "VIN101ABC",
		Description: "Oil change",
		ItemsUsed:   []dto.WorkOrderItemRequest{{PartNumber: "OF-1022", QuantityUsed: 2}},
	}
	_, err := svc.Create(ctx, req)
	require.NoError(t, err)

	oil, err := stores.Parts.FindByNumber(ctx, "OF-1022")
	require.NoError(t, err)
	require.Equal(t, 23, oil.Quantity)

	_, err = svc.Create(ctx, req)
	require.ErrorIs(t, err, repository.ErrDuplicate)

	oil, err = stores.Parts.FindByNumber(ctx, "OF-1022")
	require.NoError(t, err)
	assert.Equal(t, 23, oil.Quantity, "rejected duplicate order must not consume stock")

	movements, err := stores.Movements.List(ctx, repository.StockMovementFilter{PartNumber: "OF-1022"})
	require.NoError(t, err)
	assert.Len(t, movements, 1, "rejected duplicate order must not add movement rows")
}

func TestUpdateWorkOrderStatus(t *testing.T) {
	ctx := context.Background()
	stores := seededStores(t)
	svc := newWorkOrderService(stores)

	resp, err := svc.Create(ctx, dto.CreateWorkOrderRequest{
		VehicleVIN:  "VIN101ABC",
		Description: "Status flow",
		ItemsUsed:   []dto.WorkOrderItemRequest{{PartNumber: "OF-1022", QuantityUsed: 1}},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, resp.ID, model.StatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, model.StatusInProgress, updated.Status)
	assert.Equal(t, resp.Description, updated.Description)
	assert.Equal(t, resp.ItemsUsed, updated.ItemsUsed)

	_, err = svc.UpdateStatus(ctx, "missing", model.StatusCompleted)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
