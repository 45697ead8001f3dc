// Package memory implements the repository interfaces with in-process stores.
// This is the default backend: state lives for the process lifetime and lists
// preserve insertion order.
package memory

import (
	"context"

	"github.com/asbuyukgungor-bot/bus-erp/internal/model"
	"github.com/asbuyukgungor-bot/bus-erp/internal/repository"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// NewStores builds a fresh, empty in-memory store set.
func NewStores() *repository.Stores {
	return &repository.Stores{
		Parts:      NewPartStore(),
		Vehicles:   NewVehicleStore(),
		WorkOrders: NewWorkOrderStore(),
		Users:      NewUserStore(),
		Locations:  NewLocationStore(),
		Movements:  NewStockMovementStore(),
	}
}

// Seed loads the demo fleet data: the admin user, a starter parts catalog,
// one vehicle and the two warehouse locations.
func Seed(ctx context.Context, stores *repository.Stores) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	email := "admin@example.com"
	fullName := "Admin User"
	if err := stores.Users.Create(ctx, &model.User{
		Username:     "admin",
		Email:        &email,
		FullName:     &fullName,
		PasswordHash: string(hash),
		Role:         "admin",
	}); err != nil {
		return err
	}

	parts := []*model.Part{
		{Name: "Oil Filter", PartNumber: "OF-1022", Supplier: "Supplier A", Quantity: 25, Price: decimal.NewFromFloat(15.50)},
		{Name: "Brake Pad Set", PartNumber: "BP-4510", Supplier: "Supplier B", Quantity: 8, Price: decimal.NewFromFloat(75.00)},
	}
	for _, p := range parts {
		if err := stores.Parts.Create(ctx, p); err != nil {
			return err
		}
	}

	if err := stores.Vehicles.Create(ctx, &model.Vehicle{
		Name: "Bus-101", VIN: "VIN101ABC", Make: "Mercedes-Benz", Model: "Tourismo", Year: 2021,
	}); err != nil {
		return err
	}

	if locs, ok := stores.Locations.(*LocationStore); ok {
		locs.Add(model.Location{ID: 1, Name: "Main Warehouse"})
		locs.Add(model.Location{ID: 2, Name: "Garage A"})
	}
	return nil
}
