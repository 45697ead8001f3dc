package repository

import "gorm.io/gorm"

// Stores bundles the per-entity store interfaces. The composition root builds
// one of these from either the in-memory backend or the GORM backend and wires
// it through the router.
type Stores struct {
	Parts      PartRepository
	Vehicles   VehicleRepository
	WorkOrders WorkOrderRepository
	Users      UserRepository
	Locations  LocationRepository
	Movements  StockMovementRepository
}

// NewGormStores builds the Postgres-backed store set.
func NewGormStores(db *gorm.DB) *Stores {
	return &Stores{
		Parts:      NewPartRepository(db),
		Vehicles:   NewVehicleRepository(db),
		WorkOrders: NewWorkOrderRepository(db),
		Users:      NewUserRepository(db),
		Locations:  NewLocationRepository(db),
		Movements:  NewStockMovementRepository(db),
	}
}
