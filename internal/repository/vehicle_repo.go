package repository

import (
	"context"

	"github.com/asbuyukgungor-bot/bus-erp/internal/model"

	"gorm.io/gorm"
)

// VehicleRepository defines the data access contract for the vehicle registry.
type VehicleRepository interface {
	Create(ctx context.Context, v *model.Vehicle) error
	List(ctx context.Context) ([]model.Vehicle, error)
	Count(ctx context.Context) (int, error)
}

type vehicleRepo struct{ db *gorm.DB }

func NewVehicleRepository(db *gorm.DB) VehicleRepository { return &vehicleRepo{db: db} }

func (r *vehicleRepo) Create(ctx context.Context, v *model.Vehicle) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Vehicle{}).
		Where("vin = ?", v.VIN).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicate
	}
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *vehicleRepo) List(ctx context.Context) ([]model.Vehicle, error) {
	var vehicles []model.Vehicle
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&vehicles).Error
	return vehicles, err
}

func (r *vehicleRepo) Count(ctx context.Context) (int, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Vehicle{}).Count(&n).Error
	return int(n), err
}
