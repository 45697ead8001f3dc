package repository

import (
	"context"

	"github.com/asbuyukgungor-bot/bus-erp/internal/model"

	"gorm.io/gorm"
)

// LocationRepository serves the static location reference data.
type LocationRepository interface {
	List(ctx context.Context) ([]model.Location, error)
}

type locationRepo struct{ db *gorm.DB }

func NewLocationRepository(db *gorm.DB) LocationRepository { return &locationRepo{db: db} }

func (r *locationRepo) List(ctx context.Context) ([]model.Location, error) {
	var locations []model.Location
	err := r.db.WithContext(ctx).Order("id ASC").Find(&locations).Error
	return locations, err
}
