package repository

import (
	"context"

	"github.com/asbuyukgungor-bot/bus-erp/internal/model"

	"gorm.io/gorm"
)

// StockMovementFilter narrows the movement listing.
type StockMovementFilter struct {
	PartNumber string
	Type       string
}

// StockMovementRepository is the audit trail of every stock change.
type StockMovementRepository interface {
	Create(ctx context.Context, m *model.StockMovement) error
	List(ctx context.Context, filter StockMovementFilter) ([]model.StockMovement, error)
}

type stockMovementRepo struct{ db *gorm.DB }

func NewStockMovementRepository(db *gorm.DB) StockMovementRepository {
	return &stockMovementRepo{db: db}
}

func (r *stockMovementRepo) Create(ctx context.Context, m *model.StockMovement) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *stockMovementRepo) List(ctx context.Context, filter StockMovementFilter) ([]model.StockMovement, error) {
	q := r.db.WithContext(ctx).Model(&model.StockMovement{})
	if filter.PartNumber != "" {
		q = q.Where("part_number = ?", filter.PartNumber)
	}
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	var movements []model.StockMovement
	err := q.Order("created_at DESC").Find(&movements).Error
	return movements, err
}
