package repository

import (
	"context"
	"errors"

	"github.com/asbuyukgungor-bot/bus-erp/internal/model"

	"gorm.io/gorm"
)

// WorkOrderRepository defines the data access contract for the work order ledger.
type WorkOrderRepository interface {
	Create(ctx context.Context, wo *model.WorkOrder) error
	List(ctx context.Context) ([]model.WorkOrder, error)
	FindByID(ctx context.Context, id string) (*model.WorkOrder, error)
	UpdateStatus(ctx context.Context, id, status string) (*model.WorkOrder, error)
	CountOpen(ctx context.Context) (int, error)
}

type workOrderRepo struct{ db *gorm.DB }

func NewWorkOrderRepository(db *gorm.DB) WorkOrderRepository { return &workOrderRepo{db: db} }

func (r *workOrderRepo) Create(ctx context.Context, wo *model.WorkOrder) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.WorkOrder{}).
		Where("id = ?", wo.ID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicate
	}
	for i := range wo.ItemsUsed {
		wo.ItemsUsed[i].Position = i
	}
	return r.db.WithContext(ctx).Create(wo).Error
}

func (r *workOrderRepo) List(ctx context.Context) ([]model.WorkOrder, error) {
	var orders []model.WorkOrder
	err := r.db.WithContext(ctx).
		Preload("ItemsUsed", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Order("created_at ASC").Find(&orders).Error
	return orders, err
}

func (r *workOrderRepo) FindByID(ctx context.Context, id string) (*model.WorkOrder, error) {
	var wo model.WorkOrder
	err := r.db.WithContext(ctx).
		Preload("ItemsUsed", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("id = ?", id).First(&wo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &wo, err
}

// UpdateStatus overwrites status unconditionally — any string is accepted,
// there is no state machine.
func (r *workOrderRepo) UpdateStatus(ctx context.Context, id, status string) (*model.WorkOrder, error) {
	res := r.db.WithContext(ctx).Model(&model.WorkOrder{}).
		Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *workOrderRepo) CountOpen(ctx context.Context) (int, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.WorkOrder{}).
		Where("status <> ?", model.StatusCompleted).Count(&n).Error
	return int(n), err
}
