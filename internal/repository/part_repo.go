package repository

import (
	"context"
	"errors"

	"github.com/asbuyukgungor-bot/bus-erp/internal/model"

	"gorm.io/gorm"
)

// PartRepository defines the data access contract for the part catalog.
// Services depend on this interface, not on a concrete store, so the catalog
// can be backed by the in-memory store or by Postgres without touching
// endpoint logic.
type PartRepository interface {
	Create(ctx context.Context, p *model.Part) error
	List(ctx context.Context) ([]model.Part, error)
	FindByNumber(ctx context.Context, partNumber string) (*model.Part, error)

	// DecrementStock atomically checks and decrements a part's quantity.
	// Returns the part after the decrement, ErrNotFound if the part number is
	// unknown, or *InsufficientStockError when quantity < qty. The
	// check-and-decrement is a single mutual-exclusion region per store, so
	// concurrent callers cannot oversell.
	DecrementStock(ctx context.Context, partNumber string, qty int) (*model.Part, error)

	Count(ctx context.Context) (int, error)
	CountBelow(ctx context.Context, threshold int) (int, error)
	ListBelow(ctx context.Context, threshold int) ([]model.Part, error)
}

type partRepo struct{ db *gorm.DB }

func NewPartRepository(db *gorm.DB) PartRepository { return &partRepo{db: db} }

func (r *partRepo) Create(ctx context.Context, p *model.Part) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Part{}).
		Where("part_number = ?", p.PartNumber).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicate
	}
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *partRepo) List(ctx context.Context) ([]model.Part, error) {
	var parts []model.Part
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&parts).Error
	return parts, err
}

func (r *partRepo) FindByNumber(ctx context.Context, partNumber string) (*model.Part, error) {
	var p model.Part
	err := r.db.WithContext(ctx).Where("part_number = ?", partNumber).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &p, err
}

func (r *partRepo) DecrementStock(ctx context.Context, partNumber string, qty int) (*model.Part, error) {
	// Conditional UPDATE is the oversell guard — quantity can never go negative.
	res := r.db.WithContext(ctx).Model(&model.Part{}).
		Where("part_number = ? AND quantity >= ?", partNumber, qty).
		Update("quantity", gorm.Expr("quantity - ?", qty))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// Either unknown part or not enough stock — re-read to tell them apart.
		p, err := r.FindByNumber(ctx, partNumber)
		if err != nil {
			return nil, err
		}
		return nil, &InsufficientStockError{PartName: p.Name, Required: qty, Available: p.Quantity}
	}
	return r.FindByNumber(ctx, partNumber)
}

func (r *partRepo) Count(ctx context.Context) (int, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Part{}).Count(&n).Error
	return int(n), err
}

func (r *partRepo) CountBelow(ctx context.Context, threshold int) (int, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Part{}).
		Where("quantity < ?", threshold).Count(&n).Error
	return int(n), err
}

func (r *partRepo) ListBelow(ctx context.Context, threshold int) ([]model.Part, error) {
	var parts []model.Part
	err := r.db.WithContext(ctx).
		Where("quantity < ?", threshold).Order("created_at ASC").Find(&parts).Error
	return parts, err
}
