package model

import (
	"time"

	"github.com/google/uuid"
)

// StockMovement records every stock change on a part. Created automatically
// when a work order consumes parts or when a part is created with initial stock.
type StockMovement struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PartNumber     string    `gorm:"index;not null"`
	Type           string    `gorm:"not null"` // "work_order" | "initial_stock"
	Quantity       int       `gorm:"not null"` // positive = in, negative = out
	QuantityBefore int       `gorm:"not null"`
	QuantityAfter  int       `gorm:"not null"`
	Reason         string
	WorkOrderID    *string `gorm:"index"`
	CreatedAt      time.Time
}
