package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Part is a spare part stock record. PartNumber is the business key used by
// work orders; Quantity never goes below zero.
type Part struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name       string          `gorm:"not null"`
	PartNumber string          `gorm:"uniqueIndex;not null"`
	Supplier   string          `gorm:"not null"`
	Quantity   int             `gorm:"not null;default:0"`
	Price      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
