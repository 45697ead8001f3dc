package model

import (
	"time"

	"github.com/google/uuid"
)

// Work order statuses. Status is free text on the wire — the update endpoint
// accepts any string, these are the documented values.
const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

// WorkOrder records maintenance work on a vehicle, consuming parts from stock.
// ItemsUsed is immutable after creation; only Status is ever updated.
type WorkOrder struct {
	ID          string          `gorm:"primaryKey"` // client-assigned or generated uuid string
	VehicleVIN  string          `gorm:"column:vehicle_vin;not null"`
	Description string          `gorm:"not null"`
	Status      string          `gorm:"not null;default:'Pending'"`
	ItemsUsed   []WorkOrderItem `gorm:"foreignKey:WorkOrderID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// WorkOrderItem is one consumed-part line of a work order.
type WorkOrderItem struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	WorkOrderID  string    `gorm:"index;not null"`
	PartNumber   string    `gorm:"not null"`
	QuantityUsed int       `gorm:"not null"`
	Position     int       `gorm:"not null;default:0"` // preserves list order
}
