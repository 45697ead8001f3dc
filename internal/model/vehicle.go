package model

import (
	"time"

	"github.com/google/uuid"
)

// Vehicle is a fleet bus. Immutable after creation — there is no update or
// delete endpoint in this system.
type Vehicle struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"not null"`
	VIN       string    `gorm:"column:vin;uniqueIndex;not null"`
	Make      string    `gorm:"not null"`
	Model     string    `gorm:"not null"`
	Year      int       `gorm:"not null"`
	CreatedAt time.Time
}
