package model

// Location is static reference data (warehouses, garages). Read-only.
type Location struct {
	ID   int    `gorm:"primaryKey"`
	Name string `gorm:"not null"`
}
