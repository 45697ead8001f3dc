package repository

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by every store when the requested record is absent.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when a unique business key (part_number, vin,
// work order id) already exists in the store.
var ErrDuplicate = errors.New("duplicate key")

// InsufficientStockError is returned by PartRepository.DecrementStock when the
// part holds less stock than requested. Carries the fields the API error
// message needs.
type InsufficientStockError struct {
	PartName  string
	Required  int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Not enough stock for part %s. Required: %d, Available: %d",
		e.PartName, e.Required, e.Available)
}
