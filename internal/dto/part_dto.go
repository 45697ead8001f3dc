package dto

import "github.com/shopspring/decimal"

type CreatePartRequest struct {
	Name       string          `json:"name" validate:"required"`
	PartNumber string          `json:"part_number" validate:"required"`
	Supplier   string          `json:"supplier" validate:"required"`
	Quantity   int             `json:"quantity" validate:"min=0"`
	Price      decimal.Decimal `json:"price" validate:"min=0"`
}

type PartResponse struct {
	Name       string          `json:"name"`
	PartNumber string          `json:"part_number"`
	Supplier   string          `json:"supplier"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
}
