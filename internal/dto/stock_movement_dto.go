package dto

type StockMovementResponse struct {
	ID             string  `json:"id"`
	PartNumber     string  `json:"part_number"`
	Type           string  `json:"type"`
	Quantity       int     `json:"quantity"`
	QuantityBefore int     `json:"quantity_before"`
	QuantityAfter  int     `json:"quantity_after"`
	Reason         string  `json:"reason"`
	WorkOrderID    *string `json:"work_order_id"`
	CreatedAt      string  `json:"created_at"`
}
