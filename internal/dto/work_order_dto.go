package dto

type WorkOrderItemRequest struct {
	PartNumber   string `json:"part_number" validate:"required"`
	QuantityUsed int    `json:"quantity_used" validate:"required,gt=0"`
}

type CreateWorkOrderRequest struct {
	// ID is optional — server assigns a uuid when empty.
	ID          string                 `json:"id"`
	VehicleVIN  string                 `json:"vehicle_vin" validate:"required"`
	Description string                 `json:"description" validate:"required"`
	Status      string                 `json:"status"`
	ItemsUsed   []WorkOrderItemRequest `json:"items_used" validate:"dive"`
}

type UpdateWorkOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type WorkOrderItemResponse struct {
	PartNumber   string `json:"part_number"`
	QuantityUsed int    `json:"quantity_used"`
}

type WorkOrderResponse struct {
	ID          string                  `json:"id"`
	VehicleVIN  string                  `json:"vehicle_vin"`
	Description string                  `json:"description"`
	Status      string                  `json:"status"`
	ItemsUsed   []WorkOrderItemResponse `json:"items_used"`
}
