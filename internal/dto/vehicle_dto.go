package dto

type CreateVehicleRequest struct {
	Name  string `json:"name" validate:"required"`
	VIN   string `json:"vin" validate:"required"`
	Make  string `json:"make" validate:"required"`
	Model string `json:"model" validate:"required"`
	Year  int    `json:"year" validate:"required"`
}

type VehicleResponse struct {
	Name  string `json:"name"`
	VIN   string `json:"vin"`
	Make  string `json:"make"`
	Model string `json:"model"`
	Year  int    `json:"year"`
}
