package dto

type DashboardStatsResponse struct {
	TotalParts     int `json:"total_parts"`
	LowStockParts  int `json:"low_stock_parts"`
	TotalVehicles  int `json:"total_vehicles"`
	OpenWorkOrders int `json:"open_work_orders"`
}

type LocationResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
