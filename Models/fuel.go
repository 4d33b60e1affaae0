package Models

import "gorm.io/gorm"

type Fuel struct {
	gorm.Model
	VehicleID       uint    `json:"vehicle_id" gorm:"index"`
	FilledDate      string  `json:"filled_date"` // YYYY-MM-DD
	FuelType        string  `json:"fuel_type"`
	Litres          float64 `json:"litres"`
	CostPerLitre    float64 `json:"cost_per_litre"`
	TotalCost       float64 `json:"total_cost"`
	OdometerReading float64 `json:"odometer_reading"`
	Notes           string  `json:"notes"`
}

func (Fuel) TableName() string {
	return "fuel_events"
}
