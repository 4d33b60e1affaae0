package Models

import "gorm.io/gorm"

// Vehicle carries running totals maintained by the trip, maintenance and
// spare part write paths. The nightly reconciler recomputes them from the
// live child rows.
type Vehicle struct {
	gorm.Model
	VehicleNumber        string  `json:"vehicle_number" gorm:"uniqueIndex"`
	VehicleType          string  `json:"vehicle_type"`
	ModelName            string  `json:"model_name"`
	Notes                string  `json:"notes"`
	TotalTrips           int64   `json:"total_trips"`
	TotalKm              float64 `json:"total_km"`
	TotalMaintenanceCost float64 `json:"total_maintenance_cost"`
}
