package Models

import (
	"time"

	"gorm.io/gorm"
)

// Maintenance covers workshop jobs as well as recurring vehicle costs
// (EMI, insurance, tax), discriminated by MaintenanceType. StartDate is a
// timestamp, unlike the date-string columns on the other expense tables.
type Maintenance struct {
	gorm.Model
	VehicleID       uint       `json:"vehicle_id" gorm:"index"`
	MaintenanceType string     `json:"maintenance_type" gorm:"default:maintenance"` // maintenance | emi | insurance | tax
	Description     string     `json:"description"`
	Amount          float64    `json:"amount"`
	StartDate       time.Time  `json:"start_date"`
	EndDate         *time.Time `json:"end_date"`
	Notes           string     `json:"notes"`
}

func (Maintenance) TableName() string {
	return "maintenance_events"
}

type SparePart struct {
	gorm.Model
	VehicleID    uint    `json:"vehicle_id" gorm:"index"`
	PartName     string  `json:"part_name"`
	Quantity     float64 `json:"quantity" gorm:"default:1"`
	Cost         float64 `json:"cost"`
	ReplacedDate string  `json:"replaced_date"` // YYYY-MM-DD
	Notes        string  `json:"notes"`
}

func (SparePart) TableName() string {
	return "spare_parts"
}

// TotalCost is the spare part's contribution to vehicle maintenance cost.
func (s *SparePart) TotalCost() float64 {
	return s.Cost * s.Quantity
}
