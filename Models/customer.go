package Models

import "gorm.io/gorm"

// Customer aggregates mirror the customer's live trips and are updated in
// the same transaction as every trip write.
type Customer struct {
	gorm.Model
	Name           string  `json:"name"`
	Phone          string  `json:"phone"`
	Address        string  `json:"address"`
	Notes          string  `json:"notes"`
	TotalTrips     int64   `json:"total_trips"`
	TotalBilled    float64 `json:"total_billed"`
	PendingBalance float64 `json:"pending_balance"`
}
