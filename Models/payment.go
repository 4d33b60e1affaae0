package Models

import "gorm.io/gorm"

// Payment is a receipt against a trip's balance. The invoice number is
// copied from the trip at creation time; trips reject invoice edits so
// the copy never goes stale.
type Payment struct {
	gorm.Model
	InvoiceNumber string  `json:"invoice_number" gorm:"index"`
	TripID        uint    `json:"trip_id" gorm:"index;not null"`
	PaymentDate   string  `json:"payment_date"` // YYYY-MM-DD
	PaymentMode   string  `json:"payment_mode"` // cash / online / ...
	Amount        float64 `json:"amount"`
	Notes         string  `json:"notes"`
}
