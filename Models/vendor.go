package Models

import "gorm.io/gorm"

type Vendor struct {
	gorm.Model
	Name     string `json:"name" gorm:"uniqueIndex"`
	Contact  string `json:"contact"`
	Category string `json:"category"`
	Notes    string `json:"notes"`
}

// VendorPayment is one ledger entry against a vendor. Credits (bills from
// the vendor) are positive, debits (payments made to the vendor) are
// negative, so a vendor's balance is the plain sum of amounts.
type VendorPayment struct {
	gorm.Model
	VendorID    uint    `json:"vendor_id" gorm:"index;not null"`
	Date        string  `json:"date"` // YYYY-MM-DD
	Description string  `json:"description"`
	PaymentMode string  `json:"payment_mode"`
	Amount      float64 `json:"amount"`
}

func (VendorPayment) TableName() string {
	return "vendor_payments"
}

// VendorSummary is the analytics rollup across the vendor ledger.
type VendorSummary struct {
	VendorCount  int64   `json:"vendor_count"`
	TotalCredits float64 `json:"total_credits"`
	TotalDebits  float64 `json:"total_debits"`
	NetBalance   float64 `json:"net_balance"`
}
