package Models

import (
	"time"

	"gorm.io/gorm"
)

// Trip represents a single transport job billed to a customer. Derived
// fields (TotalCost, TotalCharged, PendingAmount) are filled by
// Recalculate and stored alongside the inputs.
type Trip struct {
	gorm.Model
	InvoiceNumber string `json:"invoice_number" gorm:"index"`

	TripDate          string     `json:"trip_date"` // YYYY-MM-DD
	DepartureDatetime *time.Time `json:"departure_datetime"`
	ReturnDatetime    *time.Time `json:"return_datetime"`
	FromLocation      string     `json:"from_location"`
	ToLocation        string     `json:"to_location"`
	RouteDetails      string     `json:"route_details"`

	// References
	VehicleNumber string `json:"vehicle_number" gorm:"index"`
	DriverID      uint   `json:"driver_id" gorm:"index"`
	CustomerID    uint   `json:"customer_id" gorm:"index"`

	StartKm    float64 `json:"start_km"`
	EndKm      float64 `json:"end_km"`
	DistanceKm float64 `json:"distance_km"`

	// Customer-facing pricing
	PricingType          string  `json:"pricing_type"` // per_km | package
	PackageAmount        float64 `json:"package_amount"`
	CostPerKm            float64 `json:"cost_per_km"`
	ChargedTollAmount    float64 `json:"charged_toll_amount"`
	ChargedParkingAmount float64 `json:"charged_parking_amount"`
	DiscountAmount       float64 `json:"discount_amount"`
	AmountReceived       float64 `json:"amount_received"`
	AdvancePayment       float64 `json:"advance_payment"`

	// Operating costs
	DieselUsed    float64 `json:"diesel_used"`
	PetrolUsed    float64 `json:"petrol_used"`
	FuelLitres    float64 `json:"fuel_litres"`
	TollAmount    float64 `json:"toll_amount"`
	ParkingAmount float64 `json:"parking_amount"`
	OtherExpenses float64 `json:"other_expenses"`
	DriverBhatta  float64 `json:"driver_bhatta"`
	Vendor        string  `json:"vendor"`

	// Derived
	TotalCost     float64 `json:"total_cost"`
	TotalCharged  float64 `json:"total_charged"`
	PendingAmount float64 `json:"pending_amount"`

	// Relationships
	PricingItems  []TripPricingItem  `json:"pricing_items" gorm:"foreignKey:TripID;constraint:OnDelete:CASCADE"`
	DriverChanges []TripDriverChange `json:"driver_changes" gorm:"foreignKey:TripID;constraint:OnDelete:CASCADE"`
}

func (Trip) TableName() string {
	return "trips"
}

// TripPricingItem is a billing line item. ItemType distinguishes base
// pricing lines from extra charges; both share the same shape.
type TripPricingItem struct {
	gorm.Model
	TripID      uint    `json:"trip_id" gorm:"index;not null"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity" gorm:"default:1"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
	ItemType    string  `json:"item_type" gorm:"default:pricing"` // pricing | charge
}

func (TripPricingItem) TableName() string {
	return "trip_pricing_items"
}

// TripDriverChange records a mid-trip driver handover.
type TripDriverChange struct {
	gorm.Model
	TripID    uint       `json:"trip_id" gorm:"index;not null"`
	DriverID  uint       `json:"driver_id" gorm:"not null"`
	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
	Notes     string     `json:"notes"`
}

func (TripDriverChange) TableName() string {
	return "trip_driver_changes"
}
