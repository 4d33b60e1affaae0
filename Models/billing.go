package Models

import (
	"errors"
	"strings"
)

const (
	PricingTypePerKm   = "per_km"
	PricingTypePackage = "package"

	ItemTypePricing = "pricing"
	ItemTypeCharge  = "charge"

	// Fixed-band discount policy: a nonzero discount must fall inside
	// this range.
	DiscountMin = 500
	DiscountMax = 1000
)

var (
	ErrInvoiceRequired   = errors.New("Invoice number is required")
	ErrDiscountOutOfBand = errors.New("Discount must be between 500 and 1000")
	ErrInvalidPricing    = errors.New("Invalid pricing type")
	ErrDistanceRequired  = errors.New("Distance must be greater than zero for per-km pricing")
	ErrPackageRequired   = errors.New("Package amount must be greater than zero")
)

// LineAmount returns the effective amount of a line item: the explicit
// amount if set, otherwise quantity (defaulting to 1) times rate.
func (item *TripPricingItem) LineAmount() float64 {
	if item.Amount != 0 {
		return item.Amount
	}
	quantity := item.Quantity
	if quantity == 0 {
		quantity = 1
	}
	return quantity * item.Rate
}

// Normalize fills the defaults the same way LineAmount computes them, so
// the stored row carries the final figures.
func (item *TripPricingItem) Normalize() {
	if item.Quantity == 0 {
		item.Quantity = 1
	}
	item.Amount = item.LineAmount()
}

// ValidateBilling checks the business rules on the trip's billing inputs.
// It returns the first violation found.
func (t *Trip) ValidateBilling() error {
	if strings.TrimSpace(t.InvoiceNumber) == "" {
		return ErrInvoiceRequired
	}
	if t.DiscountAmount != 0 && (t.DiscountAmount < DiscountMin || t.DiscountAmount > DiscountMax) {
		return ErrDiscountOutOfBand
	}
	if t.PricingType != PricingTypePerKm && t.PricingType != PricingTypePackage {
		return ErrInvalidPricing
	}
	if t.PricingType == PricingTypePerKm {
		if t.DistanceKm <= 0 {
			return ErrDistanceRequired
		}
	} else if t.PackageAmount <= 0 {
		return ErrPackageRequired
	}
	return nil
}

// Recalculate derives TotalCost, TotalCharged and PendingAmount from the
// trip's inputs and line items. Explicit pricing items override the
// per-km / package base price; charge items are always added on top.
func (t *Trip) Recalculate() {
	t.TotalCost = t.DieselUsed + t.PetrolUsed + t.TollAmount +
		t.ParkingAmount + t.OtherExpenses + t.DriverBhatta

	var pricingTotal, chargesTotal float64
	havePricingItems := false
	for i := range t.PricingItems {
		item := &t.PricingItems[i]
		if item.ItemType == ItemTypeCharge {
			chargesTotal += item.LineAmount()
			continue
		}
		havePricingItems = true
		pricingTotal += item.LineAmount()
	}

	if !havePricingItems {
		if t.PricingType == PricingTypePackage {
			pricingTotal = t.PackageAmount
		} else {
			pricingTotal = t.DistanceKm * t.CostPerKm
		}
	}

	t.TotalCharged = pricingTotal + t.ChargedTollAmount + t.ChargedParkingAmount +
		chargesTotal + t.OtherExpenses - t.DiscountAmount
	t.RecalculatePendingAmount()
}

// RecalculatePendingAmount refreshes the unpaid balance, floored at zero.
func (t *Trip) RecalculatePendingAmount() {
	pending := t.TotalCharged - t.AmountReceived
	if pending < 0 {
		pending = 0
	}
	t.PendingAmount = pending
}
