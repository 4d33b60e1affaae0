package Models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"Nathkrupa/Models"
)

func TestRecalculatePerKm(t *testing.T) {
	trip := Models.Trip{
		InvoiceNumber:        "INV-001",
		PricingType:          Models.PricingTypePerKm,
		DistanceKm:           100,
		CostPerKm:            50,
		ChargedTollAmount:    100,
		ChargedParkingAmount: 50,
		OtherExpenses:        200,
		DiscountAmount:       750,
	}
	trip.Recalculate()

	assert.Equal(t, 4600.0, trip.TotalCharged)
	assert.Equal(t, 4600.0, trip.PendingAmount)
}

func TestRecalculatePackage(t *testing.T) {
	trip := Models.Trip{
		InvoiceNumber: "INV-002",
		PricingType:   Models.PricingTypePackage,
		PackageAmount: 5000,
	}
	trip.Recalculate()

	assert.Equal(t, 5000.0, trip.TotalCharged)
}

func TestRecalculateTotalCost(t *testing.T) {
	trip := Models.Trip{
		DieselUsed:    1000,
		PetrolUsed:    100,
		TollAmount:    300,
		ParkingAmount: 50,
		OtherExpenses: 150,
		DriverBhatta:  400,
	}
	trip.Recalculate()

	assert.Equal(t, 2000.0, trip.TotalCost)
}

func TestRecalculatePricingItemsOverrideBase(t *testing.T) {
	trip := Models.Trip{
		PricingType:   Models.PricingTypePackage,
		PackageAmount: 5000,
		PricingItems: []Models.TripPricingItem{
			{Description: "Base freight", Quantity: 2, Rate: 1500, ItemType: Models.ItemTypePricing},
			{Description: "Loading charge", Amount: 400, ItemType: Models.ItemTypeCharge},
		},
	}
	trip.Recalculate()

	// Pricing items replace the package figure, charges add on top.
	assert.Equal(t, 3400.0, trip.TotalCharged)
}

func TestRecalculateChargeItemsAddToBase(t *testing.T) {
	trip := Models.Trip{
		PricingType:   Models.PricingTypePackage,
		PackageAmount: 5000,
		PricingItems: []Models.TripPricingItem{
			{Description: "Night halt", Amount: 250, ItemType: Models.ItemTypeCharge},
		},
	}
	trip.Recalculate()

	assert.Equal(t, 5250.0, trip.TotalCharged)
}

func TestPendingAmountNeverNegative(t *testing.T) {
	trip := Models.Trip{
		PricingType:    Models.PricingTypePackage,
		PackageAmount:  1000,
		AmountReceived: 1500,
	}
	trip.Recalculate()

	assert.Equal(t, 0.0, trip.PendingAmount)
}

func TestLineAmountDefaults(t *testing.T) {
	explicit := Models.TripPricingItem{Quantity: 3, Rate: 100, Amount: 450}
	assert.Equal(t, 450.0, explicit.LineAmount())

	derived := Models.TripPricingItem{Quantity: 3, Rate: 100}
	assert.Equal(t, 300.0, derived.LineAmount())

	noQuantity := Models.TripPricingItem{Rate: 100}
	assert.Equal(t, 100.0, noQuantity.LineAmount())
}

func TestValidateBilling(t *testing.T) {
	base := Models.Trip{
		InvoiceNumber: "INV-100",
		PricingType:   Models.PricingTypePerKm,
		DistanceKm:    120,
	}
	assert.NoError(t, base.ValidateBilling())

	missingInvoice := base
	missingInvoice.InvoiceNumber = "   "
	assert.ErrorIs(t, missingInvoice.ValidateBilling(), Models.ErrInvoiceRequired)

	badDiscount := base
	badDiscount.DiscountAmount = 1500
	assert.ErrorIs(t, badDiscount.ValidateBilling(), Models.ErrDiscountOutOfBand)

	lowDiscount := base
	lowDiscount.DiscountAmount = 200
	assert.ErrorIs(t, lowDiscount.ValidateBilling(), Models.ErrDiscountOutOfBand)

	okDiscount := base
	okDiscount.DiscountAmount = 750
	assert.NoError(t, okDiscount.ValidateBilling())

	badType := base
	badType.PricingType = "hourly"
	assert.ErrorIs(t, badType.ValidateBilling(), Models.ErrInvalidPricing)

	noDistance := base
	noDistance.DistanceKm = 0
	assert.ErrorIs(t, noDistance.ValidateBilling(), Models.ErrDistanceRequired)

	noPackage := Models.Trip{InvoiceNumber: "INV-101", PricingType: Models.PricingTypePackage}
	assert.ErrorIs(t, noPackage.ValidateBilling(), Models.ErrPackageRequired)
}
