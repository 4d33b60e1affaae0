package Controllers_test

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Nathkrupa/Models"
)

func perKmTrip(vehicle Models.Vehicle, driver Models.Driver, customer Models.Customer) Models.Trip {
	return Models.Trip{
		InvoiceNumber:        "INV-1001",
		TripDate:             "2024-02-10",
		FromLocation:         "Nashik",
		ToLocation:           "Pune",
		VehicleNumber:        vehicle.VehicleNumber,
		DriverID:             driver.ID,
		CustomerID:           customer.ID,
		DistanceKm:           100,
		PricingType:          Models.PricingTypePerKm,
		CostPerKm:            50,
		ChargedTollAmount:    100,
		ChargedParkingAmount: 50,
		OtherExpenses:        200,
		DiscountAmount:       750,
	}
}

func TestCreateTripPerKm(t *testing.T) {
	app, db, token := setupApp(t)
	vehicle := seedVehicle(t, db, "MH15AB1234")
	driver := seedDriver(t, db, "Ramesh")
	customer := seedCustomer(t, db, "Sharma Traders")

	resp := doRequest(t, app, "POST", "/api/trips/", token, perKmTrip(vehicle, driver, customer))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var trip Models.Trip
	require.NoError(t, db.Where("invoice_number = ?", "INV-1001").First(&trip).Error)
	assert.Equal(t, 4600.0, trip.TotalCharged)
	assert.Equal(t, 4600.0, trip.PendingAmount)

	var v Models.Vehicle
	require.NoError(t, db.First(&v, vehicle.ID).Error)
	assert.Equal(t, int64(1), v.TotalTrips)
	assert.Equal(t, 100.0, v.TotalKm)

	var c Models.Customer
	require.NoError(t, db.First(&c, customer.ID).Error)
	assert.Equal(t, int64(1), c.TotalTrips)
	assert.Equal(t, 4600.0, c.TotalBilled)
	assert.Equal(t, 4600.0, c.PendingBalance)
}

func TestCreateTripPackage(t *testing.T) {
	app, db, token := setupApp(t)
	vehicle := seedVehicle(t, db, "MH15AB1234")
	driver := seedDriver(t, db, "Ramesh")
	customer := seedCustomer(t, db, "Sharma Traders")

	trip := perKmTrip(vehicle, driver, customer)
	trip.PricingType = Models.PricingTypePackage
	trip.PackageAmount = 0
	resp := doRequest(t, app, "POST", "/api/trips/", token, trip)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	trip.PackageAmount = 5000
	trip.ChargedTollAmount = 0
	trip.ChargedParkingAmount = 0
	trip.OtherExpenses = 0
	trip.DiscountAmount = 0
	resp = doRequest(t, app, "POST", "/api/trips/", token, trip)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var stored Models.Trip
	require.NoError(t, db.Where("invoice_number = ?", "INV-1001").First(&stored).Error)
	assert.Equal(t, 5000.0, stored.TotalCharged)
}

func TestCreateTripDiscountOutOfBand(t *testing.T) {
	app, db, token := setupApp(t)
	vehicle := seedVehicle(t, db, "MH15AB1234")
	driver := seedDriver(t, db, "Ramesh")
	customer := seedCustomer(t, db, "Sharma Traders")

	trip := perKmTrip(vehicle, driver, customer)
	trip.DiscountAmount = 1500
	resp := doRequest(t, app, "POST", "/api/trips/", token, trip)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	trip.DiscountAmount = 750
	resp = doRequest(t, app, "POST", "/api/trips/", token, trip)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestCreateTripRequiresInvoice(t *testing.T) {
	app, db, token := setupApp(t)
	vehicle := seedVehicle(t, db, "MH15AB1234")
	driver := seedDriver(t, db, "Ramesh")
	customer := seedCustomer(t, db, "Sharma Traders")

	trip := perKmTrip(vehicle, driver, customer)
	trip.InvoiceNumber = ""
	resp := doRequest(t, app, "POST", "/api/trips/", token, trip)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateTripUnknownVehicle(t *testing.T) {
	app, db, token := setupApp(t)
	driver := seedDriver(t, db, "Ramesh")
	customer := seedCustomer(t, db, "Sharma Traders")

	trip := perKmTrip(Models.Vehicle{VehicleNumber: "MH00XX0000"}, driver, customer)
	resp := doRequest(t, app, "POST", "/api/trips/", token, trip)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCreateTripUnknownDriver(t *testing.T) {
	app, db, token := setupApp(t)
	vehicle := seedVehicle(t, db, "MH15AB1234")
	customer := seedCustomer(t, db, "Sharma Traders")

	trip := perKmTrip(vehicle, Models.Driver{}, customer)
	trip.DriverID = 9999
	resp := doRequest(t, app, "POST", "/api/trips/", token, trip)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// Nothing must be written against the phantom driver.
	var count int64
	db.Model(&Models.Trip{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestUpdateTripRejectsInvoiceChange(t *testing.T) {
	app, db, token := setupApp(t)
	vehicle := seedVehicle(t, db, "MH15AB1234")
	driver := seedDriver(t, db, "Ramesh")
	customer := seedCustomer(t, db, "Sharma Traders")

	resp := doRequest(t, app, "POST", "/api/trips/", token, perKmTrip(vehicle, driver, customer))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var trip Models.Trip
	require.NoError(t, db.Where("invoice_number = ?", "INV-1001").First(&trip).Error)

	update := perKmTrip(vehicle, driver, customer)
	update.InvoiceNumber = "INV-9999"
	resp = doRequest(t, app, "PUT", fmt.Sprintf("/api/trips/%d", trip.ID), token, update)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUpdateTripAdjustsCounters(t *testing.T) {
	app, db, token := setupApp(t)
	vehicle := seedVehicle(t, db, "MH15AB1234")
	driver := seedDriver(t, db, "Ramesh")
	customer := seedCustomer(t, db, "Sharma Traders")

	resp := doRequest(t, app, "POST", "/api/trips/", token, perKmTrip(vehicle, driver, customer))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var trip Models.Trip
	require.NoError(t, db.Where("invoice_number = ?", "INV-1001").First(&trip).Error)

	update := perKmTrip(vehicle, driver, customer)
	update.DistanceKm = 150
	resp = doRequest(t, app, "PUT", fmt.Sprintf("/api/trips/%d", trip.ID), token, update)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// 150 km * 50 + 100 + 50 + 200 - 750 = 7100
	var v Models.Vehicle
	require.NoError(t, db.First(&v, vehicle.ID).Error)
	assert.Equal(t, 150.0, v.TotalKm)
	assert.Equal(t, int64(1), v.TotalTrips)

	var c Models.Customer
	require.NoError(t, db.First(&c, customer.ID).Error)
	assert.Equal(t, 7100.0, c.TotalBilled)
	assert.Equal(t, 7100.0, c.PendingBalance)
}

func TestDeleteTripRestoresCounters(t *testing.T) {
	app, db, token := setupApp(t)
	vehicle := seedVehicle(t, db, "MH15AB1234")
	driver := seedDriver(t, db, "Ramesh")
	customer := seedCustomer(t, db, "Sharma Traders")

	resp := doRequest(t, app, "POST", "/api/trips/", token, perKmTrip(vehicle, driver, customer))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var trip Models.Trip
	require.NoError(t, db.Where("invoice_number = ?", "INV-1001").First(&trip).Error)

	resp = doRequest(t, app, "DELETE", fmt.Sprintf("/api/trips/%d", trip.ID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var v Models.Vehicle
	require.NoError(t, db.First(&v, vehicle.ID).Error)
	assert.Equal(t, int64(0), v.TotalTrips)
	assert.Equal(t, 0.0, v.TotalKm)

	var c Models.Customer
	require.NoError(t, db.First(&c, customer.ID).Error)
	assert.Equal(t, int64(0), c.TotalTrips)
	assert.Equal(t, 0.0, c.TotalBilled)
	assert.Equal(t, 0.0, c.PendingBalance)
}

func TestCreateTripWithPricingItems(t *testing.T) {
	app, db, token := setupApp(t)
	vehicle := seedVehicle(t, db, "MH15AB1234")
	driver := seedDriver(t, db, "Ramesh")
	customer := seedCustomer(t, db, "Sharma Traders")

	trip := perKmTrip(vehicle, driver, customer)
	trip.ChargedTollAmount = 0
	trip.ChargedParkingAmount = 0
	trip.OtherExpenses = 0
	trip.DiscountAmount = 0
	trip.PricingItems = []Models.TripPricingItem{
		{Description: "Base freight", Quantity: 2, Rate: 1500, ItemType: Models.ItemTypePricing},
		{Description: "Loading charge", Amount: 400, ItemType: Models.ItemTypeCharge},
	}
	resp := doRequest(t, app, "POST", "/api/trips/", token, trip)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var stored Models.Trip
	require.NoError(t, db.Preload("PricingItems").Where("invoice_number = ?", "INV-1001").First(&stored).Error)
	assert.Equal(t, 3400.0, stored.TotalCharged)
	require.Len(t, stored.PricingItems, 2)
	assert.Equal(t, 3000.0, stored.PricingItems[0].Amount)
}

func TestTripRoutesRequireAuth(t *testing.T) {
	app, _, _ := setupApp(t)

	resp := doRequest(t, app, "GET", "/api/trips/", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
