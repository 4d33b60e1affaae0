package Controllers_test

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Nathkrupa/Models"
)

func TestMonthlySummaryLeapMonth(t *testing.T) {
	app, db, token := setupApp(t)
	vehicle := seedVehicle(t, db, "MH15AB1234")
	customer := seedCustomer(t, db, "Sharma Traders")

	inMonth := Models.Trip{
		InvoiceNumber: "INV-2001",
		TripDate:      "2024-02-29",
		VehicleNumber: vehicle.VehicleNumber,
		CustomerID:    customer.ID,
		PricingType:   Models.PricingTypePackage,
		PackageAmount: 5000,
		DieselUsed:    1200,
	}
	inMonth.Recalculate()
	require.NoError(t, db.Create(&inMonth).Error)

	outOfMonth := Models.Trip{
		InvoiceNumber: "INV-2002",
		TripDate:      "2024-03-01",
		VehicleNumber: vehicle.VehicleNumber,
		CustomerID:    customer.ID,
		PricingType:   Models.PricingTypePackage,
		PackageAmount: 9000,
	}
	outOfMonth.Recalculate()
	require.NoError(t, db.Create(&outOfMonth).Error)

	require.NoError(t, db.Create(&Models.Fuel{
		VehicleID:  vehicle.ID,
		FilledDate: "2024-02-15",
		Litres:     100,
		TotalCost:  9000,
	}).Error)
	require.NoError(t, db.Create(&Models.Fuel{
		VehicleID:  vehicle.ID,
		FilledDate: "2024-01-31",
		TotalCost:  4000,
	}).Error)

	// Last hour of the leap day still counts for February.
	require.NoError(t, db.Create(&Models.Maintenance{
		VehicleID:       vehicle.ID,
		MaintenanceType: "maintenance",
		Amount:          1500,
		StartDate:       time.Date(2024, 2, 29, 23, 0, 0, 0, time.UTC),
	}).Error)
	require.NoError(t, db.Create(&Models.Maintenance{
		VehicleID:       vehicle.ID,
		MaintenanceType: "emi",
		Amount:          7000,
		StartDate:       time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}).Error)

	require.NoError(t, db.Create(&Models.SparePart{
		VehicleID:    vehicle.ID,
		PartName:     "Brake pad",
		Quantity:     2,
		Cost:         250,
		ReplacedDate: "2024-02-10",
	}).Error)

	resp := doRequest(t, app, "GET", "/api/dashboard/summary?month=2024-02", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var summary struct {
		TripCount       int64   `json:"trip_count"`
		TotalIncome     float64 `json:"total_income"`
		TotalExpenses   float64 `json:"total_expenses"`
		Profit          float64 `json:"profit"`
		TripCost        float64 `json:"trip_cost"`
		FuelCost        float64 `json:"fuel_cost"`
		MaintenanceCost float64 `json:"maintenance_cost"`
		SparePartsCost  float64 `json:"spare_parts_cost"`
		PendingAmount   float64 `json:"pending_amount"`
	}
	decodeBody(t, resp, &summary)

	assert.Equal(t, int64(1), summary.TripCount)
	assert.Equal(t, 5000.0, summary.TotalIncome)
	assert.Equal(t, 1200.0, summary.TripCost)
	assert.Equal(t, 9000.0, summary.FuelCost)
	assert.Equal(t, 1500.0, summary.MaintenanceCost)
	assert.Equal(t, 500.0, summary.SparePartsCost)
	assert.Equal(t, 12200.0, summary.TotalExpenses)
	assert.Equal(t, -7200.0, summary.Profit)
	assert.Equal(t, 5000.0, summary.PendingAmount)
}

func TestMonthlySummaryRejectsBadMonth(t *testing.T) {
	app, _, token := setupApp(t)

	resp := doRequest(t, app, "GET", "/api/dashboard/summary?month=2024-2", token, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestMonthlySummaryWithoutMonthIsAllTime(t *testing.T) {
	app, db, token := setupApp(t)
	vehicle := seedVehicle(t, db, "MH15AB1234")
	customer := seedCustomer(t, db, "Sharma Traders")

	for _, tripDate := range []string{"2024-02-10", "2024-07-22"} {
		trip := Models.Trip{
			InvoiceNumber: "INV-" + tripDate,
			TripDate:      tripDate,
			VehicleNumber: vehicle.VehicleNumber,
			CustomerID:    customer.ID,
			PricingType:   Models.PricingTypePackage,
			PackageAmount: 5000,
			DieselUsed:    1000,
		}
		trip.Recalculate()
		require.NoError(t, db.Create(&trip).Error)
	}
	require.NoError(t, db.Create(&Models.Fuel{
		VehicleID:  vehicle.ID,
		FilledDate: "2023-12-01",
		TotalCost:  3000,
	}).Error)

	resp := doRequest(t, app, "GET", "/api/dashboard/summary", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var summary struct {
		TripCount     int64   `json:"trip_count"`
		TotalIncome   float64 `json:"total_income"`
		FuelCost      float64 `json:"fuel_cost"`
		TotalExpenses float64 `json:"total_expenses"`
		Vehicles      []struct {
			VehicleNumber string `json:"vehicle_number"`
		} `json:"vehicles"`
	}
	decodeBody(t, resp, &summary)

	assert.Equal(t, int64(2), summary.TripCount)
	assert.Equal(t, 10000.0, summary.TotalIncome)
	assert.Equal(t, 3000.0, summary.FuelCost)
	assert.Equal(t, 5000.0, summary.TotalExpenses)
	require.Len(t, summary.Vehicles, 1)
	assert.Equal(t, vehicle.VehicleNumber, summary.Vehicles[0].VehicleNumber)
}

func TestVehicleMaintenanceCosts(t *testing.T) {
	app, db, token := setupApp(t)
	vehicle := seedVehicle(t, db, "MH15AB1234")
	other := seedVehicle(t, db, "MH15CD5678")

	require.NoError(t, db.Create(&Models.Maintenance{
		VehicleID: vehicle.ID,
		Amount:    3000,
		StartDate: time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
	}).Error)
	require.NoError(t, db.Create(&Models.SparePart{
		VehicleID:    vehicle.ID,
		PartName:     "Clutch plate",
		Quantity:     1,
		Cost:         1200,
		ReplacedDate: "2023-06-10",
	}).Error)

	resp := doRequest(t, app, "GET", "/api/dashboard/vehicle-maintenance", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var costs []struct {
		VehicleNumber string  `json:"vehicle_number"`
		TotalCost     float64 `json:"total_cost"`
	}
	decodeBody(t, resp, &costs)

	require.Len(t, costs, 2)
	assert.Equal(t, vehicle.VehicleNumber, costs[0].VehicleNumber)
	assert.Equal(t, 4200.0, costs[0].TotalCost)
	assert.Equal(t, other.VehicleNumber, costs[1].VehicleNumber)
	assert.Equal(t, 0.0, costs[1].TotalCost)
}

func TestDashboardNotes(t *testing.T) {
	app, _, token := setupApp(t)

	resp := doRequest(t, app, "POST", "/api/dashboard/notes", token, map[string]interface{}{
		"note_date": "2024-02-14",
		"note":      "Collect pending from Sharma Traders",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doRequest(t, app, "POST", "/api/dashboard/notes", token, map[string]interface{}{
		"note_date": "2024-03-01",
		"note":      "Renew insurance",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doRequest(t, app, "GET", "/api/dashboard/notes?month=2024-02", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var notes []Models.DashboardNote
	decodeBody(t, resp, &notes)
	require.Len(t, notes, 1)
	assert.Equal(t, "2024-02-14", notes[0].NoteDate)

	resp = doRequest(t, app, "POST", "/api/dashboard/notes", token, map[string]interface{}{
		"note_date": "14-02-2024",
		"note":      "bad date",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
