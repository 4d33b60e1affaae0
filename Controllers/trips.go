package Controllers

import (
	"Nathkrupa/Models"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// TripHandler contains handler methods for trip routes
type TripHandler struct {
	DB *gorm.DB
}

// NewTripHandler creates a new trip handler
func NewTripHandler(db *gorm.DB) *TripHandler {
	return &TripHandler{
		DB: db,
	}
}

// applyTripCounters shifts the vehicle and customer running totals by the
// trip's figures. sign is +1 on create and -1 on delete.
func applyTripCounters(tx *gorm.DB, trip *Models.Trip, sign float64) error {
	err := tx.Model(&Models.Vehicle{}).
		Where("vehicle_number = ?", trip.VehicleNumber).
		Updates(map[string]interface{}{
			"total_trips": gorm.Expr("total_trips + ?", int64(sign)),
			"total_km":    gorm.Expr("total_km + ?", sign*trip.DistanceKm),
		}).Error
	if err != nil {
		return err
	}

	return tx.Model(&Models.Customer{}).
		Where("id = ?", trip.CustomerID).
		Updates(map[string]interface{}{
			"total_trips":     gorm.Expr("total_trips + ?", int64(sign)),
			"total_billed":    gorm.Expr("total_billed + ?", sign*trip.TotalCharged),
			"pending_balance": gorm.Expr("pending_balance + ?", sign*trip.PendingAmount),
		}).Error
}

// CreateTrip validates billing inputs, derives the totals and writes the
// trip with its line items and the counter updates in one transaction.
func (h *TripHandler) CreateTrip(c *fiber.Ctx) error {
	var trip Models.Trip
	if err := c.BodyParser(&trip); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := trip.ValidateBilling(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var vehicle Models.Vehicle
	if err := h.DB.Where("vehicle_number = ?", trip.VehicleNumber).First(&vehicle).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vehicle not found"})
	}
	var driver Models.Driver
	if err := h.DB.First(&driver, trip.DriverID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Driver not found"})
	}
	var customer Models.Customer
	if err := h.DB.First(&customer, trip.CustomerID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Customer not found"})
	}

	for i := range trip.PricingItems {
		trip.PricingItems[i].Normalize()
	}
	trip.Recalculate()

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&trip).Error; err != nil {
			return err
		}
		return applyTripCounters(tx, &trip, 1)
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to create trip",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Trip created successfully",
		"data":    trip,
	})
}

// GetTrips lists trips with pagination and the usual back-office filters.
func (h *TripHandler) GetTrips(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}

	query := h.DB.Model(&Models.Trip{})

	if customerID := c.Query("customer_id"); customerID != "" {
		query = query.Where("customer_id = ?", customerID)
	}
	if vehicleNumber := c.Query("vehicle_number"); vehicleNumber != "" {
		query = query.Where("vehicle_number = ?", vehicleNumber)
	}
	if driverID := c.Query("driver_id"); driverID != "" {
		query = query.Where("driver_id = ?", driverID)
	}
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")
	if startDate != "" && endDate != "" {
		query = query.Where("trip_date >= ? AND trip_date <= ?", startDate, endDate)
	}
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("invoice_number LIKE ? OR from_location LIKE ? OR to_location LIKE ?", like, like, like)
	}

	var total int64
	query.Count(&total)

	var trips []Models.Trip
	err := query.Preload("PricingItems").
		Order("trip_date DESC, id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&trips).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch trips",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"data":  trips,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

func (h *TripHandler) GetTrip(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid trip ID"})
	}

	var trip Models.Trip
	result := h.DB.Preload("PricingItems").Preload("DriverChanges").First(&trip, id)
	if result.Error != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Trip not found"})
	}

	return c.JSON(trip)
}

// UpdateTrip rewrites a trip's fields and line items, then shifts the
// counters by the difference against the stored values. The vehicle
// adjustment targets the trip's previously stored vehicle number and the
// customer adjustment the incoming customer.
func (h *TripHandler) UpdateTrip(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid trip ID"})
	}

	var trip Models.Trip
	if err := h.DB.Preload("PricingItems").First(&trip, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Trip not found"})
	}

	var input Models.Trip
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// Invoice numbers are copied onto payments, so they are frozen at
	// creation time.
	if input.InvoiceNumber != "" && input.InvoiceNumber != trip.InvoiceNumber {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invoice number cannot be changed after creation",
		})
	}
	input.InvoiceNumber = trip.InvoiceNumber

	if err := input.ValidateBilling(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	oldVehicleNumber := trip.VehicleNumber
	oldDistance := trip.DistanceKm
	oldCharged := trip.TotalCharged
	oldPending := trip.PendingAmount

	for i := range input.PricingItems {
		input.PricingItems[i].Normalize()
		input.PricingItems[i].TripID = trip.ID
	}
	for i := range input.DriverChanges {
		input.DriverChanges[i].TripID = trip.ID
	}
	input.Recalculate()
	input.ID = trip.ID
	input.CreatedAt = trip.CreatedAt

	// Line items and driver changes are replaced wholesale, no partial edits.
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("trip_id = ?", trip.ID).Delete(&Models.TripPricingItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("trip_id = ?", trip.ID).Delete(&Models.TripDriverChange{}).Error; err != nil {
			return err
		}
		if err := tx.Save(&input).Error; err != nil {
			return err
		}

		err := tx.Model(&Models.Vehicle{}).
			Where("vehicle_number = ?", oldVehicleNumber).
			Update("total_km", gorm.Expr("total_km + ?", input.DistanceKm-oldDistance)).Error
		if err != nil {
			return err
		}

		return tx.Model(&Models.Customer{}).
			Where("id = ?", input.CustomerID).
			Updates(map[string]interface{}{
				"total_billed":    gorm.Expr("total_billed + ?", input.TotalCharged-oldCharged),
				"pending_balance": gorm.Expr("pending_balance + ?", input.PendingAmount-oldPending),
			}).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to update trip",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Trip updated successfully",
		"data":    input,
	})
}

// DeleteTrip removes the trip, its line items and its payments, and
// reverses the counter updates made at creation.
func (h *TripHandler) DeleteTrip(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid trip ID"})
	}

	var trip Models.Trip
	if err := h.DB.First(&trip, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Trip not found"})
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := applyTripCounters(tx, &trip, -1); err != nil {
			return err
		}
		if err := tx.Where("trip_id = ?", trip.ID).Delete(&Models.TripPricingItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("trip_id = ?", trip.ID).Delete(&Models.TripDriverChange{}).Error; err != nil {
			return err
		}
		if err := tx.Where("trip_id = ?", trip.ID).Delete(&Models.Payment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&trip).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to delete trip",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{"message": "Trip deleted successfully"})
}

// AddDriverChange records a mid-trip driver handover.
func (h *TripHandler) AddDriverChange(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid trip ID"})
	}

	var trip Models.Trip
	if err := h.DB.First(&trip, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Trip not found"})
	}

	var change Models.TripDriverChange
	if err := c.BodyParser(&change); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if change.DriverID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Driver is required"})
	}

	var driver Models.Driver
	if err := h.DB.First(&driver, change.DriverID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Driver not found"})
	}

	change.TripID = trip.ID
	if err := h.DB.Create(&change).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to record driver change",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(change)
}
