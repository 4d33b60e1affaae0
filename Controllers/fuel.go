package Controllers

import (
	"Nathkrupa/Models"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// FuelHandler handles fuel fill-up routes
type FuelHandler struct {
	DB *gorm.DB
}

func NewFuelHandler(db *gorm.DB) *FuelHandler {
	return &FuelHandler{DB: db}
}

func (h *FuelHandler) GetFuelEvents(c *fiber.Ctx) error {
	query := h.DB.Model(&Models.Fuel{})
	if vehicleID := c.Query("vehicle_id"); vehicleID != "" {
		query = query.Where("vehicle_id = ?", vehicleID)
	}
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")
	if startDate != "" && endDate != "" {
		query = query.Where("filled_date >= ? AND filled_date <= ?", startDate, endDate)
	}

	var events []Models.Fuel
	if err := query.Order("filled_date DESC, id DESC").Find(&events).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve fuel records",
		})
	}
	return c.JSON(events)
}

func (h *FuelHandler) GetFuelEvent(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid fuel record ID"})
	}

	var event Models.Fuel
	if err := h.DB.First(&event, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Fuel record not found"})
	}
	return c.JSON(event)
}

// CreateFuelEvent stores a fill-up. The total cost is derived from litres
// and rate when the client does not send it precomputed.
func (h *FuelHandler) CreateFuelEvent(c *fiber.Ctx) error {
	var event Models.Fuel
	if err := c.BodyParser(&event); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if event.VehicleID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Vehicle is required"})
	}

	var vehicle Models.Vehicle
	if err := h.DB.First(&vehicle, event.VehicleID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vehicle not found"})
	}

	if event.TotalCost == 0 {
		event.TotalCost = event.Litres * event.CostPerLitre
	}

	if err := h.DB.Create(&event).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create fuel record",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(event)
}

func (h *FuelHandler) UpdateFuelEvent(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid fuel record ID"})
	}

	var event Models.Fuel
	if err := h.DB.First(&event, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Fuel record not found"})
	}

	var input Models.Fuel
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if input.TotalCost == 0 {
		input.TotalCost = input.Litres * input.CostPerLitre
	}

	event.VehicleID = input.VehicleID
	event.FilledDate = input.FilledDate
	event.FuelType = input.FuelType
	event.Litres = input.Litres
	event.CostPerLitre = input.CostPerLitre
	event.TotalCost = input.TotalCost
	event.OdometerReading = input.OdometerReading
	event.Notes = input.Notes

	h.DB.Save(&event)
	return c.JSON(event)
}

func (h *FuelHandler) DeleteFuelEvent(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid fuel record ID"})
	}

	var event Models.Fuel
	if err := h.DB.First(&event, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Fuel record not found"})
	}

	h.DB.Delete(&event)
	return c.JSON(fiber.Map{"message": "Fuel record deleted successfully"})
}
