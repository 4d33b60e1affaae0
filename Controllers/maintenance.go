package Controllers

import (
	"Nathkrupa/Models"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var maintenanceTypes = map[string]bool{
	"maintenance": true,
	"emi":         true,
	"insurance":   true,
	"tax":         true,
}

// MaintenanceHandler handles workshop and recurring vehicle cost routes
type MaintenanceHandler struct {
	DB *gorm.DB
}

func NewMaintenanceHandler(db *gorm.DB) *MaintenanceHandler {
	return &MaintenanceHandler{DB: db}
}

func adjustVehicleMaintenanceCost(tx *gorm.DB, vehicleID uint, delta float64) error {
	return tx.Model(&Models.Vehicle{}).
		Where("id = ?", vehicleID).
		Update("total_maintenance_cost", gorm.Expr("total_maintenance_cost + ?", delta)).Error
}

func (h *MaintenanceHandler) GetMaintenanceEvents(c *fiber.Ctx) error {
	query := h.DB.Model(&Models.Maintenance{})
	if vehicleID := c.Query("vehicle_id"); vehicleID != "" {
		query = query.Where("vehicle_id = ?", vehicleID)
	}
	if maintenanceType := c.Query("type"); maintenanceType != "" {
		query = query.Where("maintenance_type = ?", maintenanceType)
	}

	var events []Models.Maintenance
	if err := query.Order("start_date DESC, id DESC").Find(&events).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve maintenance records",
		})
	}
	return c.JSON(events)
}

func (h *MaintenanceHandler) GetMaintenanceEvent(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid maintenance ID"})
	}

	var event Models.Maintenance
	if err := h.DB.First(&event, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Maintenance record not found"})
	}
	return c.JSON(event)
}

// CreateMaintenanceEvent stores a maintenance entry and rolls its amount
// into the vehicle's lifetime maintenance cost.
func (h *MaintenanceHandler) CreateMaintenanceEvent(c *fiber.Ctx) error {
	var event Models.Maintenance
	if err := c.BodyParser(&event); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if event.VehicleID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Vehicle is required"})
	}
	if event.MaintenanceType == "" {
		event.MaintenanceType = "maintenance"
	}
	if !maintenanceTypes[event.MaintenanceType] {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Maintenance type must be one of maintenance, emi, insurance, tax",
		})
	}

	var vehicle Models.Vehicle
	if err := h.DB.First(&vehicle, event.VehicleID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vehicle not found"})
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&event).Error; err != nil {
			return err
		}
		return adjustVehicleMaintenanceCost(tx, event.VehicleID, event.Amount)
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create maintenance record",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(event)
}

func (h *MaintenanceHandler) UpdateMaintenanceEvent(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid maintenance ID"})
	}

	var event Models.Maintenance
	if err := h.DB.First(&event, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Maintenance record not found"})
	}

	var input Models.Maintenance
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if input.MaintenanceType != "" && !maintenanceTypes[input.MaintenanceType] {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Maintenance type must be one of maintenance, emi, insurance, tax",
		})
	}

	oldVehicleID := event.VehicleID
	oldAmount := event.Amount

	event.VehicleID = input.VehicleID
	if input.MaintenanceType != "" {
		event.MaintenanceType = input.MaintenanceType
	}
	event.Description = input.Description
	event.Amount = input.Amount
	event.StartDate = input.StartDate
	event.EndDate = input.EndDate
	event.Notes = input.Notes

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&event).Error; err != nil {
			return err
		}
		if err := adjustVehicleMaintenanceCost(tx, oldVehicleID, -oldAmount); err != nil {
			return err
		}
		return adjustVehicleMaintenanceCost(tx, event.VehicleID, event.Amount)
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update maintenance record",
		})
	}
	return c.JSON(event)
}

func (h *MaintenanceHandler) DeleteMaintenanceEvent(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid maintenance ID"})
	}

	var event Models.Maintenance
	if err := h.DB.First(&event, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Maintenance record not found"})
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := adjustVehicleMaintenanceCost(tx, event.VehicleID, -event.Amount); err != nil {
			return err
		}
		return tx.Delete(&event).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete maintenance record",
		})
	}
	return c.JSON(fiber.Map{"message": "Maintenance record deleted successfully"})
}
