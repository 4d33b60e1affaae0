package Controllers

import (
	"Nathkrupa/Models"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SparePartHandler handles spare part replacement routes
type SparePartHandler struct {
	DB *gorm.DB
}

func NewSparePartHandler(db *gorm.DB) *SparePartHandler {
	return &SparePartHandler{DB: db}
}

func (h *SparePartHandler) GetSpareParts(c *fiber.Ctx) error {
	query := h.DB.Model(&Models.SparePart{})
	if vehicleID := c.Query("vehicle_id"); vehicleID != "" {
		query = query.Where("vehicle_id = ?", vehicleID)
	}
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")
	if startDate != "" && endDate != "" {
		query = query.Where("replaced_date >= ? AND replaced_date <= ?", startDate, endDate)
	}

	var parts []Models.SparePart
	if err := query.Order("replaced_date DESC, id DESC").Find(&parts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve spare parts",
		})
	}
	return c.JSON(parts)
}

func (h *SparePartHandler) GetSparePart(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid spare part ID"})
	}

	var part Models.SparePart
	if err := h.DB.First(&part, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Spare part not found"})
	}
	return c.JSON(part)
}

func (h *SparePartHandler) CreateSparePart(c *fiber.Ctx) error {
	var part Models.SparePart
	if err := c.BodyParser(&part); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if part.VehicleID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Vehicle is required"})
	}
	if strings.TrimSpace(part.PartName) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Part name is required"})
	}
	if part.Quantity == 0 {
		part.Quantity = 1
	}

	var vehicle Models.Vehicle
	if err := h.DB.First(&vehicle, part.VehicleID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vehicle not found"})
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&part).Error; err != nil {
			return err
		}
		return adjustVehicleMaintenanceCost(tx, part.VehicleID, part.TotalCost())
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create spare part",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(part)
}

func (h *SparePartHandler) UpdateSparePart(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid spare part ID"})
	}

	var part Models.SparePart
	if err := h.DB.First(&part, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Spare part not found"})
	}

	var input Models.SparePart
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if input.Quantity == 0 {
		input.Quantity = 1
	}

	oldVehicleID := part.VehicleID
	oldCost := part.TotalCost()

	part.VehicleID = input.VehicleID
	part.PartName = input.PartName
	part.Quantity = input.Quantity
	part.Cost = input.Cost
	part.ReplacedDate = input.ReplacedDate
	part.Notes = input.Notes

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&part).Error; err != nil {
			return err
		}
		if err := adjustVehicleMaintenanceCost(tx, oldVehicleID, -oldCost); err != nil {
			return err
		}
		return adjustVehicleMaintenanceCost(tx, part.VehicleID, part.TotalCost())
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update spare part",
		})
	}
	return c.JSON(part)
}

func (h *SparePartHandler) DeleteSparePart(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid spare part ID"})
	}

	var part Models.SparePart
	if err := h.DB.First(&part, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Spare part not found"})
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := adjustVehicleMaintenanceCost(tx, part.VehicleID, -part.TotalCost()); err != nil {
			return err
		}
		return tx.Delete(&part).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete spare part",
		})
	}
	return c.JSON(fiber.Map{"message": "Spare part deleted successfully"})
}
