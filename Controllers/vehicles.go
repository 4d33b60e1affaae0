package Controllers

import (
	"Nathkrupa/Models"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// VehicleHandler handles vehicle master-data routes
type VehicleHandler struct {
	DB *gorm.DB
}

func NewVehicleHandler(db *gorm.DB) *VehicleHandler {
	return &VehicleHandler{DB: db}
}

func (h *VehicleHandler) GetVehicles(c *fiber.Ctx) error {
	query := h.DB.Model(&Models.Vehicle{})
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("vehicle_number LIKE ? OR model_name LIKE ?", like, like)
	}

	var vehicles []Models.Vehicle
	if err := query.Order("vehicle_number").Find(&vehicles).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve vehicles",
		})
	}
	return c.JSON(vehicles)
}

func (h *VehicleHandler) GetVehicle(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid vehicle ID"})
	}

	var vehicle Models.Vehicle
	if err := h.DB.First(&vehicle, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vehicle not found"})
	}
	return c.JSON(vehicle)
}

func (h *VehicleHandler) CreateVehicle(c *fiber.Ctx) error {
	var input Models.Vehicle
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if strings.TrimSpace(input.VehicleNumber) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Vehicle number is required"})
	}

	vehicle := Models.Vehicle{
		VehicleNumber: input.VehicleNumber,
		VehicleType:   input.VehicleType,
		ModelName:     input.ModelName,
		Notes:         input.Notes,
	}
	if err := h.DB.Create(&vehicle).Error; err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") ||
			strings.Contains(err.Error(), "unique constraint") {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "A vehicle with this number already exists",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create vehicle",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(vehicle)
}

// UpdateVehicle edits master data only. Running totals are maintained by
// trip and maintenance writes and by the nightly reconciler.
func (h *VehicleHandler) UpdateVehicle(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid vehicle ID"})
	}

	var vehicle Models.Vehicle
	if err := h.DB.First(&vehicle, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vehicle not found"})
	}

	var input Models.Vehicle
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	h.DB.Model(&vehicle).Updates(Models.Vehicle{
		VehicleNumber: input.VehicleNumber,
		VehicleType:   input.VehicleType,
		ModelName:     input.ModelName,
		Notes:         input.Notes,
	})
	return c.JSON(vehicle)
}

func (h *VehicleHandler) DeleteVehicle(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid vehicle ID"})
	}

	var vehicle Models.Vehicle
	if err := h.DB.First(&vehicle, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vehicle not found"})
	}

	var tripCount int64
	h.DB.Model(&Models.Trip{}).Where("vehicle_number = ?", vehicle.VehicleNumber).Count(&tripCount)
	if tripCount > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Vehicle has trips recorded against it and cannot be deleted",
		})
	}

	h.DB.Delete(&vehicle)
	return c.JSON(fiber.Map{"message": "Vehicle deleted successfully"})
}
