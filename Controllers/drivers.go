package Controllers

import (
	"Nathkrupa/Models"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// DriverHandler handles driver master-data routes
type DriverHandler struct {
	DB *gorm.DB
}

func NewDriverHandler(db *gorm.DB) *DriverHandler {
	return &DriverHandler{DB: db}
}

func (h *DriverHandler) GetDrivers(c *fiber.Ctx) error {
	query := h.DB.Model(&Models.Driver{})
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR phone LIKE ?", like, like)
	}

	var drivers []Models.Driver
	if err := query.Order("name").Find(&drivers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve drivers",
		})
	}
	return c.JSON(drivers)
}

func (h *DriverHandler) GetDriver(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid driver ID"})
	}

	var driver Models.Driver
	if err := h.DB.First(&driver, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Driver not found"})
	}
	return c.JSON(driver)
}

func (h *DriverHandler) CreateDriver(c *fiber.Ctx) error {
	var input Models.Driver
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if strings.TrimSpace(input.Name) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Driver name is required"})
	}

	driver := Models.Driver{
		Name:          input.Name,
		Phone:         input.Phone,
		LicenseNumber: input.LicenseNumber,
		JoiningDate:   input.JoiningDate,
		MonthlySalary: input.MonthlySalary,
	}
	if err := h.DB.Create(&driver).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create driver",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(driver)
}

func (h *DriverHandler) UpdateDriver(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid driver ID"})
	}

	var driver Models.Driver
	if err := h.DB.First(&driver, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Driver not found"})
	}

	var input Models.Driver
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	h.DB.Model(&driver).Updates(Models.Driver{
		Name:          input.Name,
		Phone:         input.Phone,
		LicenseNumber: input.LicenseNumber,
		JoiningDate:   input.JoiningDate,
		MonthlySalary: input.MonthlySalary,
	})
	return c.JSON(driver)
}

func (h *DriverHandler) DeleteDriver(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid driver ID"})
	}

	var driver Models.Driver
	if err := h.DB.First(&driver, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Driver not found"})
	}

	var tripCount int64
	h.DB.Model(&Models.Trip{}).Where("driver_id = ?", id).Count(&tripCount)
	if tripCount > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Driver has trips recorded against them and cannot be deleted",
		})
	}

	h.DB.Delete(&driver)
	return c.JSON(fiber.Map{"message": "Driver deleted successfully"})
}
