package Controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Nathkrupa/Models"
)

// VendorPaymentController handles vendor ledger entries
type VendorPaymentController struct {
	DB *gorm.DB
}

// NewVendorPaymentController creates a new VendorPaymentController
func NewVendorPaymentController(db *gorm.DB) *VendorPaymentController {
	return &VendorPaymentController{DB: db}
}

// GetVendorPayments lists a vendor's ledger entries
func (c *VendorPaymentController) GetVendorPayments(ctx *fiber.Ctx) error {
	vendorID, err := strconv.Atoi(ctx.Params("vendor_id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid vendor ID"})
	}

	var vendor Models.Vendor
	if err := c.DB.First(&vendor, vendorID).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vendor not found"})
	}

	var payments []Models.VendorPayment
	result := c.DB.Where("vendor_id = ?", vendorID).Order("date DESC, id DESC").Find(&payments)
	if result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve payments"})
	}

	return ctx.JSON(payments)
}

// CreateVendorPayment adds a ledger entry for a vendor
func (c *VendorPaymentController) CreateVendorPayment(ctx *fiber.Ctx) error {
	vendorID, err := strconv.Atoi(ctx.Params("vendor_id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid vendor ID"})
	}

	var vendor Models.Vendor
	if err := c.DB.First(&vendor, vendorID).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vendor not found"})
	}

	var input Models.VendorPayment
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if input.Amount == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Amount must be non-zero"})
	}

	payment := Models.VendorPayment{
		VendorID:    uint(vendorID),
		Date:        input.Date,
		Description: input.Description,
		PaymentMode: input.PaymentMode,
		Amount:      input.Amount,
	}
	if err := c.DB.Create(&payment).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create payment"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(payment)
}

// GetVendorPayment retrieves a single ledger entry
func (c *VendorPaymentController) GetVendorPayment(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payment ID"})
	}

	var payment Models.VendorPayment
	if err := c.DB.First(&payment, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment not found"})
	}

	return ctx.JSON(payment)
}

// UpdateVendorPayment edits a ledger entry
func (c *VendorPaymentController) UpdateVendorPayment(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payment ID"})
	}

	var payment Models.VendorPayment
	if err := c.DB.First(&payment, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment not found"})
	}

	var input Models.VendorPayment
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	payment.Date = input.Date
	payment.Description = input.Description
	payment.PaymentMode = input.PaymentMode
	payment.Amount = input.Amount
	c.DB.Save(&payment)

	return ctx.JSON(payment)
}

// DeleteVendorPayment removes a ledger entry
func (c *VendorPaymentController) DeleteVendorPayment(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payment ID"})
	}

	var payment Models.VendorPayment
	if err := c.DB.First(&payment, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment not found"})
	}

	c.DB.Delete(&payment)

	return ctx.JSON(fiber.Map{"message": "Payment deleted successfully"})
}
