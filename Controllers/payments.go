package Controllers

import (
	"Nathkrupa/Models"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var validate = validator.New()

// errOverpayment signals that the guarded balance update matched no row,
// meaning a concurrent receipt consumed the remaining balance first.
var errOverpayment = errors.New("payment exceeds remaining balance")

// PaymentHandler contains handler methods for payment routes
type PaymentHandler struct {
	DB *gorm.DB
}

func NewPaymentHandler(db *gorm.DB) *PaymentHandler {
	return &PaymentHandler{DB: db}
}

type PaymentInput struct {
	TripID      uint    `json:"trip_id" validate:"required"`
	PaymentDate string  `json:"payment_date" validate:"required"`
	PaymentMode string  `json:"payment_mode"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Notes       string  `json:"notes"`
}

// CreatePayment records a receipt against a trip. The trip row is only
// touched through a guarded update so two simultaneous payments can never
// push the received amount past the billed total.
func (h *PaymentHandler) CreatePayment(c *fiber.Ctx) error {
	var input PaymentInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var trip Models.Trip
	if err := h.DB.First(&trip, input.TripID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Trip not found"})
	}

	remaining := trip.TotalCharged - trip.AmountReceived
	if input.Amount > remaining {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Payment of %.2f exceeds remaining balance of %.2f", input.Amount, remaining),
		})
	}

	payment := Models.Payment{
		InvoiceNumber: trip.InvoiceNumber,
		TripID:        trip.ID,
		PaymentDate:   input.PaymentDate,
		PaymentMode:   input.PaymentMode,
		Amount:        input.Amount,
		Notes:         input.Notes,
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		// Guarded update: the WHERE clause rechecks the balance so the
		// payment fails cleanly if another receipt landed in between.
		result := tx.Model(&Models.Trip{}).
			Where("id = ? AND total_charged - amount_received >= ?", trip.ID, input.Amount).
			Updates(map[string]interface{}{
				"amount_received": gorm.Expr("amount_received + ?", input.Amount),
				"pending_amount":  gorm.Expr("total_charged - (amount_received + ?)", input.Amount),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errOverpayment
		}
		return tx.Create(&payment).Error
	})
	if errors.Is(err, errOverpayment) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Payment exceeds remaining balance",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to record payment",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Payment recorded successfully",
		"data":    payment,
	})
}

func (h *PaymentHandler) GetPayments(c *fiber.Ctx) error {
	query := h.DB.Model(&Models.Payment{})

	if tripID := c.Query("trip_id"); tripID != "" {
		query = query.Where("trip_id = ?", tripID)
	}
	if invoice := c.Query("invoice_number"); invoice != "" {
		query = query.Where("invoice_number = ?", invoice)
	}
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")
	if startDate != "" && endDate != "" {
		query = query.Where("payment_date >= ? AND payment_date <= ?", startDate, endDate)
	}

	var payments []Models.Payment
	if err := query.Order("payment_date DESC, id DESC").Find(&payments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve payments",
		})
	}
	return c.JSON(payments)
}

func (h *PaymentHandler) GetPayment(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payment ID"})
	}

	var payment Models.Payment
	if err := h.DB.First(&payment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment not found"})
	}
	return c.JSON(payment)
}

// DeletePayment reverses a receipt. The trip's received amount is floored
// at zero in case the trip's billing changed since the payment landed.
func (h *PaymentHandler) DeletePayment(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payment ID"})
	}

	var payment Models.Payment
	if err := h.DB.First(&payment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment not found"})
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var trip Models.Trip
		if err := tx.First(&trip, payment.TripID).Error; err == nil {
			trip.AmountReceived -= payment.Amount
			if trip.AmountReceived < 0 {
				trip.AmountReceived = 0
			}
			trip.RecalculatePendingAmount()
			if err := tx.Save(&trip).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&payment).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to delete payment",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{"message": "Payment deleted successfully"})
}
