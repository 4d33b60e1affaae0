package Controllers

import (
	"Nathkrupa/Models"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// RegisterDriverExpense records an advance or expense paid out to a driver.
func RegisterDriverExpense(c *fiber.Ctx) error {
	var input struct {
		DriverID uint                 `json:"driver_id"`
		Expense  Models.DriverExpense `json:"expense"`
	}
	if err := c.BodyParser(&input); err != nil {
		log.Println(err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var driver Models.Driver
	if err := Models.DB.First(&driver, input.DriverID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Driver not found"})
	}
	if input.Expense.Amount <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Amount must be greater than zero"})
	}

	input.Expense.DriverID = input.DriverID
	if err := Models.DB.Create(&input.Expense).Error; err != nil {
		log.Println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to register expense"})
	}

	return c.JSON(fiber.Map{
		"message": "Expense Registered Successfully",
		"data":    input.Expense,
	})
}

// GetDriverExpenses lists a driver's expenses, optionally bounded by date.
func GetDriverExpenses(c *fiber.Ctx) error {
	var req struct {
		DriverID uint   `json:"driver_id"`
		FromDate string `json:"from_date"`
		ToDate   string `json:"to_date"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse request body"})
	}

	query := Models.DB.Where("driver_id = ?", req.DriverID)
	if req.FromDate != "" && req.ToDate != "" {
		query = query.Where("expense_date BETWEEN ? AND ?", req.FromDate, req.ToDate)
	}

	var expenses []Models.DriverExpense
	if err := query.Order("expense_date DESC, id DESC").Find(&expenses).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch expenses"})
	}

	return c.JSON(expenses)
}

// DeleteDriverExpense removes an expense record.
func DeleteDriverExpense(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid expense ID"})
	}

	var expense Models.DriverExpense
	if err := Models.DB.First(&expense, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Expense not found"})
	}

	Models.DB.Delete(&expense)
	return c.JSON(fiber.Map{"message": "Expense deleted successfully"})
}
