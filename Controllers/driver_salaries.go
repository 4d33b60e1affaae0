package Controllers

import (
	"Nathkrupa/Models"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

type SalaryPreviewRequest struct {
	DriverID    uint   `json:"driver_id"`
	SalaryMonth string `json:"salary_month"` // YYYY-MM
}

type SalaryPreview struct {
	DriverID         uint    `json:"driver_id"`
	DriverName       string  `json:"driver_name"`
	SalaryMonth      string  `json:"salary_month"`
	BasicSalary      float64 `json:"basic_salary"`
	BhattaAmount     float64 `json:"bhatta_amount"`
	AdvanceDeduction float64 `json:"advance_deduction"`
	TripCount        int64   `json:"trip_count"`
	NetPayable       float64 `json:"net_payable"`
}

// buildSalaryPreview derives the month's payable figures: bhatta from the
// driver's trips and advances from the expense ledger.
func buildSalaryPreview(driver Models.Driver, month time.Time) SalaryPreview {
	firstDay := month.Format("2006-01-02")
	lastDay := month.AddDate(0, 1, -1).Format("2006-01-02")

	preview := SalaryPreview{
		DriverID:    driver.ID,
		DriverName:  driver.Name,
		SalaryMonth: month.Format("2006-01"),
		BasicSalary: driver.MonthlySalary,
	}

	Models.DB.Model(&Models.Trip{}).
		Where("driver_id = ? AND trip_date BETWEEN ? AND ?", driver.ID, firstDay, lastDay).
		Count(&preview.TripCount)
	Models.DB.Model(&Models.Trip{}).
		Where("driver_id = ? AND trip_date BETWEEN ? AND ?", driver.ID, firstDay, lastDay).
		Select("COALESCE(SUM(driver_bhatta), 0)").Scan(&preview.BhattaAmount)
	Models.DB.Model(&Models.DriverExpense{}).
		Where("driver_id = ? AND expense_type = ? AND expense_date BETWEEN ? AND ?",
			driver.ID, "advance", firstDay, lastDay).
		Select("COALESCE(SUM(amount), 0)").Scan(&preview.AdvanceDeduction)

	preview.NetPayable = preview.BasicSalary + preview.BhattaAmount - preview.AdvanceDeduction
	return preview
}

// GetDriverSalaryPreview computes the payable amount for a month without
// saving anything.
func GetDriverSalaryPreview(c *fiber.Ctx) error {
	var req SalaryPreviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse request body"})
	}

	month, err := time.Parse("2006-01", req.SalaryMonth)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid month, expected YYYY-MM"})
	}

	var driver Models.Driver
	if err := Models.DB.First(&driver, req.DriverID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Driver not found"})
	}

	return c.JSON(buildSalaryPreview(driver, month))
}

// RegisterDriverSalary saves a salary payout for a month. The derived
// figures can be overridden by the caller; blanks are filled from the
// preview calculation.
func RegisterDriverSalary(c *fiber.Ctx) error {
	var input struct {
		DriverID uint                `json:"driver_id"`
		Salary   Models.DriverSalary `json:"salary"`
	}
	if err := c.BodyParser(&input); err != nil {
		log.Println(err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	month, err := time.Parse("2006-01", input.Salary.SalaryMonth)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid month, expected YYYY-MM"})
	}

	var driver Models.Driver
	if err := Models.DB.First(&driver, input.DriverID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Driver not found"})
	}

	var existing Models.DriverSalary
	err = Models.DB.Where("driver_id = ? AND salary_month = ?", input.DriverID, input.Salary.SalaryMonth).
		First(&existing).Error
	if err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Salary for this month is already recorded",
		})
	}

	salary := input.Salary
	salary.DriverID = input.DriverID
	if salary.BasicSalary == 0 && salary.BhattaAmount == 0 {
		preview := buildSalaryPreview(driver, month)
		salary.BasicSalary = preview.BasicSalary
		salary.BhattaAmount = preview.BhattaAmount
		salary.AdvanceDeduction = preview.AdvanceDeduction
	}
	salary.NetPaid = salary.BasicSalary + salary.BhattaAmount -
		salary.AdvanceDeduction - salary.OtherDeduction

	if err := Models.DB.Create(&salary).Error; err != nil {
		log.Println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to register salary"})
	}

	return c.JSON(fiber.Map{
		"message": "Salary Registered Successfully",
		"data":    salary,
	})
}

// GetDriverSalaries lists recorded payouts for a driver.
func GetDriverSalaries(c *fiber.Ctx) error {
	var req struct {
		DriverID uint `json:"driver_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse request body"})
	}

	var salaries []Models.DriverSalary
	if err := Models.DB.Where("driver_id = ?", req.DriverID).
		Order("salary_month DESC").Find(&salaries).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch salaries"})
	}

	return c.JSON(salaries)
}

// DeleteDriverSalary removes a payout record.
func DeleteDriverSalary(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid salary ID"})
	}

	var salary Models.DriverSalary
	if err := Models.DB.First(&salary, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Salary not found"})
	}

	Models.DB.Delete(&salary)
	return c.JSON(fiber.Map{"message": "Salary deleted successfully"})
}
