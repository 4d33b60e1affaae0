package Models

import "gorm.io/gorm"

type Driver struct {
	gorm.Model
	Name          string  `json:"name"`
	Phone         string  `json:"phone"`
	LicenseNumber string  `json:"license_number"`
	JoiningDate   string  `json:"joining_date"`
	MonthlySalary float64 `json:"monthly_salary"`
}

type DriverExpense struct {
	gorm.Model
	DriverID    uint    `json:"driver_id" gorm:"index"`
	ExpenseDate string  `json:"expense_date"`
	ExpenseType string  `json:"expense_type"`
	Amount      float64 `json:"amount"`
	Notes       string  `json:"notes"`
}

// DriverSalary records one month's payout. NetPaid defaults to
// basic + bhatta - deductions when not given explicitly.
type DriverSalary struct {
	gorm.Model
	DriverID         uint    `json:"driver_id" gorm:"index"`
	SalaryMonth      string  `json:"salary_month"` // YYYY-MM
	BasicSalary      float64 `json:"basic_salary"`
	BhattaAmount     float64 `json:"bhatta_amount"`
	AdvanceDeduction float64 `json:"advance_deduction"`
	OtherDeduction   float64 `json:"other_deduction"`
	NetPaid          float64 `json:"net_paid"`
	PaymentDate      string  `json:"payment_date"`
	Notes            string  `json:"notes"`
}
