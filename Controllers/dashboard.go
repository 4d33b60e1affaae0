package Controllers

import (
	"Nathkrupa/Models"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// DashboardHandler serves the month-bounded summary screens
type DashboardHandler struct {
	DB *gorm.DB
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{DB: db}
}

type MonthlySummary struct {
	Month           string                   `json:"month"`
	TripCount       int64                    `json:"trip_count"`
	TotalIncome     float64                  `json:"total_income"`
	TotalExpenses   float64                  `json:"total_expenses"`
	Profit          float64                  `json:"profit"`
	TripCost        float64                  `json:"trip_cost"`
	FuelCost        float64                  `json:"fuel_cost"`
	MaintenanceCost float64                  `json:"maintenance_cost"`
	SparePartsCost  float64                  `json:"spare_parts_cost"`
	PaymentsIn      float64                  `json:"payments_received"`
	PendingAmount   float64                  `json:"pending_amount"`
	Vehicles        []VehicleMaintenanceCost `json:"vehicles"`
}

// GetMonthlySummary aggregates income and expenses. An empty month query
// parameter means all-time totals; a non-empty one must be YYYY-MM and
// scopes the figures to that calendar month. Day-level tables are
// filtered on date strings while maintenance uses its timestamp column.
func (h *DashboardHandler) GetMonthlySummary(c *fiber.Ctx) error {
	monthParam := c.Query("month")

	var firstDay, lastDay string
	var monthStart, monthEnd time.Time
	scoped := monthParam != ""
	if scoped {
		month, err := time.Parse("2006-01", monthParam)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid month, expected YYYY-MM",
			})
		}

		monthStart = time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
		nextMonth := monthStart.AddDate(0, 1, 0)
		monthEnd = nextMonth.Add(-time.Microsecond)

		firstDay = monthStart.Format("2006-01-02")
		lastDay = nextMonth.AddDate(0, 0, -1).Format("2006-01-02")
	}

	// dayRange scopes a date-string column when a month was given.
	dayRange := func(model interface{}, column string) *gorm.DB {
		query := h.DB.Model(model)
		if scoped {
			query = query.Where(column+" >= ? AND "+column+" <= ?", firstDay, lastDay)
		}
		return query
	}

	summary := MonthlySummary{Month: monthParam}

	dayRange(&Models.Trip{}, "trip_date").Count(&summary.TripCount)
	dayRange(&Models.Trip{}, "trip_date").Select("COALESCE(SUM(total_charged), 0)").Scan(&summary.TotalIncome)
	dayRange(&Models.Trip{}, "trip_date").Select("COALESCE(SUM(total_cost), 0)").Scan(&summary.TripCost)
	dayRange(&Models.Trip{}, "trip_date").Select("COALESCE(SUM(pending_amount), 0)").Scan(&summary.PendingAmount)

	dayRange(&Models.Fuel{}, "filled_date").
		Select("COALESCE(SUM(total_cost), 0)").Scan(&summary.FuelCost)

	maintenanceQuery := h.DB.Model(&Models.Maintenance{})
	if scoped {
		maintenanceQuery = maintenanceQuery.Where("start_date >= ? AND start_date <= ?", monthStart, monthEnd)
	}
	maintenanceQuery.Select("COALESCE(SUM(amount), 0)").Scan(&summary.MaintenanceCost)

	dayRange(&Models.SparePart{}, "replaced_date").
		Select("COALESCE(SUM(cost * quantity), 0)").Scan(&summary.SparePartsCost)

	dayRange(&Models.Payment{}, "payment_date").
		Select("COALESCE(SUM(amount), 0)").Scan(&summary.PaymentsIn)

	summary.TotalExpenses = summary.TripCost + summary.FuelCost +
		summary.MaintenanceCost + summary.SparePartsCost
	summary.Profit = summary.TotalIncome - summary.TotalExpenses

	costs, err := h.vehicleMaintenanceCosts()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch maintenance costs",
		})
	}
	summary.Vehicles = costs

	return c.JSON(summary)
}

type VehicleMaintenanceCost struct {
	VehicleID     uint    `json:"vehicle_id"`
	VehicleNumber string  `json:"vehicle_number"`
	Maintenance   float64 `json:"maintenance_cost"`
	SpareParts    float64 `json:"spare_parts_cost"`
	TotalCost     float64 `json:"total_cost"`
}

// vehicleMaintenanceCosts sums lifetime maintenance spend per vehicle,
// not bounded by month.
func (h *DashboardHandler) vehicleMaintenanceCosts() ([]VehicleMaintenanceCost, error) {
	var costs []VehicleMaintenanceCost
	err := h.DB.Raw(`
		SELECT v.id AS vehicle_id, v.vehicle_number,
			COALESCE((SELECT SUM(m.amount) FROM maintenance_events m
				WHERE m.vehicle_id = v.id AND m.deleted_at IS NULL), 0) AS maintenance,
			COALESCE((SELECT SUM(s.cost * s.quantity) FROM spare_parts s
				WHERE s.vehicle_id = v.id AND s.deleted_at IS NULL), 0) AS spare_parts
		FROM vehicles v
		WHERE v.deleted_at IS NULL
		ORDER BY v.vehicle_number
	`).Scan(&costs).Error
	if err != nil {
		return nil, err
	}

	for i := range costs {
		costs[i].TotalCost = costs[i].Maintenance + costs[i].SpareParts
	}
	return costs, nil
}

// GetVehicleMaintenanceCosts serves the per-vehicle listing on its own
// for the maintenance screen.
func (h *DashboardHandler) GetVehicleMaintenanceCosts(c *fiber.Ctx) error {
	costs, err := h.vehicleMaintenanceCosts()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch maintenance costs",
		})
	}
	return c.JSON(costs)
}
