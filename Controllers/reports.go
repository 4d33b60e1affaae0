package Controllers

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"Nathkrupa/Models"
)

// ReportHandler produces downloadable exports
type ReportHandler struct {
	DB *gorm.DB
}

func NewReportHandler(db *gorm.DB) *ReportHandler {
	return &ReportHandler{DB: db}
}

func tripsToExcel(trips []Models.Trip) (*bytes.Buffer, error) {
	f := excelize.NewFile()

	sheetName := "Trips"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("error creating sheet: %v", err)
	}
	f.SetActiveSheet(index)

	headers := []string{
		"Invoice Number", "Trip Date", "Vehicle", "From", "To",
		"Distance (km)", "Pricing Type", "Total Charged", "Amount Received",
		"Pending", "Total Cost", "Discount",
	}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6E6FA"},
			Pattern: 1,
		},
	})
	if err == nil {
		f.SetRowStyle(sheetName, 1, 1, headerStyle)
	}

	for rowIndex, trip := range trips {
		row := rowIndex + 2

		values := []interface{}{
			trip.InvoiceNumber,
			trip.TripDate,
			trip.VehicleNumber,
			trip.FromLocation,
			trip.ToLocation,
			trip.DistanceKm,
			trip.PricingType,
			trip.TotalCharged,
			trip.AmountReceived,
			trip.PendingAmount,
			trip.TotalCost,
			trip.DiscountAmount,
		}
		for colIndex, value := range values {
			cell := fmt.Sprintf("%c%d", 'A'+colIndex, row)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	for i := 0; i < len(headers); i++ {
		f.SetColWidth(sheetName, string('A'+rune(i)), string('A'+rune(i)), 15)
	}

	if f.GetSheetName(0) != sheetName {
		f.DeleteSheet("Sheet1")
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("error writing Excel file to buffer: %v", err)
	}
	return &buf, nil
}

// ExportTrips downloads trips as an Excel sheet, optionally filtered by
// date range and customer.
func (h *ReportHandler) ExportTrips(c *fiber.Ctx) error {
	query := h.DB.Model(&Models.Trip{})

	startDate := c.Query("start_date")
	endDate := c.Query("end_date")
	if startDate != "" && endDate != "" {
		query = query.Where("trip_date >= ? AND trip_date <= ?", startDate, endDate)
	}
	if customerID := c.Query("customer_id"); customerID != "" {
		query = query.Where("customer_id = ?", customerID)
	}

	var trips []Models.Trip
	if err := query.Order("trip_date, id").Find(&trips).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch trips",
		})
	}

	excelBuffer, err := tripsToExcel(trips)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("Failed to build export: %v", err),
		})
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("trips_export_%s.xlsx", timestamp)

	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Set("Content-Length", fmt.Sprintf("%d", excelBuffer.Len()))

	return c.Send(excelBuffer.Bytes())
}
