package FiberConfig

import (
	"Nathkrupa/Controllers"
	"Nathkrupa/Models"
	"Nathkrupa/middleware"
	"fmt"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Initialize handlers
	tripHandler := Controllers.NewTripHandler(db)
	paymentHandler := Controllers.NewPaymentHandler(db)
	dashboardHandler := Controllers.NewDashboardHandler(db)
	noteHandler := Controllers.NewDashboardNoteHandler(db)
	vehicleHandler := Controllers.NewVehicleHandler(db)
	driverHandler := Controllers.NewDriverHandler(db)
	customerHandler := Controllers.NewCustomerHandler(db)
	fuelHandler := Controllers.NewFuelHandler(db)
	maintenanceHandler := Controllers.NewMaintenanceHandler(db)
	sparePartHandler := Controllers.NewSparePartHandler(db)
	vendorController := Controllers.NewVendorController(db)
	vendorPaymentController := Controllers.NewVendorPaymentController(db)
	reportHandler := Controllers.NewReportHandler(db)

	// API group
	api := app.Group("/api")

	// Auth
	api.Post("/auth/login", Controllers.Login)
	api.Get("/auth/validate-token", middleware.Verify(1), Controllers.ValidateToken)
	api.Post("/auth/logout", Controllers.Logout)
	api.Post("/auth/register", middleware.Verify(4), Controllers.RegisterUser)
	api.Get("/auth/users", middleware.Verify(4), Controllers.FetchUsers)
	api.Delete("/auth/users/:id", middleware.Verify(4), Controllers.DeleteUser)

	// Vehicle routes
	vehicles := api.Group("/vehicles", middleware.Verify(1))
	vehicles.Get("/", vehicleHandler.GetVehicles)
	vehicles.Post("/", vehicleHandler.CreateVehicle)
	vehicles.Get("/:id", vehicleHandler.GetVehicle)
	vehicles.Put("/:id", vehicleHandler.UpdateVehicle)
	vehicles.Delete("/:id", middleware.Verify(3), vehicleHandler.DeleteVehicle)

	// Driver routes
	drivers := api.Group("/drivers", middleware.Verify(1))
	drivers.Get("/", driverHandler.GetDrivers)
	drivers.Post("/", driverHandler.CreateDriver)
	drivers.Get("/:id", driverHandler.GetDriver)
	drivers.Put("/:id", driverHandler.UpdateDriver)
	drivers.Delete("/:id", middleware.Verify(3), driverHandler.DeleteDriver)

	// Driver expenses and salaries
	api.Post("/RegisterDriverExpense", middleware.Verify(1), Controllers.RegisterDriverExpense)
	api.Post("/GetDriverExpenses", middleware.Verify(1), Controllers.GetDriverExpenses)
	api.Delete("/driver-expenses/:id", middleware.Verify(3), Controllers.DeleteDriverExpense)
	api.Post("/RegisterDriverSalary", middleware.Verify(3), Controllers.RegisterDriverSalary)
	api.Post("/GetDriverSalaryPreview", middleware.Verify(3), Controllers.GetDriverSalaryPreview)
	api.Post("/GetDriverSalaries", middleware.Verify(3), Controllers.GetDriverSalaries)
	api.Delete("/driver-salaries/:id", middleware.Verify(3), Controllers.DeleteDriverSalary)

	// Customer routes
	customers := api.Group("/customers", middleware.Verify(1))
	customers.Get("/", customerHandler.GetCustomers)
	customers.Post("/", customerHandler.CreateCustomer)
	customers.Get("/:id", customerHandler.GetCustomer)
	customers.Get("/:id/statement", customerHandler.GetCustomerStatement)
	customers.Put("/:id", customerHandler.UpdateCustomer)
	customers.Delete("/:id", middleware.Verify(3), customerHandler.DeleteCustomer)

	// Trip routes
	trips := api.Group("/trips", middleware.Verify(1))
	trips.Get("/", tripHandler.GetTrips)
	trips.Get("/:id", tripHandler.GetTrip)
	trips.Post("/", tripHandler.CreateTrip)
	trips.Put("/:id", tripHandler.UpdateTrip)
	trips.Delete("/:id", tripHandler.DeleteTrip)
	trips.Post("/:id/driver-changes", tripHandler.AddDriverChange)

	// Payment routes
	payments := api.Group("/payments", middleware.Verify(1))
	payments.Get("/", paymentHandler.GetPayments)
	payments.Post("/", paymentHandler.CreatePayment)
	payments.Get("/:id", paymentHandler.GetPayment)
	payments.Delete("/:id", middleware.Verify(3), paymentHandler.DeletePayment)

	// Fuel routes
	fuel := api.Group("/fuel", middleware.Verify(1))
	fuel.Get("/", fuelHandler.GetFuelEvents)
	fuel.Post("/", fuelHandler.CreateFuelEvent)
	fuel.Get("/:id", fuelHandler.GetFuelEvent)
	fuel.Put("/:id", fuelHandler.UpdateFuelEvent)
	fuel.Delete("/:id", fuelHandler.DeleteFuelEvent)

	// Maintenance routes
	maintenance := api.Group("/maintenance", middleware.Verify(1))
	maintenance.Get("/", maintenanceHandler.GetMaintenanceEvents)
	maintenance.Post("/", maintenanceHandler.CreateMaintenanceEvent)
	maintenance.Get("/:id", maintenanceHandler.GetMaintenanceEvent)
	maintenance.Put("/:id", maintenanceHandler.UpdateMaintenanceEvent)
	maintenance.Delete("/:id", maintenanceHandler.DeleteMaintenanceEvent)

	// Spare part routes
	spareParts := api.Group("/spare-parts", middleware.Verify(1))
	spareParts.Get("/", sparePartHandler.GetSpareParts)
	spareParts.Post("/", sparePartHandler.CreateSparePart)
	spareParts.Get("/:id", sparePartHandler.GetSparePart)
	spareParts.Put("/:id", sparePartHandler.UpdateSparePart)
	spareParts.Delete("/:id", sparePartHandler.DeleteSparePart)

	// Vendor routes
	vendors := api.Group("/vendors", middleware.Verify(3))
	vendors.Get("/", vendorController.GetVendors)
	vendors.Post("/", vendorController.CreateVendor)
	vendors.Get("/summary", vendorController.Summary)
	vendors.Get("/:id", vendorController.GetVendor)
	vendors.Put("/:id", vendorController.UpdateVendor)
	vendors.Delete("/:id", vendorController.DeleteVendor)
	vendors.Get("/:id/balance", vendorController.GetVendorBalance)

	// Vendor payment routes under vendors
	vendors.Get("/:vendor_id/payments", vendorPaymentController.GetVendorPayments)
	vendors.Post("/:vendor_id/payments", vendorPaymentController.CreateVendorPayment)

	// Direct vendor payment routes
	vendorPayments := api.Group("/vendor-payments", middleware.Verify(3))
	vendorPayments.Get("/:id", vendorPaymentController.GetVendorPayment)
	vendorPayments.Put("/:id", vendorPaymentController.UpdateVendorPayment)
	vendorPayments.Delete("/:id", vendorPaymentController.DeleteVendorPayment)

	// Dashboard routes
	dashboard := api.Group("/dashboard", middleware.Verify(1))
	dashboard.Get("/summary", dashboardHandler.GetMonthlySummary)
	dashboard.Get("/vehicle-maintenance", dashboardHandler.GetVehicleMaintenanceCosts)
	dashboard.Get("/notes", noteHandler.GetNotes)
	dashboard.Post("/notes", noteHandler.CreateNote)
	dashboard.Put("/notes/:id", noteHandler.UpdateNote)
	dashboard.Delete("/notes/:id", noteHandler.DeleteNote)

	// Reports
	api.Get("/reports/trips/export", middleware.Verify(3), reportHandler.ExportTrips)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
}

func FiberConfig() {
	fmt.Println("Server Up...")
	app := fiber.New()
	app.Use(middleware.RequestLogger())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestCompression, // 2
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		AllowCredentials: true,
		MaxAge:           300,
	}))

	SetupRoutes(app, Models.DB)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	log.Fatal(app.Listen(":" + port))
}
