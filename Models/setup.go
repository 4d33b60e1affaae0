package Models

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "database.db"
	}

	connection, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	DB = connection

	Migrate(DB)
	SeedDefaultUsers(DB)
}

// Migrate runs AutoMigrate in dependency order. AutoMigrate only adds
// missing tables and columns, so running it on every startup is safe.
func Migrate(db *gorm.DB) {
	// 1. Base entities with no references
	db.AutoMigrate(
		&User{},
		&Vehicle{},
		&Driver{},
		&Customer{},
		&Vendor{},
		&DashboardNote{},
	)

	// 2. Entities referencing the base set
	db.AutoMigrate(
		&Trip{},
		&Fuel{},
		&Maintenance{},
		&SparePart{},
		&VendorPayment{},
		&DriverExpense{},
		&DriverSalary{},
	)

	// 3. Children of Trip
	db.AutoMigrate(
		&TripPricingItem{},
		&TripDriverChange{},
		&Payment{},
	)
}

// SeedDefaultUsers creates the initial admin account on a fresh database.
func SeedDefaultUsers(db *gorm.DB) {
	var count int64
	db.Model(&User{}).Count(&count)
	if count > 0 {
		return
	}

	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin"
	}

	passwordByte, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Println(err)
		return
	}

	admin := User{
		Username:   username,
		Name:       "Administrator",
		Password:   passwordByte,
		Permission: 4,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Println(err)
	}
}
