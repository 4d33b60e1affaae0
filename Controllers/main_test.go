package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"Nathkrupa/FiberConfig"
	"Nathkrupa/Models"
	"Nathkrupa/middleware"
)

// setupApp builds a fiber app with all routes against a fresh in-memory
// database named after the test, and returns an admin bearer token.
func setupApp(t *testing.T) (*fiber.App, *gorm.DB, string) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	Models.Migrate(db)
	Models.DB = db

	app := fiber.New()
	FiberConfig.SetupRoutes(app, db)

	return app, db, adminToken(t, db)
}

func adminToken(t *testing.T, db *gorm.DB) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	require.NoError(t, err)

	admin := Models.User{Username: "admin", Name: "Administrator", Password: hash, Permission: 4}
	require.NoError(t, db.Create(&admin).Error)

	claims := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		Issuer:    strconv.Itoa(int(admin.ID)),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	token, err := claims.SignedString(middleware.JWTSecret())
	require.NoError(t, err)

	return token
}

func doRequest(t *testing.T, app *fiber.App, method, url, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, url, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func seedVehicle(t *testing.T, db *gorm.DB, number string) Models.Vehicle {
	t.Helper()
	vehicle := Models.Vehicle{VehicleNumber: number, VehicleType: "truck", ModelName: "Tata 407"}
	require.NoError(t, db.Create(&vehicle).Error)
	return vehicle
}

func seedCustomer(t *testing.T, db *gorm.DB, name string) Models.Customer {
	t.Helper()
	customer := Models.Customer{Name: name, Phone: "9000000000"}
	require.NoError(t, db.Create(&customer).Error)
	return customer
}

func seedDriver(t *testing.T, db *gorm.DB, name string) Models.Driver {
	t.Helper()
	driver := Models.Driver{Name: name, MonthlySalary: 18000}
	require.NoError(t, db.Create(&driver).Error)
	return driver
}
