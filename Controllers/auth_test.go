package Controllers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginFlow(t *testing.T) {
	app, _, _ := setupApp(t)

	resp := doRequest(t, app, "POST", "/api/auth/login", "", map[string]string{
		"username": "admin",
		"password": "admin",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Token      string `json:"token"`
		Permission int    `json:"permission"`
	}
	decodeBody(t, resp, &body)
	require.NotEmpty(t, body.Token)
	assert.Equal(t, 4, body.Permission)

	resp = doRequest(t, app, "GET", "/api/auth/validate-token", body.Token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	app, _, _ := setupApp(t)

	resp := doRequest(t, app, "POST", "/api/auth/login", "", map[string]string{
		"username": "admin",
		"password": "wrong",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRegisterUserRequiresAdmin(t *testing.T) {
	app, db, token := setupApp(t)

	resp := doRequest(t, app, "POST", "/api/auth/register", token, map[string]interface{}{
		"username":   "clerk",
		"name":       "Clerk",
		"password":   "clerk123",
		"permission": 1,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// The new permission-1 user cannot register accounts.
	clerkToken := loginToken(t, app, "clerk", "clerk123")
	resp = doRequest(t, app, "POST", "/api/auth/register", clerkToken, map[string]interface{}{
		"username": "another",
		"password": "x",
	})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	var count int64
	db.Table("users").Where("username = ?", "another").Count(&count)
	assert.Equal(t, int64(0), count)
}

func loginToken(t *testing.T, app *fiber.App, username, password string) string {
	t.Helper()

	resp := doRequest(t, app, "POST", "/api/auth/login", "", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Token string `json:"token"`
	}
	decodeBody(t, resp, &body)
	return body.Token
}
