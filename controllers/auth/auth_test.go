package authController_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"antuf/config"
	"antuf/database"
	"antuf/models"
	authRoutes "antuf/routers/authRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type apiEnvelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}
	config.AppConfig = &config.Config{
		JWTKey:    "test-secret-key",
		SaltRound: bcrypt.MinCost,
	}

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, apiEnvelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var envelope apiEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp, envelope
}

func signup(t *testing.T, app *fiber.App, email, password string) {
	t.Helper()

	resp, _ := doJSON(t, app, "POST", "/auth/signup", "", fiber.Map{
		"name":     "Asha Kumar",
		"email":    email,
		"password": password,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestSignup(t *testing.T) {
	app := setupApp(t)

	signup(t, app, "asha@antuf.org", "secret123")

	// Password never leaks in the response and is stored hashed
	var stored models.User
	require.NoError(t, database.Database.Db.Where("email = ?", "asha@antuf.org").First(&stored).Error)
	assert.NotEqual(t, "secret123", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret123")))
	assert.Equal(t, models.RoleUser, stored.Role)
}

func TestSignupDuplicateEmail(t *testing.T) {
	app := setupApp(t)

	signup(t, app, "asha@antuf.org", "secret123")

	resp, _ := doJSON(t, app, "POST", "/auth/signup", "", fiber.Map{
		"name":     "Another Asha",
		"email":    "asha@antuf.org",
		"password": "different1",
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestSignupValidation(t *testing.T) {
	app := setupApp(t)

	tests := []fiber.Map{
		{"name": "", "email": "a@b.com", "password": "secret123"},
		{"name": "Asha", "email": "", "password": "secret123"},
		{"name": "Asha", "email": "not-an-email", "password": "secret123"},
		{"name": "Asha", "email": "a@b.com", "password": "short"},
	}
	for _, payload := range tests {
		resp, _ := doJSON(t, app, "POST", "/auth/signup", "", payload)
		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode, "payload=%v", payload)
	}
}

func TestLogin(t *testing.T) {
	app := setupApp(t)
	signup(t, app, "asha@antuf.org", "secret123")

	resp, envelope := doJSON(t, app, "POST", "/auth/login", "", fiber.Map{
		"email":    "asha@antuf.org",
		"password": "secret123",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &result))
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "asha@antuf.org", result.User.Email)

	// The token opens the profile endpoint
	resp, envelope = doJSON(t, app, "GET", "/auth/profile", result.Token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var profile models.User
	require.NoError(t, json.Unmarshal(envelope.Data, &profile))
	assert.Equal(t, "Asha Kumar", profile.Name)
}

func TestLoginWrongPassword(t *testing.T) {
	app := setupApp(t)
	signup(t, app, "asha@antuf.org", "secret123")

	resp, _ := doJSON(t, app, "POST", "/auth/login", "", fiber.Map{
		"email":    "asha@antuf.org",
		"password": "wrong-password",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// Unknown emails get the same answer as wrong passwords
	resp, _ = doJSON(t, app, "POST", "/auth/login", "", fiber.Map{
		"email":    "nobody@antuf.org",
		"password": "secret123",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestLoginBlocksAfterFiveFailures(t *testing.T) {
	app := setupApp(t)
	signup(t, app, "asha@antuf.org", "secret123")

	for i := 0; i < 5; i++ {
		resp, _ := doJSON(t, app, "POST", "/auth/login", "", fiber.Map{
			"email":    "asha@antuf.org",
			"password": "wrong-password",
		})
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	}

	// The sixth attempt hits the block, even with the right password
	resp, _ := doJSON(t, app, "POST", "/auth/login", "", fiber.Map{
		"email":    "asha@antuf.org",
		"password": "secret123",
	})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	var stored models.User
	require.NoError(t, database.Database.Db.Where("email = ?", "asha@antuf.org").First(&stored).Error)
	assert.True(t, stored.IsBlocked)
	require.NotNil(t, stored.BlockedUntil)
}

func TestLoginRecordsTracking(t *testing.T) {
	app := setupApp(t)
	signup(t, app, "asha@antuf.org", "secret123")

	resp, _ := doJSON(t, app, "POST", "/auth/login", "", fiber.Map{
		"email":    "asha@antuf.org",
		"password": "secret123",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var count int64
	database.Database.Db.Model(&models.LoginTracking{}).Count(&count)
	assert.Equal(t, int64(1), count)
}
