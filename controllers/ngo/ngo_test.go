package ngoController_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"antuf/config"
	"antuf/database"
	"antuf/middleware"
	"antuf/models"
	ngoRoutes "antuf/routers/ngoRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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
	config.AppConfig = &config.Config{JWTKey: "test-secret-key"}

	app := fiber.New()
	ngoRoutes.SetupNgoRoutes(app)
	return app
}

func adminToken(t *testing.T) string {
	t.Helper()

	admin := models.User{Name: "Admin", Email: "admin@antuf.org", Role: models.RoleAdmin, Password: "x"}
	require.NoError(t, database.Database.Db.Create(&admin).Error)

	token, err := middleware.GenerateJWT(admin.ID, admin.Name, admin.Role, admin.Email)
	require.NoError(t, err)
	return token
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

func TestEventLifecycle(t *testing.T) {
	app := setupApp(t)
	token := adminToken(t)

	starts := time.Now().Add(72 * time.Hour)
	ends := starts.Add(4 * time.Hour)

	resp, envelope := doJSON(t, app, "POST", "/admin/event/create", token, fiber.Map{
		"title":     "Annual Fundraiser",
		"location":  "Pokhara",
		"starts_at": starts.Format(time.RFC3339),
		"ends_at":   ends.Format(time.RFC3339),
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var event models.Event
	require.NoError(t, json.Unmarshal(envelope.Data, &event))
	assert.Equal(t, "Annual Fundraiser", event.Title)

	// Public list needs no auth
	resp, envelope = doJSON(t, app, "GET", "/events", "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result struct {
		Events []models.Event `json:"events"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &result))
	assert.Len(t, result.Events, 1)

	resp, _ = doJSON(t, app, "DELETE", "/admin/event/1", token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	_, envelope = doJSON(t, app, "GET", "/events", "", nil)
	require.NoError(t, json.Unmarshal(envelope.Data, &result))
	assert.Empty(t, result.Events)
}

func TestEventCannotEndBeforeStart(t *testing.T) {
	app := setupApp(t)
	token := adminToken(t)

	starts := time.Now().Add(72 * time.Hour)

	resp, _ := doJSON(t, app, "POST", "/admin/event/create", token, fiber.Map{
		"title":     "Broken Event",
		"starts_at": starts.Format(time.RFC3339),
		"ends_at":   starts.Add(-time.Hour).Format(time.RFC3339),
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestRepresentativesAndAffiliates(t *testing.T) {
	app := setupApp(t)
	token := adminToken(t)

	resp, _ := doJSON(t, app, "POST", "/admin/representative/create", token, fiber.Map{
		"name":   "Sita Thapa",
		"region": "Gandaki",
		"email":  "sita@antuf.org",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, _ = doJSON(t, app, "POST", "/admin/representative/create", token, fiber.Map{"name": "  "})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	resp, _ = doJSON(t, app, "POST", "/admin/affiliate/create", token, fiber.Map{
		"name":        "Tech For Nepal",
		"website_url": "https://techfornepal.org",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	_, envelope := doJSON(t, app, "GET", "/representatives", "", nil)
	var reps []models.Representative
	require.NoError(t, json.Unmarshal(envelope.Data, &reps))
	require.Len(t, reps, 1)
	assert.Equal(t, "Sita Thapa", reps[0].Name)

	_, envelope = doJSON(t, app, "GET", "/affiliates", "", nil)
	var affiliates []models.Affiliate
	require.NoError(t, json.Unmarshal(envelope.Data, &affiliates))
	assert.Len(t, affiliates, 1)
}
