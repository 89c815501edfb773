package cardController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"antuf/config"
	"antuf/database"
	"antuf/middleware"
	"antuf/models"
	cardRoutes "antuf/routers/cardRoutes"

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
	cardRoutes.SetupCardRoutes(app)
	return app
}

var userSeq uint

func createUser(t *testing.T, role string) (models.User, string) {
	t.Helper()

	userSeq++
	user := models.User{
		Name:     "Test " + role,
		Email:    fmt.Sprintf("%s-%d@antuf.org", role, userSeq),
		Role:     role,
		Password: "x",
	}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)
	return user, token
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

func TestCreateCardOrderQuantityBounds(t *testing.T) {
	app := setupApp(t)
	_, token := createUser(t, models.RoleUser)

	for _, quantity := range []int{0, -1, 101} {
		resp, _ := doJSON(t, app, "POST", "/card/order", token, fiber.Map{"quantity": quantity})
		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode, "quantity=%d", quantity)
	}

	for _, quantity := range []int{1, 100} {
		resp, envelope := doJSON(t, app, "POST", "/card/order", token, fiber.Map{"quantity": quantity})
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode, "quantity=%d", quantity)

		var entry models.CardPrintQueue
		require.NoError(t, json.Unmarshal(envelope.Data, &entry))
		assert.Equal(t, quantity, entry.Quantity)
		assert.Equal(t, models.CardPending, entry.Status)
		assert.Equal(t, models.CardStandard, entry.CardType)
	}
}

func TestCreateCardOrderInvalidType(t *testing.T) {
	app := setupApp(t)
	_, token := createUser(t, models.RoleUser)

	resp, _ := doJSON(t, app, "POST", "/card/order", token, fiber.Map{"quantity": 1, "card_type": "GOLD"})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	resp, envelope := doJSON(t, app, "POST", "/card/order", token, fiber.Map{"quantity": 1, "card_type": "premium"})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var entry models.CardPrintQueue
	require.NoError(t, json.Unmarshal(envelope.Data, &entry))
	assert.Equal(t, models.CardPremium, entry.CardType)
}

func TestMemberCannotOrderForOthers(t *testing.T) {
	app := setupApp(t)
	member, token := createUser(t, models.RoleUser)
	other, _ := createUser(t, models.RoleUser)

	resp, _ := doJSON(t, app, "POST", "/card/order", token, fiber.Map{"quantity": 1, "user_id": other.ID})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	// Ordering for yourself explicitly is fine
	resp, _ = doJSON(t, app, "POST", "/card/order", token, fiber.Map{"quantity": 1, "user_id": member.ID})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestBulkOrderCreatesOneEntryPerMember(t *testing.T) {
	app := setupApp(t)
	_, adminTok := createUser(t, models.RoleAdmin)

	memberIDs := make([]uint, 0, 3)
	for i := 0; i < 3; i++ {
		member, _ := createUser(t, models.RoleUser)
		memberIDs = append(memberIDs, member.ID)
	}

	resp, envelope := doJSON(t, app, "POST", "/admin/card/bulk-order", adminTok, fiber.Map{
		"batch_name": "March Renewal",
		"user_ids":   memberIDs,
		"card_type":  "STANDARD",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var result struct {
		BatchID string                  `json:"batch_id"`
		Count   int                     `json:"count"`
		Entries []models.CardPrintQueue `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &result))
	assert.NotEmpty(t, result.BatchID)
	assert.Equal(t, 3, result.Count)
	require.Len(t, result.Entries, 3)
	for _, entry := range result.Entries {
		assert.Equal(t, result.BatchID, entry.BatchID)
		assert.Equal(t, "March Renewal", entry.BatchName)
		assert.Equal(t, 1, entry.Quantity)
	}

	// Batch summary counts all three as pending
	resp, envelope = doJSON(t, app, "GET", "/admin/card/batch/"+result.BatchID, adminTok, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var summary struct {
		Total    int            `json:"total"`
		ByStatus map[string]int `json:"by_status"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &summary))
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 3, summary.ByStatus[models.CardPending])
}

func TestBulkOrderValidation(t *testing.T) {
	app := setupApp(t)
	_, adminTok := createUser(t, models.RoleAdmin)

	resp, _ := doJSON(t, app, "POST", "/admin/card/bulk-order", adminTok, fiber.Map{
		"batch_name": "  ",
		"user_ids":   []uint{1},
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	resp, _ = doJSON(t, app, "POST", "/admin/card/bulk-order", adminTok, fiber.Map{
		"batch_name": "Empty Batch",
		"user_ids":   []uint{},
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestTerminalStatusCannotChange(t *testing.T) {
	app := setupApp(t)
	_, adminTok := createUser(t, models.RoleAdmin)
	_, memberTok := createUser(t, models.RoleUser)

	_, envelope := doJSON(t, app, "POST", "/card/order", memberTok, fiber.Map{"quantity": 1})
	var entry models.CardPrintQueue
	require.NoError(t, json.Unmarshal(envelope.Data, &entry))

	path := fmt.Sprintf("/admin/card/%d/status", entry.ID)

	resp, _ := doJSON(t, app, "PUT", path, adminTok, fiber.Map{"status": "CANCELLED"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Cancelled is final
	resp, _ = doJSON(t, app, "PUT", path, adminTok, fiber.Map{"status": "PROCESSING"})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	// Re-asserting the same terminal status is a no-op, not an error
	resp, _ = doJSON(t, app, "PUT", path, adminTok, fiber.Map{"status": "CANCELLED"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Unknown status never reaches the controller
	resp, _ = doJSON(t, app, "PUT", path, adminTok, fiber.Map{"status": "LOST"})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestMyCardOrdersOnlyShowsOwn(t *testing.T) {
	app := setupApp(t)
	_, memberTok := createUser(t, models.RoleUser)
	_, otherTok := createUser(t, models.RoleUser)

	resp, _ := doJSON(t, app, "POST", "/card/order", memberTok, fiber.Map{"quantity": 2})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp, _ = doJSON(t, app, "POST", "/card/order", otherTok, fiber.Map{"quantity": 5})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	_, envelope := doJSON(t, app, "GET", "/card/my-orders", memberTok, nil)
	var result struct {
		Orders []models.CardPrintQueue `json:"orders"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &result))
	require.Len(t, result.Orders, 1)
	assert.Equal(t, 2, result.Orders[0].Quantity)
}

func TestAdminListFiltersByStatus(t *testing.T) {
	app := setupApp(t)
	_, adminTok := createUser(t, models.RoleAdmin)
	_, memberTok := createUser(t, models.RoleUser)

	_, envelope := doJSON(t, app, "POST", "/card/order", memberTok, fiber.Map{"quantity": 1})
	var entry models.CardPrintQueue
	require.NoError(t, json.Unmarshal(envelope.Data, &entry))

	resp, _ := doJSON(t, app, "POST", "/card/order", memberTok, fiber.Map{"quantity": 1})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, _ = doJSON(t, app, "PUT", fmt.Sprintf("/admin/card/%d/status", entry.ID), adminTok, fiber.Map{"status": "PRINTED"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	_, envelope = doJSON(t, app, "GET", "/admin/card/list?status=PRINTED", adminTok, nil)
	var result struct {
		Orders []models.CardPrintQueue `json:"orders"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &result))
	require.Len(t, result.Orders, 1)
	assert.Equal(t, models.CardPrinted, result.Orders[0].Status)
}

func TestDeleteCardOrder(t *testing.T) {
	app := setupApp(t)
	_, adminTok := createUser(t, models.RoleAdmin)
	_, memberTok := createUser(t, models.RoleUser)

	_, envelope := doJSON(t, app, "POST", "/card/order", memberTok, fiber.Map{"quantity": 1})
	var entry models.CardPrintQueue
	require.NoError(t, json.Unmarshal(envelope.Data, &entry))

	path := fmt.Sprintf("/admin/card/%d", entry.ID)
	resp, _ := doJSON(t, app, "DELETE", path, adminTok, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, "DELETE", path, adminTok, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
