package chatController_test

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
	"antuf/models/chat"
	chatRoutes "antuf/routers/chatRoutes"

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
	chatRoutes.SetupChatRoutes(app)
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

func createRoom(t *testing.T, app *fiber.App, token string) chat.ChatRoom {
	t.Helper()

	resp, envelope := doJSON(t, app, "POST", "/chat/create", token, fiber.Map{
		"subject": "Membership question",
		"message": "When does my card arrive?",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var room chat.ChatRoom
	require.NoError(t, json.Unmarshal(envelope.Data, &room))
	return room
}

func TestCreateRoomStoresInitialMessage(t *testing.T) {
	app := setupApp(t)
	_, token := createUser(t, models.RoleUser)

	room := createRoom(t, app, token)
	assert.Equal(t, chat.RoomActive, room.Status)
	assert.Equal(t, chat.PriorityMedium, room.Priority)
	require.Len(t, room.Messages, 1)
	assert.Equal(t, chat.SenderUser, room.Messages[0].SenderRole)
	assert.Equal(t, "When does my card arrive?", room.Messages[0].Content)
}

func TestCreateRoomValidation(t *testing.T) {
	app := setupApp(t)
	_, token := createUser(t, models.RoleUser)

	resp, _ := doJSON(t, app, "POST", "/chat/create", token, fiber.Map{"subject": "", "message": "hi"})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	resp, _ = doJSON(t, app, "POST", "/chat/create", token, fiber.Map{
		"subject": "Help", "message": "hi", "priority": "EXTREME",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestMessagesAreOrderedSnapshots(t *testing.T) {
	app := setupApp(t)
	_, token := createUser(t, models.RoleUser)
	_, adminTok := createUser(t, models.RoleAdmin)

	room := createRoom(t, app, token)
	msgPath := fmt.Sprintf("/chat/%d/message", room.ID)

	resp, _ := doJSON(t, app, "POST", msgPath, token, fiber.Map{"content": "Anyone there?"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp, _ = doJSON(t, app, "POST", msgPath, adminTok, fiber.Map{"content": "It ships this week."})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	_, envelope := doJSON(t, app, "GET", fmt.Sprintf("/chat/%d/messages", room.ID), token, nil)
	var fetched chat.ChatRoom
	require.NoError(t, json.Unmarshal(envelope.Data, &fetched))
	require.Len(t, fetched.Messages, 3)
	assert.Equal(t, "When does my card arrive?", fetched.Messages[0].Content)
	assert.Equal(t, "Anyone there?", fetched.Messages[1].Content)
	assert.Equal(t, "It ships this week.", fetched.Messages[2].Content)
	assert.Equal(t, chat.SenderAdmin, fetched.Messages[2].SenderRole)
}

func TestClosedRoomRejectsMessages(t *testing.T) {
	app := setupApp(t)
	_, token := createUser(t, models.RoleUser)
	_, adminTok := createUser(t, models.RoleAdmin)

	room := createRoom(t, app, token)

	resp, _ := doJSON(t, app, "PUT", fmt.Sprintf("/admin/chat/%d", room.ID), adminTok, fiber.Map{"status": "CLOSED"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, "POST", fmt.Sprintf("/chat/%d/message", room.ID), token, fiber.Map{"content": "Hello?"})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestOtherMembersCannotJoinConversation(t *testing.T) {
	app := setupApp(t)
	_, ownerTok := createUser(t, models.RoleUser)
	_, strangerTok := createUser(t, models.RoleUser)

	room := createRoom(t, app, ownerTok)

	resp, _ := doJSON(t, app, "POST", fmt.Sprintf("/chat/%d/message", room.ID), strangerTok, fiber.Map{"content": "Me too!"})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, _ = doJSON(t, app, "GET", fmt.Sprintf("/chat/%d/messages", room.ID), strangerTok, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestAdminAssignRoom(t *testing.T) {
	app := setupApp(t)
	_, token := createUser(t, models.RoleUser)
	admin, adminTok := createUser(t, models.RoleAdmin)
	member, _ := createUser(t, models.RoleUser)

	room := createRoom(t, app, token)
	path := fmt.Sprintf("/admin/chat/%d/assign", room.ID)

	// Target must be an admin
	resp, _ := doJSON(t, app, "POST", path, adminTok, fiber.Map{"admin_id": member.ID})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, envelope := doJSON(t, app, "POST", path, adminTok, fiber.Map{"admin_id": admin.ID})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var assigned chat.ChatRoom
	require.NoError(t, json.Unmarshal(envelope.Data, &assigned))
	require.NotNil(t, assigned.AssignedAdminID)
	assert.Equal(t, admin.ID, *assigned.AssignedAdminID)
}

func TestAdminListRoomsFilters(t *testing.T) {
	app := setupApp(t)
	_, token := createUser(t, models.RoleUser)
	_, adminTok := createUser(t, models.RoleAdmin)

	first := createRoom(t, app, token)
	createRoom(t, app, token)

	resp, _ := doJSON(t, app, "PUT", fmt.Sprintf("/admin/chat/%d", first.ID), adminTok, fiber.Map{"status": "CLOSED"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	_, envelope := doJSON(t, app, "GET", "/admin/chat/list?status=ACTIVE", adminTok, nil)
	var rooms []chat.ChatRoom
	require.NoError(t, json.Unmarshal(envelope.Data, &rooms))
	require.Len(t, rooms, 1)
	assert.Equal(t, chat.RoomActive, rooms[0].Status)
}
