package chatController

import (
	"antuf/database"
	"antuf/middleware"
	"antuf/models"
	"antuf/models/chat"
	"antuf/utils"
	chatValidator "antuf/validators/chat"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateRoom opens a support conversation with an initial message
func CreateRoom(c *fiber.Ctx) error {
	user, ok := c.Locals("authUser").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedRoom").(*chatValidator.CreateRoomRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	room := chat.ChatRoom{
		UserID:   user.ID,
		Subject:  reqData.Subject,
		Status:   chat.RoomActive,
		Priority: reqData.Priority,
	}

	if err := db.Create(&room).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create chat room!", nil)
	}

	message := chat.ChatMessage{
		ChatRoomID: room.ID,
		SenderID:   user.ID,
		SenderRole: chat.SenderUser,
		SenderName: user.Name,
		Content:    reqData.Message,
		SentAt:     time.Now(),
	}
	if err := db.Create(&message).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save message!", nil)
	}

	room.Messages = []chat.ChatMessage{message}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Chat room created successfully!", room)
}

// SendMessage appends to the room's message list. Closed and archived rooms
// take no more messages.
func SendMessage(c *fiber.Ctx) error {
	user, ok := c.Locals("authUser").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	roomID := c.Locals("roomID").(int)

	reqData, ok := c.Locals("validatedMessage").(*chatValidator.SendMessageRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var room chat.ChatRoom
	if err := db.Where("id = ? AND is_deleted = ?", roomID, false).First(&room).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chat room not found!", nil)
	}

	senderRole := chat.SenderUser
	if user.Role == models.RoleAdmin {
		senderRole = chat.SenderAdmin
	} else if room.UserID != user.ID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "This is not your conversation!", nil)
	}

	if room.Status != chat.RoomActive {
		return middleware.ValidationErrorResponse(c, map[string]string{
			"status": "Messages can only be sent in active conversations!",
		})
	}

	message := chat.ChatMessage{
		ChatRoomID: room.ID,
		SenderID:   user.ID,
		SenderRole: senderRole,
		SenderName: user.Name,
		Content:    reqData.Content,
		SentAt:     time.Now(),
	}

	if err := db.Create(&message).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save message!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Message sent successfully!", message)
}

// RoomMessages returns the full message list, a snapshot for polling clients
func RoomMessages(c *fiber.Ctx) error {
	user, ok := c.Locals("authUser").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	roomID := c.Locals("roomID").(int)

	db := database.Database.Db

	var room chat.ChatRoom
	err := db.Where("id = ? AND is_deleted = ?", roomID, false).
		Preload("Messages", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("sent_at asc, id asc")
		}).
		First(&room).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chat room not found!", nil)
	}

	if user.Role != models.RoleAdmin && room.UserID != user.ID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "This is not your conversation!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Messages fetched successfully!", room)
}

// MyRooms lists the authenticated user's conversations
func MyRooms(c *fiber.Ctx) error {
	user, ok := c.Locals("authUser").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var rooms []chat.ChatRoom
	if err := db.Where("user_id = ? AND is_deleted = ?", user.ID, false).Order("updated_at desc").Find(&rooms).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch chat rooms!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chat rooms fetched successfully!", rooms)
}

// AdminListRooms returns the full room list snapshot the admin panel polls
func AdminListRooms(c *fiber.Ctx) error {
	db := database.Database.Db.Model(&chat.ChatRoom{}).Where("is_deleted = ?", false)

	if status := c.Query("status"); status != "" {
		db = db.Where("status = ?", status)
	}
	if priority := c.Query("priority"); priority != "" {
		db = db.Where("priority = ?", priority)
	}

	var rooms []chat.ChatRoom
	if err := db.Order("updated_at desc").Find(&rooms).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch chat rooms!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chat rooms fetched successfully!", rooms)
}

// AdminUpdateRoom changes room status or priority. Last write wins.
func AdminUpdateRoom(c *fiber.Ctx) error {
	roomID := c.Locals("roomID").(int)

	reqData, ok := c.Locals("validatedRoomUpdate").(*chatValidator.UpdateRoomRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var room chat.ChatRoom
	if err := db.Where("id = ? AND is_deleted = ?", roomID, false).First(&room).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chat room not found!", nil)
	}

	if reqData.Status != nil {
		room.Status = *reqData.Status
	}
	if reqData.Priority != nil {
		room.Priority = *reqData.Priority
	}

	if err := db.Save(&room).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update chat room!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chat room updated successfully!", room)
}

// AdminAssignRoom hands a conversation to a specific admin
func AdminAssignRoom(c *fiber.Ctx) error {
	roomID := c.Locals("roomID").(int)

	reqData, ok := c.Locals("validatedAssign").(*chatValidator.AssignRoomRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var admin models.User
	if err := db.Where("id = ? AND role = ? AND is_deleted = ?", reqData.AdminID, models.RoleAdmin, false).First(&admin).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Admin not found!", nil)
	}

	var room chat.ChatRoom
	if err := db.Where("id = ? AND is_deleted = ?", roomID, false).First(&room).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chat room not found!", nil)
	}

	room.AssignedAdminID = &admin.ID
	if err := db.Save(&room).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to assign chat room!", nil)
	}

	// Let the assigned admin know a conversation is waiting
	go func(email, adminName, subject string) {
		if err := utils.SendChatAssignedEmail(email, adminName, subject); err != nil {
			log.Printf("Failed to send assignment email: %v", err)
		}
	}(admin.Email, admin.Name, room.Subject)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chat room assigned successfully!", room)
}
