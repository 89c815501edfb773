package chatRoutes

import (
	chatController "antuf/controllers/chat"
	"antuf/middleware"
	chatValidator "antuf/validators/chat"

	"github.com/gofiber/fiber/v2"
)

// SetupChatRoutes sets up the support chat routes
func SetupChatRoutes(app *fiber.App) {
	chatGroup := app.Group("/chat")
	chatGroup.Post("/create", middleware.JWTMiddleware, middleware.LoadUser, chatValidator.CreateRoom(), chatController.CreateRoom)
	chatGroup.Get("/my-rooms", middleware.JWTMiddleware, middleware.LoadUser, chatController.MyRooms)
	chatGroup.Get("/:id/messages", middleware.JWTMiddleware, middleware.LoadUser, chatValidator.RoomID(), chatController.RoomMessages)
	chatGroup.Post("/:id/message", middleware.JWTMiddleware, middleware.LoadUser, chatValidator.SendMessage(), chatController.SendMessage)

	adminGroup := app.Group("/admin/chat")
	adminGroup.Get("/list", middleware.JWTMiddleware, middleware.AdminOnly, chatController.AdminListRooms)
	adminGroup.Put("/:id", middleware.JWTMiddleware, middleware.AdminOnly, chatValidator.UpdateRoom(), chatController.AdminUpdateRoom)
	adminGroup.Post("/:id/assign", middleware.JWTMiddleware, middleware.AdminOnly, chatValidator.AssignRoom(), chatController.AdminAssignRoom)
}
