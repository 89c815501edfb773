package cardRoutes

import (
	cardController "antuf/controllers/card"
	"antuf/middleware"
	cardValidator "antuf/validators/card"

	"github.com/gofiber/fiber/v2"
)

// SetupCardRoutes sets up the membership card print queue routes
func SetupCardRoutes(app *fiber.App) {
	cardGroup := app.Group("/card")
	cardGroup.Post("/order", middleware.JWTMiddleware, middleware.LoadUser, cardValidator.CreateOrder(), cardController.CreateCardOrder)
	cardGroup.Get("/my-orders", middleware.JWTMiddleware, middleware.LoadUser, cardController.MyCardOrders)

	adminGroup := app.Group("/admin/card")
	adminGroup.Post("/bulk-order", middleware.JWTMiddleware, middleware.AdminOnly, cardValidator.CreateBulkOrder(), cardController.CreateBulkCardOrder)
	adminGroup.Get("/list", middleware.JWTMiddleware, middleware.AdminOnly, cardValidator.ListOrders(), cardController.AdminListCardOrders)
	adminGroup.Get("/batch/:batch_id", middleware.JWTMiddleware, middleware.AdminOnly, cardController.AdminBatchSummary)
	adminGroup.Put("/:id/status", middleware.JWTMiddleware, middleware.AdminOnly, cardValidator.UpdateStatus(), cardController.UpdateCardStatus)
	adminGroup.Delete("/:id", middleware.JWTMiddleware, middleware.AdminOnly, cardValidator.QueueID(), cardController.DeleteCardOrder)
}
