package userRoutes

import (
	adminController "antuf/controllers/admin"
	"antuf/controllers/userControllers"
	"antuf/middleware"
	userValidator "antuf/validators/user"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes sets up member profile and admin member management routes
func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user")
	userGroup.Put("/profile", middleware.JWTMiddleware, middleware.LoadUser, userValidator.UpdateProfile(), userControllers.UpdateProfile)

	adminGroup := app.Group("/admin/members")
	adminGroup.Get("/", middleware.JWTMiddleware, middleware.AdminOnly, userControllers.AdminListMembers)
	adminGroup.Put("/:id/role", middleware.JWTMiddleware, middleware.AdminOnly, userValidator.UpdateRole(), userControllers.AdminUpdateMemberRole)

	dashGroup := app.Group("/admin/dashboard")
	dashGroup.Get("/stats", middleware.JWTMiddleware, middleware.AdminOnly, adminController.DashboardStats)
}
