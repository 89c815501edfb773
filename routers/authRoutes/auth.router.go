package authRoutes

import (
	authController "antuf/controllers/auth"
	"antuf/middleware"
	authValidator "antuf/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	auth.Post("/signup", authValidator.Signup(), authController.Signup)
	auth.Post("/login", authValidator.Login(), authController.Login)
	auth.Get("/profile", middleware.JWTMiddleware, middleware.LoadUser, authController.Profile)
}
