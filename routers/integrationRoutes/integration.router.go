package integrationRoutes

import (
	integrationController "antuf/controllers/integration"
	"antuf/middleware"
	integrationValidator "antuf/validators/integration"

	"github.com/gofiber/fiber/v2"
)

// SetupIntegrationRoutes sets up the thin proxies to external services
func SetupIntegrationRoutes(app *fiber.App) {
	integrationGroup := app.Group("/integration")

	integrationGroup.Post("/compiler/run", middleware.JWTMiddleware, integrationValidator.RunCode(), integrationController.RunCode)
	integrationGroup.Post("/payment/checkout", middleware.JWTMiddleware, middleware.LoadUser, integrationValidator.Checkout(), integrationController.CreateCheckout)
	integrationGroup.Post("/media/upload", middleware.JWTMiddleware, integrationController.UploadImage)
	integrationGroup.Post("/stream/token", middleware.JWTMiddleware, middleware.LoadUser, integrationController.StreamToken)
}
