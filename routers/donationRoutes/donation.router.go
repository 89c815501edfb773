package donationRoutes

import (
	donationController "antuf/controllers/donation"
	"antuf/middleware"
	donationValidator "antuf/validators/donation"

	"github.com/gofiber/fiber/v2"
)

// SetupDonationRoutes sets up the donation page CMS routes
func SetupDonationRoutes(app *fiber.App) {
	app.Get("/donation-page", donationController.GetDonationPage)

	adminGroup := app.Group("/admin/donation-page")
	adminGroup.Put("/", middleware.JWTMiddleware, middleware.AdminOnly, donationValidator.UpdatePage(), donationController.UpdateDonationPage)
}
