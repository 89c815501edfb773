package ngoRoutes

import (
	ngoController "antuf/controllers/ngo"
	"antuf/middleware"
	ngoValidator "antuf/validators/ngo"

	"github.com/gofiber/fiber/v2"
)

// SetupNgoRoutes sets up the events/representatives/affiliates routes
func SetupNgoRoutes(app *fiber.App) {
	// Public site
	app.Get("/events", ngoController.ListEvents)
	app.Get("/representatives", ngoController.ListRepresentatives)
	app.Get("/affiliates", ngoController.ListAffiliates)

	eventGroup := app.Group("/admin/event")
	eventGroup.Post("/create", middleware.JWTMiddleware, middleware.AdminOnly, ngoValidator.Event(), ngoController.CreateEvent)
	eventGroup.Put("/:id", middleware.JWTMiddleware, middleware.AdminOnly, ngoValidator.EntityID(), ngoValidator.Event(), ngoController.UpdateEvent)
	eventGroup.Delete("/:id", middleware.JWTMiddleware, middleware.AdminOnly, ngoValidator.EntityID(), ngoController.DeleteEvent)

	repGroup := app.Group("/admin/representative")
	repGroup.Post("/create", middleware.JWTMiddleware, middleware.AdminOnly, ngoValidator.Representative(), ngoController.CreateRepresentative)
	repGroup.Put("/:id", middleware.JWTMiddleware, middleware.AdminOnly, ngoValidator.EntityID(), ngoValidator.Representative(), ngoController.UpdateRepresentative)
	repGroup.Delete("/:id", middleware.JWTMiddleware, middleware.AdminOnly, ngoValidator.EntityID(), ngoController.DeleteRepresentative)

	affiliateGroup := app.Group("/admin/affiliate")
	affiliateGroup.Post("/create", middleware.JWTMiddleware, middleware.AdminOnly, ngoValidator.Affiliate(), ngoController.CreateAffiliate)
	affiliateGroup.Delete("/:id", middleware.JWTMiddleware, middleware.AdminOnly, ngoValidator.EntityID(), ngoController.DeleteAffiliate)
}
