package catalogRoutes

import (
	catalogController "antuf/controllers/catalog"
	"antuf/middleware"
	catalogValidator "antuf/validators/catalog"

	"github.com/gofiber/fiber/v2"
)

// SetupCatalogRoutes sets up the category/course/content admin CRUD routes
func SetupCatalogRoutes(app *fiber.App) {
	categoryGroup := app.Group("/admin/category")
	categoryGroup.Post("/create", middleware.JWTMiddleware, middleware.AdminOnly, catalogValidator.NamedEntity(), catalogController.AddCategory)
	categoryGroup.Get("/list", middleware.JWTMiddleware, middleware.AdminOnly, catalogValidator.Search(), catalogController.ListCategories)
	categoryGroup.Put("/:id", middleware.JWTMiddleware, middleware.AdminOnly, catalogValidator.UpdateNamedEntity(), catalogController.UpdateCategory)
	categoryGroup.Delete("/:id", middleware.JWTMiddleware, middleware.AdminOnly, catalogValidator.EntityID(), catalogController.DeleteCategory)

	courseGroup := app.Group("/admin/course")
	courseGroup.Post("/create", middleware.JWTMiddleware, middleware.AdminOnly, catalogValidator.NamedEntity(), catalogController.AddCourse)
	courseGroup.Get("/list", middleware.JWTMiddleware, middleware.AdminOnly, catalogValidator.Search(), catalogController.ListCourses)
	courseGroup.Put("/:id", middleware.JWTMiddleware, middleware.AdminOnly, catalogValidator.UpdateNamedEntity(), catalogController.UpdateCourse)
	courseGroup.Delete("/:id", middleware.JWTMiddleware, middleware.AdminOnly, catalogValidator.EntityID(), catalogController.DeleteCourse)

	contentGroup := app.Group("/admin/content")
	contentGroup.Post("/create", middleware.JWTMiddleware, middleware.AdminOnly, catalogValidator.NamedEntity(), catalogController.AddContent)
	contentGroup.Get("/list", middleware.JWTMiddleware, middleware.AdminOnly, catalogValidator.Search(), catalogController.ListContent)
	contentGroup.Put("/:id", middleware.JWTMiddleware, middleware.AdminOnly, catalogValidator.UpdateNamedEntity(), catalogController.UpdateContent)
	contentGroup.Delete("/:id", middleware.JWTMiddleware, middleware.AdminOnly, catalogValidator.EntityID(), catalogController.DeleteContent)
}
