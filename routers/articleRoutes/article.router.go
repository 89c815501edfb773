package articleRoutes

import (
	articleController "antuf/controllers/article"
	"antuf/middleware"
	articleValidator "antuf/validators/article"

	"github.com/gofiber/fiber/v2"
)

// SetupArticleRoutes sets up the admin article management and public article routes
func SetupArticleRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/article")

	// Article CRUD
	adminGroup.Post("/create", middleware.JWTMiddleware, middleware.AdminOnly, articleValidator.CreateArticle(), articleController.AdminCreateArticle)
	adminGroup.Get("/list", middleware.JWTMiddleware, middleware.AdminOnly, articleValidator.ListArticles(), articleController.AdminListArticles)
	adminGroup.Get("/:id", middleware.JWTMiddleware, middleware.AdminOnly, articleValidator.ArticleID(), articleController.AdminArticleDetails)
	adminGroup.Put("/:id", middleware.JWTMiddleware, middleware.AdminOnly, articleValidator.UpdateArticle(), articleController.AdminUpdateArticle)
	adminGroup.Delete("/:id", middleware.JWTMiddleware, middleware.AdminOnly, articleValidator.ArticleID(), articleController.AdminDeleteArticle)

	// Lifecycle
	adminGroup.Post("/:id/publish", middleware.JWTMiddleware, middleware.AdminOnly, articleValidator.ArticleID(), articleController.PublishArticle)
	adminGroup.Post("/:id/unpublish", middleware.JWTMiddleware, middleware.AdminOnly, articleValidator.ArticleID(), articleController.UnpublishArticle)
	adminGroup.Post("/:id/archive", middleware.JWTMiddleware, middleware.AdminOnly, articleValidator.ArticleID(), articleController.ArchiveArticle)
	adminGroup.Post("/:id/schedule", middleware.JWTMiddleware, middleware.AdminOnly, articleValidator.ScheduleArticle(), articleController.ScheduleArticle)

	// Section management
	adminGroup.Post("/:id/section", middleware.JWTMiddleware, middleware.AdminOnly, articleValidator.CreateSection(), articleController.AdminCreateSection)
	adminGroup.Put("/:id/section/:section_id", middleware.JWTMiddleware, middleware.AdminOnly, articleValidator.UpdateSection(), articleController.AdminUpdateSection)
	adminGroup.Delete("/:id/section/:section_id", middleware.JWTMiddleware, middleware.AdminOnly, articleValidator.SectionID(), articleController.AdminDeleteSection)

	// Public site
	publicGroup := app.Group("/articles")
	publicGroup.Get("/", articleValidator.ListArticles(), articleController.PublicListArticles)
	publicGroup.Get("/slug/:slug", articleController.PublicArticleBySlug)
	publicGroup.Post("/:id/view", articleValidator.ArticleID(), articleController.IncrementViewCount)
}
