package articleController

import (
	"antuf/database"
	"antuf/middleware"
	"antuf/models/article"
	articleValidator "antuf/validators/article"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// PublicListArticles lists published articles for the site
func PublicListArticles(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedList").(*articleValidator.ListArticlesRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	page := 1
	limit := 10
	if reqData.Page != nil && *reqData.Page > 0 {
		page = *reqData.Page
	}
	if reqData.Limit != nil && *reqData.Limit > 0 {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&article.Article{}).
		Where("is_deleted = ? AND status = ?", false, article.StatusPublished)

	if reqData.Category != nil {
		db = db.Where("category_id = ?", *reqData.Category)
	}
	if reqData.Search != nil && *reqData.Search != "" {
		term := "%" + strings.ToLower(strings.TrimSpace(*reqData.Search)) + "%"
		db = db.Where("LOWER(title) LIKE ?", term)
	}

	var total int64
	db.Count(&total)

	var articles []article.Article
	if err := db.Offset(offset).Limit(limit).Order("is_pinned desc, published_at desc").Find(&articles).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch articles!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Articles fetched successfully!", fiber.Map{
		"articles":   articles,
		"pagination": middleware.Pagination(total, page, limit),
	})
}

// PublicArticleBySlug returns one published article with its content tree
func PublicArticleBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid slug!", nil)
	}

	db := database.Database.Db

	var art article.Article
	err := db.Where("slug = ? AND is_deleted = ? AND status = ?", slug, false, article.StatusPublished).
		Preload("Sections", func(tx *gorm.DB) *gorm.DB {
			return tx.Where("is_deleted = ? AND is_published = ?", false, true).Order("order_index asc")
		}).
		Preload("Sections.Lectures", func(tx *gorm.DB) *gorm.DB {
			return tx.Where("is_deleted = ? AND is_published = ?", false, true).Order("order_index asc")
		}).
		First(&art).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Article not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Article fetched successfully!", art)
}

// IncrementViewCount bumps the view counter atomically. Unknown ids are a 404,
// not an error the reader cares about.
func IncrementViewCount(c *fiber.Ctx) error {
	articleID := c.Locals("articleID").(int)

	db := database.Database.Db

	result := db.Model(&article.Article{}).
		Where("id = ? AND is_deleted = ?", articleID, false).
		Update("view_count", gorm.Expr("view_count + ?", 1))
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update view count!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Article not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "View recorded.", nil)
}
