package articleController

import (
	"antuf/database"
	"antuf/middleware"
	"antuf/models/article"
	articleValidator "antuf/validators/article"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// jsonList marshals a string slice into a JSON column value
func jsonList(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return datatypes.JSON([]byte("[]"))
	}
	return datatypes.JSON(raw)
}

// loadArticleTree fetches an article with its ordered sections and lectures
func loadArticleTree(db *gorm.DB, articleID int) (*article.Article, error) {
	var art article.Article
	err := db.Where("id = ? AND is_deleted = ?", articleID, false).
		Preload("Sections", func(tx *gorm.DB) *gorm.DB {
			return tx.Where("is_deleted = ?", false).Order("order_index asc")
		}).
		Preload("Sections.Lectures", func(tx *gorm.DB) *gorm.DB {
			return tx.Where("is_deleted = ?", false).Order("order_index asc")
		}).
		First(&art).Error
	if err != nil {
		return nil, err
	}
	return &art, nil
}

// refreshReadTime recomputes the derived read time from the stored lecture
// content and persists it. Runs after every write to the article tree.
func refreshReadTime(db *gorm.DB, articleID uint) {
	art, err := loadArticleTree(db, int(articleID))
	if err != nil {
		log.Printf("Failed to reload article %d for read time: %v", articleID, err)
		return
	}
	art.RecalcReadTime()
	db.Model(&article.Article{}).Where("id = ?", articleID).Update("read_time", art.ReadTime)
}

// AdminCreateArticle creates an article together with its nested sections and lectures
func AdminCreateArticle(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedArticle").(*articleValidator.CreateArticleRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	// Slug must be unique across all articles
	var existing article.Article
	if err := db.Where("slug = ?", reqData.Slug).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "An article with this slug already exists!", nil)
	}

	art := article.Article{
		Title:          strings.TrimSpace(reqData.Title),
		Slug:           strings.TrimSpace(reqData.Slug),
		Subtitle:       reqData.Subtitle,
		Excerpt:        reqData.Excerpt,
		Body:           reqData.Body,
		FeatureImage:   reqData.FeatureImage,
		Tags:           jsonList(reqData.Tags),
		CategoryID:     reqData.CategoryID,
		AuthorID:       userId,
		Status:         article.StatusDraft,
		SeoTitle:       reqData.SeoTitle,
		SeoDescription: reqData.SeoDescription,
		SeoKeywords:    jsonList(reqData.SeoKeywords),
		IsFeatured:     reqData.IsFeatured,
		IsPinned:       reqData.IsPinned,
	}

	if err := db.Create(&art).Error; err != nil {
		log.Printf("Error creating article: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create article!", nil)
	}

	for _, sectionData := range reqData.Sections {
		section := article.Section{
			ArticleID:    art.ID,
			Title:        sectionData.Title,
			Slug:         sectionData.Slug,
			Description:  sectionData.Description,
			FeatureImage: sectionData.FeatureImage,
			OrderIndex:   sectionData.OrderIndex,
			IsPublished:  sectionData.IsPublished,
		}
		if err := db.Create(&section).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create article section!", nil)
		}

		for _, lectureData := range sectionData.Lectures {
			lecture := article.Lecture{
				SectionID:      section.ID,
				ArticleID:      art.ID,
				Title:          lectureData.Title,
				Slug:           lectureData.Slug,
				Content:        lectureData.Content,
				Excerpt:        lectureData.Excerpt,
				VideoURL:       lectureData.VideoURL,
				VideoThumbnail: lectureData.VideoThumbnail,
				Duration:       lectureData.Duration,
				OrderIndex:     lectureData.OrderIndex,
				IsPublished:    lectureData.IsPublished,
				Timestamp:      time.Now(),
			}
			if err := db.Create(&lecture).Error; err != nil {
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lecture!", nil)
			}
		}
	}

	refreshReadTime(db, art.ID)

	created, err := loadArticleTree(db, int(art.ID))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load created article!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Article created successfully!", created)
}

// AdminUpdateArticle updates top-level article fields
func AdminUpdateArticle(c *fiber.Ctx) error {
	articleID := c.Locals("articleID").(int)

	reqData, ok := c.Locals("validatedArticleUpdate").(*articleValidator.UpdateArticleRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var art article.Article
	if err := db.Where("id = ? AND is_deleted = ?", articleID, false).First(&art).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Article not found!", nil)
	}

	// Update only provided fields
	if reqData.Title != "" {
		art.Title = strings.TrimSpace(reqData.Title)
	}
	if reqData.Subtitle != "" {
		art.Subtitle = reqData.Subtitle
	}
	if reqData.Excerpt != "" {
		art.Excerpt = reqData.Excerpt
	}
	if reqData.Body != "" {
		art.Body = reqData.Body
	}
	if reqData.FeatureImage != "" {
		art.FeatureImage = reqData.FeatureImage
	}
	if reqData.Tags != nil {
		art.Tags = jsonList(reqData.Tags)
	}
	if reqData.CategoryID != nil {
		art.CategoryID = reqData.CategoryID
	}
	if reqData.SeoTitle != "" {
		art.SeoTitle = reqData.SeoTitle
	}
	if reqData.SeoDescription != "" {
		art.SeoDescription = reqData.SeoDescription
	}
	if reqData.SeoKeywords != nil {
		art.SeoKeywords = jsonList(reqData.SeoKeywords)
	}
	if reqData.IsFeatured != nil {
		art.IsFeatured = *reqData.IsFeatured
	}
	if reqData.IsPinned != nil {
		art.IsPinned = *reqData.IsPinned
	}

	if err := db.Save(&art).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update article!", nil)
	}

	refreshReadTime(db, art.ID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Article updated successfully!", art)
}

// AdminDeleteArticle soft deletes an article; sections and lectures go with it
func AdminDeleteArticle(c *fiber.Ctx) error {
	articleID := c.Locals("articleID").(int)

	db := database.Database.Db

	var art article.Article
	if err := db.Where("id = ? AND is_deleted = ?", articleID, false).First(&art).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Article not found!", nil)
	}

	art.IsDeleted = true
	if err := db.Save(&art).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete article!", nil)
	}

	db.Model(&article.Section{}).Where("article_id = ?", art.ID).Update("is_deleted", true)
	db.Model(&article.Lecture{}).Where("article_id = ?", art.ID).Update("is_deleted", true)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Article deleted successfully!", nil)
}

// AdminListArticles lists articles with status/category/search filters
func AdminListArticles(c *fiber.Ctx) error {
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

	db := database.Database.Db.Model(&article.Article{}).Where("is_deleted = ?", false)

	if reqData.Status != nil && *reqData.Status != "" {
		db = db.Where("status = ?", strings.ToUpper(*reqData.Status))
	}
	if reqData.Category != nil {
		db = db.Where("category_id = ?", *reqData.Category)
	}
	if reqData.Search != nil && *reqData.Search != "" {
		term := "%" + strings.ToLower(strings.TrimSpace(*reqData.Search)) + "%"
		db = db.Where("LOWER(title) LIKE ? OR LOWER(slug) LIKE ?", term, term)
	}

	var total int64
	db.Count(&total)

	var articles []article.Article
	if err := db.Offset(offset).Limit(limit).Order("is_pinned desc, created_at desc").Find(&articles).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch articles!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Articles fetched successfully!", fiber.Map{
		"articles":   articles,
		"pagination": middleware.Pagination(total, page, limit),
	})
}

// AdminArticleDetails returns one article with its full section/lecture tree
func AdminArticleDetails(c *fiber.Ctx) error {
	articleID := c.Locals("articleID").(int)

	art, err := loadArticleTree(database.Database.Db, articleID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Article not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Article details fetched successfully!", art)
}

// PublishArticle publishes an article. Publishing twice is a no-op: the first
// publish pins PublishedAt and later calls never move it.
func PublishArticle(c *fiber.Ctx) error {
	articleID := c.Locals("articleID").(int)

	db := database.Database.Db

	var art article.Article
	if err := db.Where("id = ? AND is_deleted = ?", articleID, false).First(&art).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Article not found!", nil)
	}

	if err := art.Publish(time.Now()); err != nil {
		return middleware.ValidationErrorResponse(c, map[string]string{"status": "Archived articles cannot be published!"})
	}

	if err := db.Save(&art).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to publish article!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Article published successfully!", art)
}

// UnpublishArticle moves an article back to draft, keeping its publish history
func UnpublishArticle(c *fiber.Ctx) error {
	articleID := c.Locals("articleID").(int)

	db := database.Database.Db

	var art article.Article
	if err := db.Where("id = ? AND is_deleted = ?", articleID, false).First(&art).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Article not found!", nil)
	}

	if err := art.Unpublish(); err != nil {
		return middleware.ValidationErrorResponse(c, map[string]string{"status": "Archived articles cannot be unpublished!"})
	}

	if err := db.Save(&art).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to unpublish article!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Article unpublished successfully!", art)
}

// ArchiveArticle archives an article; there is no way back from here
func ArchiveArticle(c *fiber.Ctx) error {
	articleID := c.Locals("articleID").(int)

	db := database.Database.Db

	var art article.Article
	if err := db.Where("id = ? AND is_deleted = ?", articleID, false).First(&art).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Article not found!", nil)
	}

	art.Archive()

	if err := db.Save(&art).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to archive article!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Article archived successfully!", art)
}

// ScheduleArticle holds an article until the scheduler promotes it
func ScheduleArticle(c *fiber.Ctx) error {
	articleID := c.Locals("articleID").(int)

	reqData, ok := c.Locals("validatedSchedule").(*articleValidator.ScheduleArticleRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var art article.Article
	if err := db.Where("id = ? AND is_deleted = ?", articleID, false).First(&art).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Article not found!", nil)
	}

	if err := art.Schedule(reqData.ScheduledFor, time.Now()); err != nil {
		switch err {
		case article.ErrArchived:
			return middleware.ValidationErrorResponse(c, map[string]string{"status": "Archived articles cannot be scheduled!"})
		default:
			return middleware.ValidationErrorResponse(c, map[string]string{"scheduled_for": "Scheduled time must be in the future!"})
		}
	}

	if err := db.Save(&art).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to schedule article!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Article scheduled successfully!", art)
}
