package articleController

import (
	"antuf/database"
	"antuf/middleware"
	"antuf/models/article"
	articleValidator "antuf/validators/article"
	"time"

	"github.com/gofiber/fiber/v2"
)

// AdminCreateSection appends a section (with its lectures) to an article
func AdminCreateSection(c *fiber.Ctx) error {
	articleID := c.Locals("articleID").(int)

	reqData, ok := c.Locals("validatedSection").(*articleValidator.SectionPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var art article.Article
	if err := db.Where("id = ? AND is_deleted = ?", articleID, false).First(&art).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Article not found!", nil)
	}

	section := article.Section{
		ArticleID:    art.ID,
		Title:        reqData.Title,
		Slug:         reqData.Slug,
		Description:  reqData.Description,
		FeatureImage: reqData.FeatureImage,
		OrderIndex:   reqData.OrderIndex,
		IsPublished:  reqData.IsPublished,
	}

	if err := db.Create(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create section!", nil)
	}

	for _, lectureData := range reqData.Lectures {
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

	refreshReadTime(db, art.ID)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Section created successfully!", section)
}

// AdminUpdateSection replaces a section's fields and its lecture list.
// Lectures only exist as part of their section, so the payload is the
// complete new list.
func AdminUpdateSection(c *fiber.Ctx) error {
	articleID := c.Locals("articleID").(int)
	sectionID := c.Locals("sectionID").(int)

	reqData, ok := c.Locals("validatedSection").(*articleValidator.SectionPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var section article.Section
	if err := db.Where("id = ? AND article_id = ? AND is_deleted = ?", sectionID, articleID, false).First(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	section.Title = reqData.Title
	section.Slug = reqData.Slug
	section.Description = reqData.Description
	section.FeatureImage = reqData.FeatureImage
	section.OrderIndex = reqData.OrderIndex
	section.IsPublished = reqData.IsPublished

	if err := db.Save(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update section!", nil)
	}

	// Replace the lecture list wholesale
	db.Model(&article.Lecture{}).Where("section_id = ?", section.ID).Update("is_deleted", true)

	for _, lectureData := range reqData.Lectures {
		lecture := article.Lecture{
			SectionID:      section.ID,
			ArticleID:      section.ArticleID,
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
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update lectures!", nil)
		}
	}

	refreshReadTime(db, section.ArticleID)

	updated, err := loadArticleTree(db, articleID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load updated article!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section updated successfully!", updated)
}

// AdminDeleteSection removes a section and its lectures
func AdminDeleteSection(c *fiber.Ctx) error {
	articleID := c.Locals("articleID").(int)
	sectionID := c.Locals("sectionID").(int)

	db := database.Database.Db

	var section article.Section
	if err := db.Where("id = ? AND article_id = ? AND is_deleted = ?", sectionID, articleID, false).First(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	section.IsDeleted = true
	if err := db.Save(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete section!", nil)
	}

	db.Model(&article.Lecture{}).Where("section_id = ?", section.ID).Update("is_deleted", true)

	refreshReadTime(db, section.ArticleID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section deleted successfully!", nil)
}
