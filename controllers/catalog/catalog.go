package catalogController

import (
	"antuf/database"
	"antuf/middleware"
	"antuf/models"
	catalogValidator "antuf/validators/catalog"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func searchParams(c *fiber.Ctx) (page, limit int, term string) {
	page = 1
	limit = 10
	if reqData, ok := c.Locals("validatedSearch").(*catalogValidator.SearchRequest); ok {
		if reqData.Page != nil && *reqData.Page > 0 {
			page = *reqData.Page
		}
		if reqData.Limit != nil && *reqData.Limit > 0 {
			limit = *reqData.Limit
		}
		if reqData.Search != nil {
			term = strings.TrimSpace(*reqData.Search)
		}
	}
	return page, limit, term
}

// AddCategory creates a category; names are unique across the list
func AddCategory(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedNamedEntity").(*catalogValidator.NamedEntityRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db
	name := strings.TrimSpace(reqData.Name)

	var existing models.Category
	if err := db.Where("LOWER(name) = ? AND is_deleted = ?", strings.ToLower(name), false).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Category already exists!", nil)
	}

	category := models.Category{Name: name}
	if err := db.Create(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Category created successfully!", category)
}

// ListCategories returns categories matching the search term; an empty term
// returns the full list in insertion order
func ListCategories(c *fiber.Ctx) error {
	page, limit, term := searchParams(c)
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Category{}).Where("is_deleted = ?", false)
	if term != "" {
		db = db.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(term)+"%")
	}

	var total int64
	db.Count(&total)

	var categories []models.Category
	if err := db.Offset(offset).Limit(limit).Order("created_at asc").Find(&categories).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch categories!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched successfully!", fiber.Map{
		"categories": categories,
		"pagination": middleware.Pagination(total, page, limit),
	})
}

// UpdateCategory overwrites a category name
func UpdateCategory(c *fiber.Ctx) error {
	entityID := c.Locals("entityID").(int)
	reqData := c.Locals("validatedNamedEntity").(*catalogValidator.NamedEntityRequest)

	db := database.Database.Db

	var category models.Category
	if err := db.Where("id = ? AND is_deleted = ?", entityID, false).First(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
	}

	category.Name = strings.TrimSpace(reqData.Name)
	if err := db.Save(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category updated successfully!", category)
}

// DeleteCategory removes a category. No referential check is made against
// articles or courses that still point at it; callers own that policy.
func DeleteCategory(c *fiber.Ctx) error {
	entityID := c.Locals("entityID").(int)

	db := database.Database.Db

	var category models.Category
	if err := db.Where("id = ? AND is_deleted = ?", entityID, false).First(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
	}

	category.IsDeleted = true
	if err := db.Save(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category deleted successfully!", nil)
}

// AddCourse creates a catalog course entry
func AddCourse(c *fiber.Ctx) error {
	reqData := c.Locals("validatedNamedEntity").(*catalogValidator.NamedEntityRequest)

	course := models.Course{Title: strings.TrimSpace(reqData.Name)}
	if err := database.Database.Db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// ListCourses returns courses matching the search term
func ListCourses(c *fiber.Ctx) error {
	page, limit, term := searchParams(c)
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Course{}).Where("is_deleted = ?", false)
	if term != "" {
		db = db.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(term)+"%")
	}

	var total int64
	db.Count(&total)

	var courses []models.Course
	if err := db.Offset(offset).Limit(limit).Order("created_at asc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses":    courses,
		"pagination": middleware.Pagination(total, page, limit),
	})
}

// UpdateCourse overwrites a course title
func UpdateCourse(c *fiber.Ctx) error {
	entityID := c.Locals("entityID").(int)
	reqData := c.Locals("validatedNamedEntity").(*catalogValidator.NamedEntityRequest)

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", entityID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	course.Title = strings.TrimSpace(reqData.Name)
	if err := db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// DeleteCourse removes a course from the catalog
func DeleteCourse(c *fiber.Ctx) error {
	entityID := c.Locals("entityID").(int)

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", entityID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	course.IsDeleted = true
	if err := db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// AddContent creates a catalog content entry
func AddContent(c *fiber.Ctx) error {
	reqData := c.Locals("validatedNamedEntity").(*catalogValidator.NamedEntityRequest)

	content := models.Content{Title: strings.TrimSpace(reqData.Name)}
	if err := database.Database.Db.Create(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Content created successfully!", content)
}

// ListContent returns content entries matching the search term
func ListContent(c *fiber.Ctx) error {
	page, limit, term := searchParams(c)
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Content{}).Where("is_deleted = ?", false)
	if term != "" {
		db = db.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(term)+"%")
	}

	var total int64
	db.Count(&total)

	var contents []models.Content
	if err := db.Offset(offset).Limit(limit).Order("created_at asc").Find(&contents).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content fetched successfully!", fiber.Map{
		"contents":   contents,
		"pagination": middleware.Pagination(total, page, limit),
	})
}

// UpdateContent overwrites a content title
func UpdateContent(c *fiber.Ctx) error {
	entityID := c.Locals("entityID").(int)
	reqData := c.Locals("validatedNamedEntity").(*catalogValidator.NamedEntityRequest)

	db := database.Database.Db

	var content models.Content
	if err := db.Where("id = ? AND is_deleted = ?", entityID, false).First(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found!", nil)
	}

	content.Title = strings.TrimSpace(reqData.Name)
	if err := db.Save(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content updated successfully!", content)
}

// DeleteContent removes a content entry
func DeleteContent(c *fiber.Ctx) error {
	entityID := c.Locals("entityID").(int)

	db := database.Database.Db

	var content models.Content
	if err := db.Where("id = ? AND is_deleted = ?", entityID, false).First(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found!", nil)
	}

	content.IsDeleted = true
	if err := db.Save(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content deleted successfully!", nil)
}
