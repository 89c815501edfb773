package ngoController

import (
	"antuf/database"
	"antuf/middleware"
	"antuf/models"
	ngoValidator "antuf/validators/ngo"

	"github.com/gofiber/fiber/v2"
)

// CreateEvent adds an NGO event
func CreateEvent(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedEvent").(*ngoValidator.EventRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	event := models.Event{
		Title:       reqData.Title,
		Description: reqData.Description,
		Location:    reqData.Location,
		ImageURL:    reqData.ImageURL,
		StartsAt:    reqData.StartsAt,
		EndsAt:      reqData.EndsAt,
	}

	if err := database.Database.Db.Create(&event).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create event!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Event created successfully!", event)
}

// UpdateEvent overwrites an event
func UpdateEvent(c *fiber.Ctx) error {
	entityID := c.Locals("entityID").(int)
	reqData, ok := c.Locals("validatedEvent").(*ngoValidator.EventRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var event models.Event
	if err := db.Where("id = ? AND is_deleted = ?", entityID, false).First(&event).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Event not found!", nil)
	}

	event.Title = reqData.Title
	event.Description = reqData.Description
	event.Location = reqData.Location
	event.ImageURL = reqData.ImageURL
	event.StartsAt = reqData.StartsAt
	event.EndsAt = reqData.EndsAt

	if err := db.Save(&event).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update event!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Event updated successfully!", event)
}

// DeleteEvent removes an event
func DeleteEvent(c *fiber.Ctx) error {
	entityID := c.Locals("entityID").(int)

	db := database.Database.Db

	var event models.Event
	if err := db.Where("id = ? AND is_deleted = ?", entityID, false).First(&event).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Event not found!", nil)
	}

	event.IsDeleted = true
	if err := db.Save(&event).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete event!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Event deleted successfully!", nil)
}

// ListEvents is the public event list, newest first
func ListEvents(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Event{}).Where("is_deleted = ?", false)

	var total int64
	db.Count(&total)

	var events []models.Event
	if err := db.Offset(offset).Limit(limit).Order("starts_at desc").Find(&events).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch events!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Events fetched successfully!", fiber.Map{
		"events":     events,
		"pagination": middleware.Pagination(total, page, limit),
	})
}

// CreateRepresentative adds a regional contact
func CreateRepresentative(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRepresentative").(*ngoValidator.RepresentativeRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	rep := models.Representative{
		Name:     reqData.Name,
		Region:   reqData.Region,
		Email:    reqData.Email,
		Mobile:   reqData.Mobile,
		PhotoURL: reqData.PhotoURL,
	}

	if err := database.Database.Db.Create(&rep).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create representative!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Representative created successfully!", rep)
}

// UpdateRepresentative overwrites a regional contact
func UpdateRepresentative(c *fiber.Ctx) error {
	entityID := c.Locals("entityID").(int)
	reqData, ok := c.Locals("validatedRepresentative").(*ngoValidator.RepresentativeRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var rep models.Representative
	if err := db.Where("id = ? AND is_deleted = ?", entityID, false).First(&rep).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Representative not found!", nil)
	}

	rep.Name = reqData.Name
	rep.Region = reqData.Region
	rep.Email = reqData.Email
	rep.Mobile = reqData.Mobile
	rep.PhotoURL = reqData.PhotoURL

	if err := db.Save(&rep).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update representative!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Representative updated successfully!", rep)
}

// DeleteRepresentative removes a regional contact
func DeleteRepresentative(c *fiber.Ctx) error {
	entityID := c.Locals("entityID").(int)

	db := database.Database.Db

	var rep models.Representative
	if err := db.Where("id = ? AND is_deleted = ?", entityID, false).First(&rep).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Representative not found!", nil)
	}

	rep.IsDeleted = true
	if err := db.Save(&rep).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete representative!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Representative deleted successfully!", nil)
}

// ListRepresentatives is the public contact list grouped by region client-side
func ListRepresentatives(c *fiber.Ctx) error {
	db := database.Database.Db.Model(&models.Representative{}).Where("is_deleted = ?", false)

	if region := c.Query("region"); region != "" {
		db = db.Where("region = ?", region)
	}

	var reps []models.Representative
	if err := db.Order("region asc, name asc").Find(&reps).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch representatives!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Representatives fetched successfully!", reps)
}

// CreateAffiliate adds a partner organization
func CreateAffiliate(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAffiliate").(*ngoValidator.AffiliateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	affiliate := models.Affiliate{
		Name:       reqData.Name,
		WebsiteURL: reqData.WebsiteURL,
		LogoURL:    reqData.LogoURL,
	}

	if err := database.Database.Db.Create(&affiliate).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create affiliate!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Affiliate created successfully!", affiliate)
}

// DeleteAffiliate removes a partner organization
func DeleteAffiliate(c *fiber.Ctx) error {
	entityID := c.Locals("entityID").(int)

	db := database.Database.Db

	var affiliate models.Affiliate
	if err := db.Where("id = ? AND is_deleted = ?", entityID, false).First(&affiliate).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Affiliate not found!", nil)
	}

	affiliate.IsDeleted = true
	if err := db.Save(&affiliate).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete affiliate!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Affiliate deleted successfully!", nil)
}

// ListAffiliates is the public partner list
func ListAffiliates(c *fiber.Ctx) error {
	var affiliates []models.Affiliate
	if err := database.Database.Db.Where("is_deleted = ?", false).Order("name asc").Find(&affiliates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch affiliates!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Affiliates fetched successfully!", affiliates)
}
