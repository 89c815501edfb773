package cardController

import (
	"antuf/database"
	"antuf/middleware"
	"antuf/models"
	"antuf/utils"
	cardValidator "antuf/validators/card"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CreateCardOrder creates one print queue entry. Members order for themselves;
// admins may pass a user_id to order on a member's behalf.
func CreateCardOrder(c *fiber.Ctx) error {
	user, ok := c.Locals("authUser").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCardOrder").(*cardValidator.CreateCardOrderRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	targetUserID := user.ID
	if reqData.UserID != nil && *reqData.UserID != user.ID {
		if user.Role != models.RoleAdmin {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Only admins can order cards for other members!", nil)
		}
		var target models.User
		if err := db.Where("id = ? AND is_deleted = ?", *reqData.UserID, false).First(&target).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Member not found!", nil)
		}
		targetUserID = *reqData.UserID
	}

	entry := models.CardPrintQueue{
		UserID:   targetUserID,
		Quantity: reqData.Quantity,
		CardType: reqData.CardType,
		Status:   models.CardPending,
	}

	if err := db.Create(&entry).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create card order!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Card order created successfully!", entry)
}

// CreateBulkCardOrder fans out one queue entry per listed member under a
// shared batch id
func CreateBulkCardOrder(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedBulkOrder").(*cardValidator.CreateBulkCardOrderRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db
	batchID := uuid.NewString()

	entries := make([]models.CardPrintQueue, 0, len(reqData.UserIDs))
	for _, userID := range reqData.UserIDs {
		entries = append(entries, models.CardPrintQueue{
			UserID:          userID,
			Quantity:        1,
			CardType:        reqData.CardType,
			Status:          models.CardPending,
			ProcessingNotes: reqData.Notes,
			BatchID:         batchID,
			BatchName:       reqData.BatchName,
		})
	}

	if err := db.Create(&entries).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create bulk card orders!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Bulk card orders created successfully!", fiber.Map{
		"batch_id":   batchID,
		"batch_name": reqData.BatchName,
		"count":      len(entries),
		"entries":    entries,
	})
}

// UpdateCardStatus moves a queue entry to a new status. Delivered and
// cancelled entries are final and cannot be moved again.
func UpdateCardStatus(c *fiber.Ctx) error {
	queueID := c.Locals("queueID").(int)

	reqData, ok := c.Locals("validatedStatusUpdate").(*cardValidator.UpdateCardStatusRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var entry models.CardPrintQueue
	if err := db.Where("id = ? AND is_deleted = ?", queueID, false).First(&entry).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Card order not found!", nil)
	}

	if models.IsTerminalCardStatus(entry.Status) && reqData.Status != entry.Status {
		return middleware.ValidationErrorResponse(c, map[string]string{
			"status": "Delivered or cancelled orders cannot change status!",
		})
	}

	entry.Status = reqData.Status
	if reqData.ProcessingNotes != "" {
		entry.ProcessingNotes = reqData.ProcessingNotes
	}
	if reqData.TrackingNumber != "" {
		entry.TrackingNumber = reqData.TrackingNumber
	}

	if err := db.Save(&entry).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update card order!", nil)
	}

	// Notify the member when their card ships
	if entry.Status == models.CardShipped {
		var member models.User
		if err := db.Where("id = ?", entry.UserID).First(&member).Error; err == nil {
			go func(email, name, tracking string) {
				if err := utils.SendCardShippedEmail(email, name, tracking); err != nil {
					log.Printf("Failed to send shipping email: %v", err)
				}
			}(member.Email, member.Name, entry.TrackingNumber)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Card order updated successfully!", entry)
}

// DeleteCardOrder removes a queue entry. Hard removal from the admin's view;
// there is no undo.
func DeleteCardOrder(c *fiber.Ctx) error {
	queueID := c.Locals("queueID").(int)

	db := database.Database.Db

	var entry models.CardPrintQueue
	if err := db.Where("id = ? AND is_deleted = ?", queueID, false).First(&entry).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Card order not found!", nil)
	}

	if err := db.Unscoped().Delete(&entry).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete card order!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Card order deleted successfully!", nil)
}

// MyCardOrders lists the authenticated member's own queue entries
func MyCardOrders(c *fiber.Ctx) error {
	user, ok := c.Locals("authUser").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	page, limit := listParams(c)
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.CardPrintQueue{}).
		Where("user_id = ? AND is_deleted = ?", user.ID, false)

	var total int64
	db.Count(&total)

	var entries []models.CardPrintQueue
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&entries).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch card orders!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Card orders fetched successfully!", fiber.Map{
		"orders":     entries,
		"pagination": middleware.Pagination(total, page, limit),
	})
}

// AdminListCardOrders lists all queue entries with status/type/batch filters
func AdminListCardOrders(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedList").(*cardValidator.ListCardOrdersRequest)
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

	db := database.Database.Db.Model(&models.CardPrintQueue{}).Where("is_deleted = ?", false)

	if reqData.Status != nil && *reqData.Status != "" {
		db = db.Where("status = ?", *reqData.Status)
	}
	if reqData.CardType != nil && *reqData.CardType != "" {
		db = db.Where("card_type = ?", *reqData.CardType)
	}
	if reqData.BatchID != nil && *reqData.BatchID != "" {
		db = db.Where("batch_id = ?", *reqData.BatchID)
	}

	var total int64
	db.Count(&total)

	var entries []models.CardPrintQueue
	if err := db.Preload("User").Offset(offset).Limit(limit).Order("created_at desc").Find(&entries).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch card orders!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Card orders fetched successfully!", fiber.Map{
		"orders":     entries,
		"pagination": middleware.Pagination(total, page, limit),
	})
}

// AdminBatchSummary reports entry counts per status for one batch
func AdminBatchSummary(c *fiber.Ctx) error {
	batchID := c.Params("batch_id")
	if batchID == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid batch id!", nil)
	}

	db := database.Database.Db

	var entries []models.CardPrintQueue
	if err := db.Where("batch_id = ? AND is_deleted = ?", batchID, false).Find(&entries).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch batch!", nil)
	}
	if len(entries) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Batch not found!", nil)
	}

	byStatus := make(map[string]int)
	for _, entry := range entries {
		byStatus[entry.Status]++
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Batch summary fetched successfully!", fiber.Map{
		"batch_id":   batchID,
		"batch_name": entries[0].BatchName,
		"total":      len(entries),
		"by_status":  byStatus,
	})
}

func listParams(c *fiber.Ctx) (page, limit int) {
	page = c.QueryInt("page", 1)
	limit = c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return page, limit
}
