package adminController

import (
	"antuf/database"
	"antuf/middleware"
	"antuf/models"
	"antuf/models/article"
	"antuf/models/chat"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

// DashboardStats returns the headline numbers for the admin landing page
func DashboardStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalMembers int64
	db.Model(&models.User{}).Where("is_deleted = ?", false).Count(&totalMembers)

	var totalArticles int64
	db.Model(&article.Article{}).Where("is_deleted = ?", false).Count(&totalArticles)

	var publishedArticles int64
	db.Model(&article.Article{}).Where("is_deleted = ? AND status = ?", false, article.StatusPublished).Count(&publishedArticles)

	monthStart := now.BeginningOfMonth()
	var publishedThisMonth int64
	db.Model(&article.Article{}).
		Where("is_deleted = ? AND status = ? AND published_at >= ?", false, article.StatusPublished, monthStart).
		Count(&publishedThisMonth)

	var openChats int64
	db.Model(&chat.ChatRoom{}).Where("is_deleted = ? AND status = ?", false, chat.RoomActive).Count(&openChats)

	cardCounts := make(map[string]int64)
	for _, status := range []string{
		models.CardPending, models.CardProcessing, models.CardPrinted,
		models.CardShipped, models.CardDelivered, models.CardCancelled,
	} {
		var count int64
		db.Model(&models.CardPrintQueue{}).Where("is_deleted = ? AND status = ?", false, status).Count(&count)
		cardCounts[status] = count
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", fiber.Map{
		"members":              totalMembers,
		"articles":             totalArticles,
		"published_articles":   publishedArticles,
		"published_this_month": publishedThisMonth,
		"open_chats":           openChats,
		"card_queue":           cardCounts,
	})
}
