package utils

import (
	"antuf/database"
	"antuf/models"
	"antuf/models/article"
	"log"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// promoteScheduledArticles handles SCHEDULED -> PUBLISHED when the scheduled
// time is reached. PublishedAt is only set on the first publish.
func promoteScheduledArticles() {
	db := database.Database.Db
	now := time.Now()

	var due []article.Article
	if err := db.Where("status = ? AND is_deleted = ? AND scheduled_for <= ?", article.StatusScheduled, false, now).
		Find(&due).Error; err != nil {
		logScheduler("Error fetching scheduled articles: " + err.Error())
		return
	}

	for i := range due {
		if err := due[i].Publish(now); err != nil {
			continue
		}
		if err := db.Save(&due[i]).Error; err != nil {
			logScheduler("Error publishing article " + due[i].Slug + ": " + err.Error())
			continue
		}
		logScheduler("Published scheduled article: " + due[i].Slug)
	}
}

// reportStalePendingOrders logs card orders that sat in PENDING for over a week
// so the fulfillment team notices them
func reportStalePendingOrders() {
	db := database.Database.Db
	cutoff := time.Now().AddDate(0, 0, -7)

	var count int64
	if err := db.Model(&models.CardPrintQueue{}).
		Where("status = ? AND is_deleted = ? AND created_at < ?", models.CardPending, false, cutoff).
		Count(&count).Error; err != nil {
		logScheduler("Error counting stale card orders: " + err.Error())
		return
	}

	if count > 0 {
		logScheduler("Stale card orders pending over 7 days: " + strconv.FormatInt(count, 10))
	}
}

// StartSchedulers wires the cron jobs and starts them in the background
func StartSchedulers() *cron.Cron {
	scheduler := cron.New()

	// Every minute: promote due scheduled articles
	if _, err := scheduler.AddFunc("* * * * *", promoteScheduledArticles); err != nil {
		log.Fatalf("Failed to register article scheduler: %v", err)
	}

	// Daily at 08:00: report stale pending card orders
	if _, err := scheduler.AddFunc("0 8 * * *", reportStalePendingOrders); err != nil {
		log.Fatalf("Failed to register card queue report: %v", err)
	}

	scheduler.Start()
	logScheduler("Schedulers started")
	return scheduler
}
