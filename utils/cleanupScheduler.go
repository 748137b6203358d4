package utils

import (
	"log"
	"time"

	"kurs/config"
	"kurs/database"
	"kurs/models"

	"github.com/robfig/cron/v3"
)

// logCleanup logs cleanup scheduler events with timestamp
func logCleanup(message string) {
	log.Printf("[CLEANUP-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// purgeUnverifiedAccounts removes accounts that never verified their
// email within the configured window, taking the dangling verification
// codes with them. Verified accounts are never touched.
func purgeUnverifiedAccounts() {
	db := database.Database.Db
	cutoff := time.Now().AddDate(0, 0, -config.AppConfig.PurgeAfterDays)

	var profiles []models.UserProfile
	if err := db.Where("is_verified = ? AND is_deleted = ? AND created_at < ?", false, false, cutoff).Find(&profiles).Error; err != nil {
		logCleanup("Error fetching unverified profiles: " + err.Error())
		return
	}

	for _, profile := range profiles {
		if err := db.Model(&models.User{}).Where("id = ? AND is_active = ?", profile.UserID, false).
			Update("is_deleted", true).Error; err != nil {
			logCleanup("Error purging user: " + err.Error())
			continue
		}
		db.Model(&models.UserProfile{}).Where("id = ?", profile.ID).Updates(map[string]interface{}{
			"is_deleted":        true,
			"verification_code": nil,
		})
	}

	if len(profiles) > 0 {
		logCleanup("Purged stale unverified accounts")
	}
}

// InitializeCleanupScheduler starts the unverified-account purge job.
func InitializeCleanupScheduler() *cron.Cron {
	logCleanup("Initializing cleanup scheduler...")

	c := cron.New()

	if _, err := c.AddFunc(config.AppConfig.PurgeCronSpec, purgeUnverifiedAccounts); err != nil {
		logCleanup("Failed to schedule purge job: " + err.Error())
		return c
	}

	c.Start()
	logCleanup("Cleanup scheduler started")
	return c
}
