package services

import (
	"fmt"
	"strings"

	"kurs/models"

	"gorm.io/gorm"
)

// CollectRecipients validates a broadcast and returns every registered
// user's email address. Validation happens before any send; dispatch
// itself is the caller's concern (fire-and-forget, no partial-failure
// tracking).
func CollectRecipients(db *gorm.DB, subject, message string) ([]string, error) {
	if strings.TrimSpace(subject) == "" || strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("%w: subject and message are required", ErrValidation)
	}

	var emails []string
	if err := db.Model(&models.User{}).
		Where("is_deleted = ?", false).
		Pluck("email", &emails).Error; err != nil {
		return nil, err
	}

	return emails, nil
}
