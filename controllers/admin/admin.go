package adminController

import (
	"kurs/database"
	"kurs/middleware"
	"kurs/models"
	"kurs/services"
	"kurs/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// NotifyAllUsers broadcasts an email to every registered user.
// Validation happens before any send; delivery is fire-and-forget.
func NotifyAllUsers(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedNotify").(*struct {
		Subject string `json:"subject"`
		Message string `json:"message"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	emails, err := services.CollectRecipients(database.Database.Db, reqData.Subject, reqData.Message)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	utils.BroadcastEmail(emails, reqData.Subject, reqData.Message)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notification sent to all users.", fiber.Map{
		"recipients": len(emails),
	})
}

// DeleteUser removes an account. Lessons and videos the user created
// survive with their creator link nulled; comments and engagement
// records go with the account.
func DeleteUser(c *fiber.Ctx) error {
	targetId, err := c.ParamsInt("id")
	if err != nil || targetId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", targetId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&user).Update("is_deleted", true).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.UserProfile{}).Where("user_id = ?", user.ID).Update("is_deleted", true).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Lesson{}).Where("user_id = ?", user.ID).Update("user_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Video{}).Where("user_id = ?", user.ID).Update("user_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Comment{}).Where("user_id = ?", user.ID).Update("is_deleted", true).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.LessonLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.LessonDislike{}).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", user.ID).Delete(&models.LessonView{}).Error
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User deleted successfully!", nil)
}
