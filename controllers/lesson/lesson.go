package lessonController

import (
	"kurs/database"
	"kurs/middleware"
	"kurs/models"
	"kurs/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetAllLessons(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Lesson{}).Where("is_deleted = ?", false)

	var total int64
	db.Count(&total)

	var lessons []models.Lesson
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&lessons).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lessons!", nil)
	}

	response := fiber.Map{
		"lessons": lessons,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons fetched successfully!", response)
}

func CreateLesson(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedLesson").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	lesson := models.Lesson{
		UserID:      &userId,
		Title:       reqData.Title,
		Description: reqData.Description,
	}

	if err := database.Database.Db.Create(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson created successfully!", lesson)
}

// GetLessonDetail returns the lesson with its videos and engagement
// counts, recording the caller's view along the way (one per user).
func GetLessonDetail(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	lessonId, err := c.ParamsInt("id")
	if err != nil || lessonId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson id!", nil)
	}

	db := database.Database.Db

	var lesson models.Lesson
	if err := db.Where("id = ? AND is_deleted = ?", lessonId, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	if err := services.RecordView(db, lesson.ID, userId); err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	counts, err := services.GetCounts(db, lesson.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch counts!", nil)
	}

	var videos []models.Video
	db.Where("lesson_id = ? AND is_deleted = ?", lesson.ID, false).Order("id asc").Find(&videos)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson fetched successfully!", fiber.Map{
		"lesson":   lesson,
		"videos":   videos,
		"likes":    counts.Likes,
		"dislikes": counts.Dislikes,
		"views":    counts.Views,
	})
}

func UpdateLesson(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	role, _ := c.Locals("role").(string)

	lessonId, err := c.ParamsInt("id")
	if err != nil || lessonId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson id!", nil)
	}

	reqData, ok := c.Locals("validatedLesson").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var lesson models.Lesson
	if err := db.Where("id = ? AND is_deleted = ?", lessonId, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	if !middleware.CanModify(userId, role, lesson.UserID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not allowed to update this lesson!", nil)
	}

	if reqData.Title != "" {
		lesson.Title = reqData.Title
	}
	if reqData.Description != "" {
		lesson.Description = reqData.Description
	}

	if err := db.Save(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson updated successfully!", lesson)
}

// DeleteLesson removes a lesson, cascades its comments and engagement
// records, and orphans its videos (lesson link set to NULL).
func DeleteLesson(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	role, _ := c.Locals("role").(string)

	lessonId, err := c.ParamsInt("id")
	if err != nil || lessonId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson id!", nil)
	}

	db := database.Database.Db

	var lesson models.Lesson
	if err := db.Where("id = ? AND is_deleted = ?", lessonId, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	if !middleware.CanModify(userId, role, lesson.UserID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not allowed to delete this lesson!", nil)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Lesson{}).Where("id = ?", lesson.ID).Update("is_deleted", true).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Video{}).Where("lesson_id = ?", lesson.ID).Update("lesson_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Comment{}).Where("lesson_id = ?", lesson.ID).Update("is_deleted", true).Error; err != nil {
			return err
		}
		if err := tx.Where("lesson_id = ?", lesson.ID).Delete(&models.LessonLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("lesson_id = ?", lesson.ID).Delete(&models.LessonDislike{}).Error; err != nil {
			return err
		}
		return tx.Where("lesson_id = ?", lesson.ID).Delete(&models.LessonView{}).Error
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson deleted successfully!", nil)
}
