package lessonController

import (
	"kurs/database"
	"kurs/middleware"
	"kurs/models"

	"github.com/gofiber/fiber/v2"
)

func CreateComment(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	lessonId, err := c.ParamsInt("id")
	if err != nil || lessonId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson id!", nil)
	}

	reqData, ok := c.Locals("validatedComment").(*struct {
		Content string `json:"content"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var lesson models.Lesson
	if err := db.Where("id = ? AND is_deleted = ?", lessonId, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	comment := models.Comment{
		LessonID: lesson.ID,
		UserID:   userId,
		Content:  reqData.Content,
	}

	if err := db.Create(&comment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create comment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Comment created successfully!", comment)
}

func GetComments(c *fiber.Ctx) error {
	lessonId, err := c.ParamsInt("id")
	if err != nil || lessonId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson id!", nil)
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db

	var total int64
	db.Model(&models.Comment{}).Where("lesson_id = ? AND is_deleted = ?", lessonId, false).Count(&total)

	var comments []models.Comment
	if err := db.Where("lesson_id = ? AND is_deleted = ?", lessonId, false).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&comments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch comments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Comments fetched successfully!", fiber.Map{
		"comments": comments,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// UpdateComment is author-only; admins moderate via delete, not edit.
func UpdateComment(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	commentId, err := c.ParamsInt("commentId")
	if err != nil || commentId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid comment id!", nil)
	}

	reqData, ok := c.Locals("validatedComment").(*struct {
		Content string `json:"content"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var comment models.Comment
	if err := db.Where("id = ? AND is_deleted = ?", commentId, false).First(&comment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Comment not found!", nil)
	}

	if comment.UserID != userId {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not allowed to update this comment!", nil)
	}

	comment.Content = reqData.Content
	if err := db.Save(&comment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update comment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Comment updated successfully!", comment)
}

func DeleteComment(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	role, _ := c.Locals("role").(string)

	commentId, err := c.ParamsInt("commentId")
	if err != nil || commentId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid comment id!", nil)
	}

	db := database.Database.Db

	var comment models.Comment
	if err := db.Where("id = ? AND is_deleted = ?", commentId, false).First(&comment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Comment not found!", nil)
	}

	owner := comment.UserID
	if !middleware.CanModify(userId, role, &owner) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not allowed to delete this comment!", nil)
	}

	if err := db.Model(&comment).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete comment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Comment deleted successfully!", nil)
}
