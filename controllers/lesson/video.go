package lessonController

import (
	"kurs/config"
	"kurs/database"
	"kurs/middleware"
	"kurs/models"
	"kurs/utils"

	"github.com/gofiber/fiber/v2"
)

// UploadVideo attaches a video file to a lesson. Only the lesson's
// creator (or an admin) may add videos; the file is checked against
// the extension allow-list and size ceiling before it is stored.
func UploadVideo(c *fiber.Ctx) error {
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
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not allowed to add videos to this lesson!", nil)
	}

	title := c.FormValue("title")
	if title == "" {
		return middleware.ValidationErrorResponse(c, map[string]string{"title": "Title is required!"})
	}
	description := c.FormValue("description")

	file, err := c.FormFile("video")
	if err != nil {
		return middleware.ValidationErrorResponse(c, map[string]string{"video": "Video file is required!"})
	}

	if err := utils.ValidateVideoUpload(file); err != nil {
		return middleware.ValidationErrorResponse(c, map[string]string{"video": err.Error()})
	}

	filePath, err := utils.SaveUploadedFile(file, config.AppConfig.UploadDir)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store video file!", nil)
	}

	video := models.Video{
		LessonID:    &lesson.ID,
		UserID:      &userId,
		Title:       title,
		Description: description,
		FilePath:    filePath,
	}

	if err := db.Create(&video).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create video!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Video uploaded successfully!", fiber.Map{
		"video": video,
		"url":   utils.GetFileURL(video.FilePath),
	})
}

func GetVideo(c *fiber.Ctx) error {
	lessonId, err := c.ParamsInt("id")
	if err != nil || lessonId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson id!", nil)
	}

	videoId, err := c.ParamsInt("videoId")
	if err != nil || videoId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid video id!", nil)
	}

	var video models.Video
	if err := database.Database.Db.Where("id = ? AND lesson_id = ? AND is_deleted = ?", videoId, lessonId, false).First(&video).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Video not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video fetched successfully!", fiber.Map{
		"video": video,
		"url":   utils.GetFileURL(video.FilePath),
	})
}

func UpdateVideo(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	role, _ := c.Locals("role").(string)

	lessonId, err := c.ParamsInt("id")
	if err != nil || lessonId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson id!", nil)
	}

	videoId, err := c.ParamsInt("videoId")
	if err != nil || videoId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid video id!", nil)
	}

	reqData := new(struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var video models.Video
	if err := db.Where("id = ? AND lesson_id = ? AND is_deleted = ?", videoId, lessonId, false).First(&video).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Video not found!", nil)
	}

	if !middleware.CanModify(userId, role, video.UserID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not allowed to update this video!", nil)
	}

	if reqData.Title != "" {
		video.Title = reqData.Title
	}
	if reqData.Description != "" {
		video.Description = reqData.Description
	}

	if err := db.Save(&video).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update video!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video updated successfully!", video)
}

func DeleteVideo(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	role, _ := c.Locals("role").(string)

	lessonId, err := c.ParamsInt("id")
	if err != nil || lessonId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson id!", nil)
	}

	videoId, err := c.ParamsInt("videoId")
	if err != nil || videoId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid video id!", nil)
	}

	db := database.Database.Db

	var video models.Video
	if err := db.Where("id = ? AND lesson_id = ? AND is_deleted = ?", videoId, lessonId, false).First(&video).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Video not found!", nil)
	}

	if !middleware.CanModify(userId, role, video.UserID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not allowed to delete this video!", nil)
	}

	if err := db.Model(&video).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete video!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video deleted successfully!", nil)
}
