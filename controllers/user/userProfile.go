package userController

import (
	"time"

	"kurs/database"
	"kurs/middleware"
	"kurs/models"

	"github.com/gofiber/fiber/v2"
)

func GetProfile(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var profile models.UserProfile
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userId, false).First(&profile).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Profile not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", profile)
}

// UpdateProfile mutates only the caller's own profile.
func UpdateProfile(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := new(struct {
		FirstName   string     `json:"first_name"`
		LastName    string     `json:"last_name"`
		Address     string     `json:"address"`
		PhoneNumber string     `json:"phone_number"`
		DateOfBirth *time.Time `json:"date_of_birth"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var profile models.UserProfile
	if err := db.Where("user_id = ? AND is_deleted = ?", userId, false).First(&profile).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Profile not found!", nil)
	}

	if reqData.FirstName != "" {
		profile.FirstName = reqData.FirstName
	}
	if reqData.LastName != "" {
		profile.LastName = reqData.LastName
	}
	if reqData.Address != "" {
		profile.Address = reqData.Address
	}
	if reqData.PhoneNumber != "" {
		profile.PhoneNumber = reqData.PhoneNumber
	}
	if reqData.DateOfBirth != nil {
		profile.DateOfBirth = reqData.DateOfBirth
	}

	if err := db.Save(&profile).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully!", profile)
}

func DeleteProfile(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var profile models.UserProfile
	if err := db.Where("user_id = ? AND is_deleted = ?", userId, false).First(&profile).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Profile not found!", nil)
	}

	if err := db.Model(&profile).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile deleted successfully!", nil)
}
