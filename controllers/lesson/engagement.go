package lessonController

import (
	"kurs/database"
	"kurs/middleware"
	"kurs/services"

	"github.com/gofiber/fiber/v2"
)

// ToggleLike flips the caller's like on a lesson.
func ToggleLike(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	lessonId, err := c.ParamsInt("id")
	if err != nil || lessonId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson id!", nil)
	}

	result, err := services.ToggleLike(database.Database.Db, uint(lessonId), userId)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	if result == services.ToggleRemoved {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Like removed successfully.", fiber.Map{"result": result})
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Like added successfully.", fiber.Map{"result": result})
}

// ToggleDislike flips the caller's dislike on a lesson.
func ToggleDislike(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	lessonId, err := c.ParamsInt("id")
	if err != nil || lessonId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson id!", nil)
	}

	result, err := services.ToggleDislike(database.Database.Db, uint(lessonId), userId)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	if result == services.ToggleRemoved {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Dislike removed successfully.", fiber.Map{"result": result})
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Dislike added successfully.", fiber.Map{"result": result})
}
