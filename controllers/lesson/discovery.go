package lessonController

import (
	"kurs/database"
	"kurs/middleware"
	"kurs/services"

	"github.com/gofiber/fiber/v2"
)

func SearchLessons(c *fiber.Ctx) error {
	query, ok := c.Locals("validatedQuery").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	lessons, err := services.SearchLessons(database.Database.Db, query)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Search failed!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Search results fetched!", fiber.Map{
		"lessons": lessons,
	})
}

func MostLikedLessons(c *fiber.Ctx) error {
	lessons, err := services.MostLiked(database.Database.Db)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lessons!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Most liked lessons fetched!", fiber.Map{
		"lessons": lessons,
	})
}

func MostViewedLessons(c *fiber.Ctx) error {
	lessons, err := services.MostViewed(database.Database.Db)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lessons!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Most viewed lessons fetched!", fiber.Map{
		"lessons": lessons,
	})
}
