package adminValidator

import (
	"strings"

	"kurs/middleware"

	"github.com/gofiber/fiber/v2"
)

// NotifyAll validator middleware
func NotifyAll() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Subject string `json:"subject"`
			Message string `json:"message"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Subject) == "" {
			errors["subject"] = "Subject is required!"
		}
		if strings.TrimSpace(reqData.Message) == "" {
			errors["message"] = "Message is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedNotify", reqData)
		return c.Next()
	}
}
