package userRoutes

import (
	userControllers "kurs/controllers/user"
	"kurs/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user")

	userGroup.Get("/profile", middleware.JWTMiddleware, userControllers.GetProfile)
	userGroup.Put("/profile", middleware.JWTMiddleware, userControllers.UpdateProfile)
	userGroup.Delete("/profile", middleware.JWTMiddleware, userControllers.DeleteProfile)
}
