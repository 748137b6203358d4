package adminRoutes

import (
	adminControllers "kurs/controllers/admin"
	"kurs/middleware"
	adminValidators "kurs/validators/admin"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin")

	adminGroup.Post("/notify", middleware.JWTMiddleware, middleware.AdminOnly, adminValidators.NotifyAll(), adminControllers.NotifyAllUsers)
	adminGroup.Delete("/user/:id", middleware.JWTMiddleware, middleware.AdminOnly, adminControllers.DeleteUser)
}
