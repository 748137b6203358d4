package authRoutes

import (
	authControllers "kurs/controllers/auth"
	"kurs/middleware"
	authValidators "kurs/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/register", authValidators.Register(), authControllers.Register)
	authGroup.Patch("/verify", authValidators.VerifyEmail(), authControllers.VerifyEmail)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Post("/logout", middleware.JWTMiddleware, authControllers.Logout)
}
