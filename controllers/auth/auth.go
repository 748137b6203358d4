package authController

import (
	"kurs/config"
	"kurs/database"
	"kurs/middleware"
	"kurs/services"
	"kurs/utils"

	"github.com/gofiber/fiber/v2"
)

func Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegister").(*struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	user, code, err := services.Register(db, reqData.Username, reqData.Email, reqData.Password, config.AppConfig.SaltRound)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	// Fire-and-forget; a transport failure never blocks registration.
	utils.SendVerificationEmail(user.Email, user.Username, code)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Verification code sent to email.", fiber.Map{
		"username": user.Username,
		"email":    user.Email,
	})
}

func VerifyEmail(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedVerify").(*struct {
		Username string `json:"username"`
		Code     string `json:"code"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if err := services.VerifyEmail(db, reqData.Username, reqData.Code); err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Email verified successfully.", nil)
}

func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*struct {
		Username string `json:"username"`
		Password string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	user, err := services.Authenticate(db, reqData.Username, reqData.Password)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Username, user.Role, user.Email)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token", nil)
	}

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"user":  user,
		"token": token,
	})
}

// Logout is stateless: the client discards its token.
func Logout(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged out.", nil)
}
