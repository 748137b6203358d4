package authController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"kurs/config"
	"kurs/database"
	"kurs/models"
	authRoutes "kurs/routers/authRoutes"
	lessonRoutes "kurs/routers/lessonRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		Port:      "0",
		JWTKey:    "test-secret",
		SaltRound: bcrypt.MinCost,
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.Lesson{},
		&models.Video{},
		&models.LessonLike{},
		&models.LessonDislike{},
		&models.LessonView{},
		&models.Comment{},
	))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	lessonRoutes.SetupLessonRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]interface{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &parsed))
	}
	return resp.StatusCode, parsed
}

func TestRegisterVerifyLoginFlow(t *testing.T) {
	app := setupTestApp(t)
	db := database.Database.Db

	// Register
	status, _ := doJSON(t, app, http.MethodPost, "/auth/register", "", fiber.Map{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "secret-password",
	})
	require.Equal(t, http.StatusCreated, status)

	// Duplicate registration is rejected
	status, _ = doJSON(t, app, http.MethodPost, "/auth/register", "", fiber.Map{
		"username": "alice",
		"email":    "alice2@example.com",
		"password": "secret-password",
	})
	assert.Equal(t, http.StatusBadRequest, status)

	// Login before verification fails
	status, _ = doJSON(t, app, http.MethodPost, "/auth/login", "", fiber.Map{
		"username": "alice",
		"password": "secret-password",
	})
	assert.Equal(t, http.StatusUnauthorized, status)

	// Dig the code out of storage, as the email would have carried it
	var user models.User
	require.NoError(t, db.Where("username = ?", "alice").First(&user).Error)
	var profile models.UserProfile
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&profile).Error)
	require.NotNil(t, profile.VerificationCode)
	code := *profile.VerificationCode

	// Wrong code fails with the generic message
	status, body := doJSON(t, app, http.MethodPatch, "/auth/verify", "", fiber.Map{
		"username": "alice",
		"code":     "WRONG1",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body["message"], "invalid verification code or username")

	// Right code verifies
	status, _ = doJSON(t, app, http.MethodPatch, "/auth/verify", "", fiber.Map{
		"username": "alice",
		"code":     code,
	})
	require.Equal(t, http.StatusOK, status)

	// Login now succeeds and returns a token
	status, body = doJSON(t, app, http.MethodPost, "/auth/login", "", fiber.Map{
		"username": "alice",
		"password": "secret-password",
	})
	require.Equal(t, http.StatusOK, status)
	data := body["data"].(map[string]interface{})
	token := data["token"].(string)
	require.NotEmpty(t, token)

	// Create a lesson with the token
	status, body = doJSON(t, app, http.MethodPost, "/lesson/", token, fiber.Map{
		"title":       "Intro to Physics",
		"description": "Forces and motion",
	})
	require.Equal(t, http.StatusCreated, status)
	lessonID := uint(body["data"].(map[string]interface{})["ID"].(float64))

	// Viewing the lesson records exactly one view per user
	detailPath := fmt.Sprintf("/lesson/%d", lessonID)
	for i := 0; i < 3; i++ {
		status, body = doJSON(t, app, http.MethodGet, detailPath, token, nil)
		require.Equal(t, http.StatusOK, status)
	}
	assert.EqualValues(t, 1, body["data"].(map[string]interface{})["views"])

	// Like toggles on, then off
	likePath := fmt.Sprintf("/lesson/%d/like", lessonID)
	status, _ = doJSON(t, app, http.MethodPost, likePath, token, nil)
	assert.Equal(t, http.StatusCreated, status)
	status, _ = doJSON(t, app, http.MethodPost, likePath, token, nil)
	assert.Equal(t, http.StatusOK, status)

	// Requests without a token are rejected
	status, _ = doJSON(t, app, http.MethodGet, detailPath, "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

// registerAndLogin walks a fresh user through register, verify and
// login, returning the session token.
func registerAndLogin(t *testing.T, app *fiber.App, db *gorm.DB, username string) string {
	t.Helper()

	status, _ := doJSON(t, app, http.MethodPost, "/auth/register", "", fiber.Map{
		"username": username,
		"email":    username + "@example.com",
		"password": "secret-password",
	})
	require.Equal(t, http.StatusCreated, status)

	var user models.User
	require.NoError(t, db.Where("username = ?", username).First(&user).Error)
	var profile models.UserProfile
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&profile).Error)

	status, _ = doJSON(t, app, http.MethodPatch, "/auth/verify", "", fiber.Map{
		"username": username,
		"code":     *profile.VerificationCode,
	})
	require.Equal(t, http.StatusOK, status)

	status, body := doJSON(t, app, http.MethodPost, "/auth/login", "", fiber.Map{
		"username": username,
		"password": "secret-password",
	})
	require.Equal(t, http.StatusOK, status)
	return body["data"].(map[string]interface{})["token"].(string)
}

func TestLessonOwnershipEnforcement(t *testing.T) {
	app := setupTestApp(t)
	db := database.Database.Db

	aliceToken := registerAndLogin(t, app, db, "alice")
	bobToken := registerAndLogin(t, app, db, "bob")

	status, body := doJSON(t, app, http.MethodPost, "/lesson/", aliceToken, fiber.Map{
		"title": "Alice's Lesson",
	})
	require.Equal(t, http.StatusCreated, status)
	lessonID := uint(body["data"].(map[string]interface{})["ID"].(float64))

	// Bob may not touch Alice's lesson
	path := fmt.Sprintf("/lesson/%d", lessonID)
	status, _ = doJSON(t, app, http.MethodPut, path, bobToken, fiber.Map{"title": "Hijacked"})
	assert.Equal(t, http.StatusForbidden, status)
	status, _ = doJSON(t, app, http.MethodDelete, path, bobToken, nil)
	assert.Equal(t, http.StatusForbidden, status)

	// The denied mutation changed nothing
	var lesson models.Lesson
	require.NoError(t, db.First(&lesson, lessonID).Error)
	assert.Equal(t, "Alice's Lesson", lesson.Title)
	assert.False(t, lesson.IsDeleted)

	// Alice deletes her own lesson
	status, _ = doJSON(t, app, http.MethodDelete, path, aliceToken, nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestVideoRoutesScopedToLesson(t *testing.T) {
	app := setupTestApp(t)
	db := database.Database.Db

	token := registerAndLogin(t, app, db, "carol")

	status, body := doJSON(t, app, http.MethodPost, "/lesson/", token, fiber.Map{"title": "Physics"})
	require.Equal(t, http.StatusCreated, status)
	physicsID := uint(body["data"].(map[string]interface{})["ID"].(float64))

	status, body = doJSON(t, app, http.MethodPost, "/lesson/", token, fiber.Map{"title": "Biology"})
	require.Equal(t, http.StatusCreated, status)
	biologyID := uint(body["data"].(map[string]interface{})["ID"].(float64))

	var carol models.User
	require.NoError(t, db.Where("username = ?", "carol").First(&carol).Error)
	video := models.Video{
		LessonID: &physicsID,
		UserID:   &carol.ID,
		Title:    "Kinematics",
		FilePath: "uploads/kinematics.mp4",
	}
	require.NoError(t, db.Create(&video).Error)

	// The video resolves only under the lesson it belongs to
	status, _ = doJSON(t, app, http.MethodGet, fmt.Sprintf("/lesson/%d/video/%d", physicsID, video.ID), token, nil)
	assert.Equal(t, http.StatusOK, status)

	wrongPath := fmt.Sprintf("/lesson/%d/video/%d", biologyID, video.ID)
	status, _ = doJSON(t, app, http.MethodGet, wrongPath, token, nil)
	assert.Equal(t, http.StatusNotFound, status)
	status, _ = doJSON(t, app, http.MethodPut, wrongPath, token, fiber.Map{"title": "Moved"})
	assert.Equal(t, http.StatusNotFound, status)
	status, _ = doJSON(t, app, http.MethodDelete, wrongPath, token, nil)
	assert.Equal(t, http.StatusNotFound, status)

	var unchanged models.Video
	require.NoError(t, db.First(&unchanged, video.ID).Error)
	assert.Equal(t, "Kinematics", unchanged.Title)
	assert.False(t, unchanged.IsDeleted)
}
