package services

import (
	"testing"

	"kurs/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an in-memory SQLite database with the same
// TranslateError setting production uses, so unique-index violations
// surface as gorm.ErrDuplicatedKey in tests too.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// The memory database lives on a single connection.
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

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()

	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
		Role:     "USER",
		IsActive: true,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createTestLesson(t *testing.T, db *gorm.DB, creatorID uint, title string) models.Lesson {
	t.Helper()

	lesson := models.Lesson{
		UserID: &creatorID,
		Title:  title,
	}
	require.NoError(t, db.Create(&lesson).Error)
	return lesson
}
