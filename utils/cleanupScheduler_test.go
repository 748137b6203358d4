package utils

import (
	"testing"
	"time"

	"kurs/config"
	"kurs/database"
	"kurs/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupCleanupTest(t *testing.T) *gorm.DB {
	t.Helper()

	config.AppConfig = &config.Config{PurgeAfterDays: 30}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.UserProfile{}))
	database.Database = database.DbInstance{Db: db}
	return db
}

func createAccount(t *testing.T, db *gorm.DB, username string, verified bool, age time.Duration) (models.User, models.UserProfile) {
	t.Helper()

	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
		IsActive: verified,
	}
	require.NoError(t, db.Create(&user).Error)

	code := "ABC123"
	profile := models.UserProfile{
		UserID:           user.ID,
		Email:            user.Email,
		IsVerified:       verified,
		VerificationCode: &code,
	}
	if verified {
		profile.VerificationCode = nil
	}
	profile.CreatedAt = time.Now().Add(-age)
	require.NoError(t, db.Create(&profile).Error)
	return user, profile
}

func TestPurgeRemovesStaleUnverifiedAccounts(t *testing.T) {
	db := setupCleanupTest(t)

	staleUser, staleProfile := createAccount(t, db, "stale", false, 40*24*time.Hour)
	freshUser, _ := createAccount(t, db, "fresh", false, 2*24*time.Hour)
	verifiedUser, _ := createAccount(t, db, "done", true, 40*24*time.Hour)

	purgeUnverifiedAccounts()

	var user models.User
	require.NoError(t, db.First(&user, staleUser.ID).Error)
	assert.True(t, user.IsDeleted)
	var profile models.UserProfile
	require.NoError(t, db.First(&profile, staleProfile.ID).Error)
	assert.True(t, profile.IsDeleted)
	assert.Nil(t, profile.VerificationCode)

	// Recent and verified accounts are untouched
	user = models.User{}
	require.NoError(t, db.First(&user, freshUser.ID).Error)
	assert.False(t, user.IsDeleted)
	user = models.User{}
	require.NoError(t, db.First(&user, verifiedUser.ID).Error)
	assert.False(t, user.IsDeleted)
}

func TestPurgeSkipsAlreadyPurgedProfiles(t *testing.T) {
	db := setupCleanupTest(t)

	staleUser, staleProfile := createAccount(t, db, "stale", false, 40*24*time.Hour)
	require.NoError(t, db.Model(&models.UserProfile{}).Where("id = ?", staleProfile.ID).
		Update("is_deleted", true).Error)

	purgeUnverifiedAccounts()

	// The profile was already handled, so the user is left alone
	var user models.User
	require.NoError(t, db.First(&user, staleUser.ID).Error)
	assert.False(t, user.IsDeleted)
}
