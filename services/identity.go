package services

import (
	"errors"
	"fmt"

	"kurs/models"
	"kurs/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Register creates an inactive user with a profile holding a fresh
// verification code. The returned code is for the caller to dispatch
// by email. Duplicate username or email is a validation failure backed
// by the storage-level unique constraints.
func Register(db *gorm.DB, username, email, password string, bcryptCost int) (*models.User, string, error) {
	// Early exit on obvious duplicates; the unique index is the real guard.
	if err := db.Where("username = ? OR email = ?", username, email).First(&models.User{}).Error; err == nil {
		return nil, "", fmt.Errorf("%w: username or email already taken", ErrValidation)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, "", err
	}

	code := utils.GenerateVerificationCode()

	user := models.User{
		Username: username,
		Email:    email,
		Password: string(hashedPassword),
		Role:     "USER",
		IsActive: false,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		profile := models.UserProfile{
			UserID:           user.ID,
			Email:            email,
			VerificationCode: &code,
		}
		return tx.Create(&profile).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", fmt.Errorf("%w: username or email already taken", ErrValidation)
		}
		return nil, "", err
	}

	return &user, code, nil
}

// VerifyEmail consumes a verification code. Every failure mode (unknown
// username, wrong code, already verified) collapses into one generic
// error so the endpoint leaks nothing about which field was wrong.
func VerifyEmail(db *gorm.DB, username, code string) error {
	var user models.User
	if err := db.Where("username = ? AND is_deleted = ?", username, false).First(&user).Error; err != nil {
		return fmt.Errorf("%w: invalid verification code or username", ErrValidation)
	}

	var profile models.UserProfile
	if err := db.Where("user_id = ? AND verification_code = ? AND is_verified = ?", user.ID, code, false).
		First(&profile).Error; err != nil {
		return fmt.Errorf("%w: invalid verification code or username", ErrValidation)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&profile).Updates(map[string]interface{}{
			"is_verified":       true,
			"verification_code": nil,
		}).Error; err != nil {
			return err
		}
		return tx.Model(&user).Update("is_active", true).Error
	})
}

// Authenticate checks username/password for an active account. All
// failures look the same to the caller.
func Authenticate(db *gorm.DB, username, password string) (*models.User, error) {
	var user models.User
	if err := db.Where("username = ? AND is_deleted = ?", username, false).First(&user).Error; err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", ErrAuthentication)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", ErrAuthentication)
	}

	if !user.IsActive {
		return nil, fmt.Errorf("%w: account is not verified", ErrAuthentication)
	}

	return &user, nil
}
