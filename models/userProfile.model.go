package models

import (
	"time"

	"gorm.io/gorm"
)

// UserProfile is created at registration and carries the email
// verification state. VerificationCode is set only while the profile
// is unverified; a successful verification clears it for good.
type UserProfile struct {
	gorm.Model
	UserID           uint       `gorm:"uniqueIndex;not null" json:"user_id"`
	FirstName        string     `gorm:"size:50" json:"first_name"`
	LastName         string     `gorm:"size:50" json:"last_name"`
	Email            string     `gorm:"size:100" json:"email,omitempty"`
	Address          string     `gorm:"size:150" json:"address,omitempty"`
	PhoneNumber      string     `gorm:"size:13" json:"phone_number,omitempty"`
	DateOfBirth      *time.Time `json:"date_of_birth,omitempty"`
	Image            string     `gorm:"default:''" json:"image,omitempty"`
	IsVerified       bool       `gorm:"default:false" json:"is_verified"`
	VerificationCode *string    `gorm:"size:6" json:"-"`
	IsDeleted        bool       `gorm:"default:false" json:"-"`
}
