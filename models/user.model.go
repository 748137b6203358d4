package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username  string `gorm:"unique;not null" json:"username"`
	Email     string `gorm:"unique;not null" json:"email"`
	Password  string `gorm:"not null" json:"-"`
	Role      string `gorm:"default:'USER'" json:"role"` // USER, ADMIN
	IsActive  bool   `gorm:"default:false" json:"is_active"`
	IsDeleted bool   `gorm:"default:false" json:"-"`
}
