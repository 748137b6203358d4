package models

import (
	"gorm.io/gorm"
)

// Lesson keeps its creator nullable: deleting the creator orphans the
// lesson instead of cascading.
type Lesson struct {
	gorm.Model
	UserID      *uint  `gorm:"index" json:"user_id"`
	Title       string `gorm:"size:50;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	IsDeleted   bool   `gorm:"default:false" json:"-"`
}
