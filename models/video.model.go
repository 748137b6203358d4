package models

import (
	"gorm.io/gorm"
)

// Video belongs to one lesson and one creator; both links survive as
// NULL when the parent is deleted.
type Video struct {
	gorm.Model
	LessonID    *uint  `gorm:"index" json:"lesson_id"`
	UserID      *uint  `gorm:"index" json:"user_id"`
	Title       string `gorm:"size:50;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	FilePath    string `json:"file_path"`
	IsDeleted   bool   `gorm:"default:false" json:"-"`
}
