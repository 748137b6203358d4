package models

import "gorm.io/gorm"

// Comment is removed together with its lesson or its author.
type Comment struct {
	gorm.Model
	LessonID  uint   `gorm:"index;not null" json:"lesson_id"`
	UserID    uint   `gorm:"index;not null" json:"user_id"`
	Content   string `gorm:"type:text;not null" json:"content"`
	IsDeleted bool   `gorm:"default:false" json:"-"`
}
