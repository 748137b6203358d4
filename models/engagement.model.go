package models

import "time"

// Like, dislike and view records deliberately skip gorm.Model: toggling
// hard-deletes rows, and a soft-deleted row would keep occupying the
// (lesson_id, user_id) unique index. That index is the correctness
// backstop for concurrent toggles and view dedup.

type LessonLike struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	LessonID  uint      `gorm:"not null;uniqueIndex:idx_lesson_like_pair" json:"lesson_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_lesson_like_pair" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

type LessonDislike struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	LessonID  uint      `gorm:"not null;uniqueIndex:idx_lesson_dislike_pair" json:"lesson_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_lesson_dislike_pair" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

type LessonView struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	LessonID  uint      `gorm:"not null;uniqueIndex:idx_lesson_view_pair" json:"lesson_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_lesson_view_pair" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
