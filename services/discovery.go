package services

import (
	"strings"

	"kurs/models"

	"gorm.io/gorm"
)

// likeEscaper neutralizes LIKE metacharacters so a query containing
// "%" or "_" matches those characters literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// SearchLessons matches the query case-insensitively against lesson
// titles and the titles of attached videos. Each lesson appears once
// even when both conditions hit; results are stable by lesson id.
func SearchLessons(db *gorm.DB, query string) ([]models.Lesson, error) {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(query)) + "%"

	var lessons []models.Lesson
	err := db.Model(&models.Lesson{}).
		Select("lessons.*").
		Joins("LEFT JOIN videos ON videos.lesson_id = lessons.id AND videos.is_deleted = ?", false).
		Where("lessons.is_deleted = ?", false).
		Where(`LOWER(lessons.title) LIKE ? ESCAPE '\' OR LOWER(videos.title) LIKE ? ESCAPE '\'`, pattern, pattern).
		Group("lessons.id").
		Order("lessons.id asc").
		Find(&lessons).Error
	return lessons, err
}

// MostLiked lists every lesson ordered by like count descending,
// ascending id as the stable tie-break.
func MostLiked(db *gorm.DB) ([]models.Lesson, error) {
	var lessons []models.Lesson
	err := db.Model(&models.Lesson{}).
		Select("lessons.*, COUNT(lesson_likes.id) AS like_count").
		Joins("LEFT JOIN lesson_likes ON lesson_likes.lesson_id = lessons.id").
		Where("lessons.is_deleted = ?", false).
		Group("lessons.id").
		Order("like_count DESC, lessons.id ASC").
		Find(&lessons).Error
	return lessons, err
}

// MostViewed lists every lesson ordered by deduplicated view count
// descending, ascending id as the stable tie-break.
func MostViewed(db *gorm.DB) ([]models.Lesson, error) {
	var lessons []models.Lesson
	err := db.Model(&models.Lesson{}).
		Select("lessons.*, COUNT(lesson_views.id) AS view_count").
		Joins("LEFT JOIN lesson_views ON lesson_views.lesson_id = lessons.id").
		Where("lessons.is_deleted = ?", false).
		Group("lessons.id").
		Order("view_count DESC, lessons.id ASC").
		Find(&lessons).Error
	return lessons, err
}
