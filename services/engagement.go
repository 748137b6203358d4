package services

import (
	"errors"
	"fmt"

	"kurs/models"

	"gorm.io/gorm"
)

// ToggleResult reports which way a like/dislike toggle flipped.
type ToggleResult string

const (
	ToggleCreated ToggleResult = "created"
	ToggleRemoved ToggleResult = "removed"
)

// Counts holds the aggregate engagement numbers for one lesson.
type Counts struct {
	Likes    int64 `json:"likes"`
	Dislikes int64 `json:"dislikes"`
	Views    int64 `json:"views"`
}

func lessonExists(db *gorm.DB, lessonID uint) error {
	if err := db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&models.Lesson{}).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: lesson not found", ErrNotFound)
		}
		return err
	}
	return nil
}

// ToggleLike flips the caller's like on a lesson. Any standing dislike
// for the pair is removed in the same transaction, so like and dislike
// never coexist, even mid-toggle. The (lesson_id, user_id) unique index
// is the backstop for concurrent calls; a duplicate insert is
// translated into the created outcome.
func ToggleLike(db *gorm.DB, lessonID, userID uint) (ToggleResult, error) {
	if err := lessonExists(db, lessonID); err != nil {
		return "", err
	}

	var result ToggleResult
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("lesson_id = ? AND user_id = ?", lessonID, userID).
			Delete(&models.LessonDislike{}).Error; err != nil {
			return err
		}

		var existing models.LessonLike
		if err := tx.Where("lesson_id = ? AND user_id = ?", lessonID, userID).First(&existing).Error; err == nil {
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			result = ToggleRemoved
			return nil
		}

		// A concurrent request winning the insert is fine; the like stands either way.
		like := models.LessonLike{LessonID: lessonID, UserID: userID}
		if err := tx.Create(&like).Error; err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		result = ToggleCreated
		return nil
	})
	if err != nil {
		return "", err
	}
	return result, nil
}

// ToggleDislike mirrors ToggleLike with the roles reversed.
func ToggleDislike(db *gorm.DB, lessonID, userID uint) (ToggleResult, error) {
	if err := lessonExists(db, lessonID); err != nil {
		return "", err
	}

	var result ToggleResult
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("lesson_id = ? AND user_id = ?", lessonID, userID).
			Delete(&models.LessonLike{}).Error; err != nil {
			return err
		}

		var existing models.LessonDislike
		if err := tx.Where("lesson_id = ? AND user_id = ?", lessonID, userID).First(&existing).Error; err == nil {
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			result = ToggleRemoved
			return nil
		}

		dislike := models.LessonDislike{LessonID: lessonID, UserID: userID}
		if err := tx.Create(&dislike).Error; err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		result = ToggleCreated
		return nil
	})
	if err != nil {
		return "", err
	}
	return result, nil
}

// RecordView stores at most one view per (lesson, user). Repeat calls
// are side-effect-free: the existence check is the fast path and the
// unique index catches the rest.
func RecordView(db *gorm.DB, lessonID, userID uint) error {
	if err := lessonExists(db, lessonID); err != nil {
		return err
	}

	var existing models.LessonView
	if err := db.Where("lesson_id = ? AND user_id = ?", lessonID, userID).First(&existing).Error; err == nil {
		return nil
	}

	view := models.LessonView{LessonID: lessonID, UserID: userID}
	if err := db.Create(&view).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return err
	}
	return nil
}

// GetCounts returns the like/dislike/view cardinalities for a lesson.
func GetCounts(db *gorm.DB, lessonID uint) (Counts, error) {
	var counts Counts

	if err := db.Model(&models.LessonLike{}).Where("lesson_id = ?", lessonID).Count(&counts.Likes).Error; err != nil {
		return counts, err
	}
	if err := db.Model(&models.LessonDislike{}).Where("lesson_id = ?", lessonID).Count(&counts.Dislikes).Error; err != nil {
		return counts, err
	}
	if err := db.Model(&models.LessonView{}).Where("lesson_id = ?", lessonID).Count(&counts.Views).Error; err != nil {
		return counts, err
	}

	return counts, nil
}
