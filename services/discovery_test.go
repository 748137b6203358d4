package services

import (
	"fmt"
	"testing"

	"kurs/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchMatchesLessonAndVideoTitles(t *testing.T) {
	db := setupTestDB(t)
	creator := createTestUser(t, db, "creator")

	physics := createTestLesson(t, db, creator.ID, "Intro to Physics")
	chemistry := createTestLesson(t, db, creator.ID, "Chemistry Basics")
	require.NoError(t, db.Create(&models.Video{
		LessonID: &chemistry.ID,
		UserID:   &creator.ID,
		Title:    "Introduction",
	}).Error)
	createTestLesson(t, db, creator.ID, "Advanced Biology")

	results, err := SearchLessons(db, "Intro")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, physics.ID, results[0].ID)
	assert.Equal(t, chemistry.ID, results[1].ID)
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	creator := createTestUser(t, db, "creator")
	lesson := createTestLesson(t, db, creator.ID, "Intro to Physics")

	results, err := SearchLessons(db, "iNtRo")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, lesson.ID, results[0].ID)
}

func TestSearchReturnsEachLessonOnce(t *testing.T) {
	db := setupTestDB(t)
	creator := createTestUser(t, db, "creator")

	// Lesson title and two attached video titles all match
	lesson := createTestLesson(t, db, creator.ID, "Intro to Physics")
	for i := 0; i < 2; i++ {
		require.NoError(t, db.Create(&models.Video{
			LessonID: &lesson.ID,
			UserID:   &creator.ID,
			Title:    fmt.Sprintf("Introduction part %d", i+1),
		}).Error)
	}

	results, err := SearchLessons(db, "Intro")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, lesson.ID, results[0].ID)
}

func TestMostLikedOrderingWithStableTies(t *testing.T) {
	db := setupTestDB(t)
	creator := createTestUser(t, db, "creator")

	first := createTestLesson(t, db, creator.ID, "Lesson A")
	second := createTestLesson(t, db, creator.ID, "Lesson B")
	third := createTestLesson(t, db, creator.ID, "Lesson C")

	likeBy := func(lessonID uint, n int) {
		for i := 0; i < n; i++ {
			u := createTestUser(t, db, fmt.Sprintf("user-%d-%d", lessonID, i))
			_, err := ToggleLike(db, lessonID, u.ID)
			require.NoError(t, err)
		}
	}
	likeBy(first.ID, 2)
	likeBy(second.ID, 5)
	likeBy(third.ID, 2)

	// The 5-like lesson leads; the two 2-like lessons keep id order,
	// stable across repeated calls.
	for i := 0; i < 3; i++ {
		results, err := MostLiked(db)
		require.NoError(t, err)
		require.Len(t, results, 3)
		assert.Equal(t, second.ID, results[0].ID)
		assert.Equal(t, first.ID, results[1].ID)
		assert.Equal(t, third.ID, results[2].ID)
	}
}

func TestMostViewedOrdering(t *testing.T) {
	db := setupTestDB(t)
	creator := createTestUser(t, db, "creator")

	quiet := createTestLesson(t, db, creator.ID, "Quiet Lesson")
	popular := createTestLesson(t, db, creator.ID, "Popular Lesson")

	for i := 0; i < 4; i++ {
		u := createTestUser(t, db, fmt.Sprintf("viewer%d", i))
		require.NoError(t, RecordView(db, popular.ID, u.ID))
	}
	viewer := createTestUser(t, db, "lone-viewer")
	require.NoError(t, RecordView(db, quiet.ID, viewer.ID))

	results, err := MostViewed(db)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, popular.ID, results[0].ID)
	assert.Equal(t, quiet.ID, results[1].ID)
}

func TestSearchSkipsDeletedLessons(t *testing.T) {
	db := setupTestDB(t)
	creator := createTestUser(t, db, "creator")

	lesson := createTestLesson(t, db, creator.ID, "Intro to Physics")
	require.NoError(t, db.Model(&lesson).Update("is_deleted", true).Error)

	results, err := SearchLessons(db, "Intro")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchTreatsLikeWildcardsLiterally(t *testing.T) {
	db := setupTestDB(t)
	creator := createTestUser(t, db, "creator")

	createTestLesson(t, db, creator.ID, "Chemistry Basics")
	discount := createTestLesson(t, db, creator.ID, "Discount 100% off")
	underscore := createTestLesson(t, db, creator.ID, "The C_e notation")

	// "_" and "%" in the query match only themselves
	results, err := SearchLessons(db, "C_e")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, underscore.ID, results[0].ID)

	results, err = SearchLessons(db, "100%")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, discount.ID, results[0].ID)
}
