package lessonRoutes

import (
	lessonControllers "kurs/controllers/lesson"
	"kurs/middleware"
	lessonValidators "kurs/validators/lesson"

	"github.com/gofiber/fiber/v2"
)

func SetupLessonRoutes(app *fiber.App) {
	lessonGroup := app.Group("/lesson")

	// Discovery (registered before /:id so the paths don't collide)
	lessonGroup.Get("/search", middleware.JWTMiddleware, lessonValidators.Search(), lessonControllers.SearchLessons)
	lessonGroup.Get("/top/liked", middleware.JWTMiddleware, lessonControllers.MostLikedLessons)
	lessonGroup.Get("/top/viewed", middleware.JWTMiddleware, lessonControllers.MostViewedLessons)

	// Lesson CRUD
	lessonGroup.Get("/list", middleware.JWTMiddleware, lessonControllers.GetAllLessons)
	lessonGroup.Post("/", middleware.JWTMiddleware, lessonValidators.CreateLesson(), lessonControllers.CreateLesson)
	lessonGroup.Get("/:id", middleware.JWTMiddleware, lessonControllers.GetLessonDetail)
	lessonGroup.Put("/:id", middleware.JWTMiddleware, lessonValidators.UpdateLesson(), lessonControllers.UpdateLesson)
	lessonGroup.Delete("/:id", middleware.JWTMiddleware, lessonControllers.DeleteLesson)

	// Engagement toggles
	lessonGroup.Post("/:id/like", middleware.JWTMiddleware, lessonControllers.ToggleLike)
	lessonGroup.Post("/:id/dislike", middleware.JWTMiddleware, lessonControllers.ToggleDislike)

	// Videos
	lessonGroup.Post("/:id/video", middleware.JWTMiddleware, lessonControllers.UploadVideo)
	lessonGroup.Get("/:id/video/:videoId", middleware.JWTMiddleware, lessonControllers.GetVideo)
	lessonGroup.Put("/:id/video/:videoId", middleware.JWTMiddleware, lessonControllers.UpdateVideo)
	lessonGroup.Delete("/:id/video/:videoId", middleware.JWTMiddleware, lessonControllers.DeleteVideo)

	// Comments
	lessonGroup.Post("/:id/comment", middleware.JWTMiddleware, lessonValidators.CreateComment(), lessonControllers.CreateComment)
	lessonGroup.Get("/:id/comment", middleware.JWTMiddleware, lessonControllers.GetComments)
	lessonGroup.Put("/:id/comment/:commentId", middleware.JWTMiddleware, lessonValidators.CreateComment(), lessonControllers.UpdateComment)
	lessonGroup.Delete("/:id/comment/:commentId", middleware.JWTMiddleware, lessonControllers.DeleteComment)
}
