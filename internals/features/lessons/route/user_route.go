package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edukasiku_backend/internals/features/lessons/controller"
)

func LessonUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewLessonProgressController(db)
	api.Post("/lesson/:lesson_id/complete", ctrl.CompleteLesson)
	api.Get("/lesson-progress", ctrl.GetMyCompletedLessons)
}
