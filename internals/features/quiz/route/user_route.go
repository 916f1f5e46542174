package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attemptController "edukasiku_backend/internals/features/quiz/attempts/controller"
	attemptService "edukasiku_backend/internals/features/quiz/attempts/service"
	quizController "edukasiku_backend/internals/features/quiz/quizzes/controller"
	"edukasiku_backend/internals/features/quiz/session"
)

// Rute quiz milik user login: baca quiz + seluruh lifecycle sesi attempt.
func QuizUserRoutes(api fiber.Router, db *gorm.DB, registry *session.Registry) {
	quizCtrl := quizController.NewQuizUserController(db)
	api.Get("/quiz/:quiz_id/with-questions", quizCtrl.GetQuizWithQuestions)

	svc := attemptService.NewAttemptService(db)
	attCtrl := attemptController.NewQuizAttemptUserController(db, svc, registry)

	api.Post("/quiz/:quiz_id/start", attCtrl.StartAttempt)
	api.Get("/quiz/:quiz_id/state", attCtrl.GetState)
	api.Put("/quiz/:quiz_id/answer", attCtrl.SelectAnswer)
	api.Put("/quiz/:quiz_id/navigate", attCtrl.Navigate)
	api.Post("/quiz/:quiz_id/submit", attCtrl.Submit)
	api.Delete("/quiz/:quiz_id/cancel", attCtrl.Cancel)

	api.Get("/quiz-attempts", attCtrl.GetMyAttempts)
}
