package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attemptController "edukasiku_backend/internals/features/quiz/attempts/controller"
	questionController "edukasiku_backend/internals/features/quiz/questions/controller"
	quizController "edukasiku_backend/internals/features/quiz/quizzes/controller"
)

// Rute admin: kelola quiz, soal, dan monitoring attempt.
func QuizAdminRoutes(api fiber.Router, db *gorm.DB) {
	quizCtrl := quizController.NewQuizAdminController(db)
	quizzes := api.Group("/quizzes")
	quizzes.Post("/", quizCtrl.CreateQuiz)
	quizzes.Get("/", quizCtrl.GetAllQuizzes)
	quizzes.Get("/:id", quizCtrl.GetQuizByID)
	quizzes.Put("/:id", quizCtrl.UpdateQuiz)
	quizzes.Delete("/:id", quizCtrl.DeleteQuiz)

	questionCtrl := questionController.NewQuizQuestionAdminController(db)
	quizzes.Post("/:quiz_id/questions", questionCtrl.CreateQuestion)
	quizzes.Get("/:quiz_id/questions", questionCtrl.GetQuestionsByQuiz)
	api.Put("/quiz-questions/:id", questionCtrl.UpdateQuestion)
	api.Delete("/quiz-questions/:id", questionCtrl.DeleteQuestion)

	attemptCtrl := attemptController.NewQuizAttemptAdminController(db)
	quizzes.Get("/:quiz_id/attempts", attemptCtrl.GetAttemptsByQuiz)
}
