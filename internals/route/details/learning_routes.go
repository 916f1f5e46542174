package details

import (
	LessonRoutes "edukasiku_backend/internals/features/lessons/route"
	QuizRoutes "edukasiku_backend/internals/features/quiz/route"
	"edukasiku_backend/internals/features/quiz/session"
	SearchRoutes "edukasiku_backend/internals/features/search/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ✅ Route publik tanpa token
// Contoh akses: /api/public/search
func LearningPublicRoutes(api fiber.Router, db *gorm.DB) {
	SearchRoutes.SearchPublicRoutes(api, db)
}

// ✅ Route user login (dengan token)
// Contoh akses: /api/u/quiz/:quiz_id/start
func LearningUserRoutes(api fiber.Router, db *gorm.DB, registry *session.Registry) {
	QuizRoutes.QuizUserRoutes(api, db, registry)
	LessonRoutes.LessonUserRoutes(api, db)
}

// ✅ Route admin (token + role admin)
// Contoh akses: /api/a/quizzes
func LearningAdminRoutes(api fiber.Router, db *gorm.DB) {
	QuizRoutes.QuizAdminRoutes(api, db)
}
