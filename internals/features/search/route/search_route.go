package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edukasiku_backend/internals/features/search/controller"
	"edukasiku_backend/internals/middlewares"
)

func SearchPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSearchController(db)
	api.Get("/search", middlewares.SearchRateLimiter(), ctrl.Search)
}
