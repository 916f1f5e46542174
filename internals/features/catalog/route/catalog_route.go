package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edukasiku_backend/internals/features/catalog/controller"
)

func CatalogPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCatalogPublicController(db)
	api.Get("/courses", ctrl.GetCourses)
	api.Get("/courses/:slug", ctrl.GetCourseBySlug)
}

func CatalogAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCatalogAdminController(db)
	courses := api.Group("/courses")
	courses.Post("/", ctrl.CreateCourse)
	courses.Put("/:id", ctrl.UpdateCourse)
	courses.Delete("/:id", ctrl.DeleteCourse)
}
