package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edukasiku_backend/internals/features/discounts/controller"
	"edukasiku_backend/internals/middlewares"
)

func DiscountPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDiscountCodePublicController(db)
	api.Post("/discount-codes/validate", middlewares.DiscountValidateRateLimiter(), ctrl.Validate)
}

func DiscountAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDiscountCodeAdminController(db)
	codes := api.Group("/discount-codes")
	codes.Post("/", ctrl.Create)
	codes.Get("/", ctrl.GetAll)
	codes.Put("/:id", ctrl.Update)
	codes.Delete("/:id", ctrl.Delete)
}
