package details

import (
	CatalogRoutes "edukasiku_backend/internals/features/catalog/route"
	DiscountRoutes "edukasiku_backend/internals/features/discounts/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ✅ Route publik tanpa token
// Contoh akses: /api/public/courses, /api/public/discount-codes/validate
func CommercePublicRoutes(api fiber.Router, db *gorm.DB) {
	CatalogRoutes.CatalogPublicRoutes(api, db)
	DiscountRoutes.DiscountPublicRoutes(api, db)
}

// ✅ Route admin (token + role admin)
// Contoh akses: /api/a/courses, /api/a/discount-codes
func CommerceAdminRoutes(api fiber.Router, db *gorm.DB) {
	CatalogRoutes.CatalogAdminRoutes(api, db)
	DiscountRoutes.DiscountAdminRoutes(api, db)
}
