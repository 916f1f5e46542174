package routes

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edukasiku_backend/internals/features/quiz/session"
	authMiddleware "edukasiku_backend/internals/middlewares/auth"
	routeDetails "edukasiku_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, registry *session.Registry) {
	startTime = time.Now()

	BaseRoutes(app)

	jwtOpts := authMiddleware.AuthJWTOpts{
		Secret:              os.Getenv("JWT_SECRET"),
		AllowCookieFallback: true,
	}

	// ===================== GROUPS =====================

	// PUBLIC → tanpa token
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	// PRIVATE (USER) → wajib token
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u", authMiddleware.AuthJWT(jwtOpts))

	// ADMIN → token + role admin
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(jwtOpts),
		authMiddleware.OnlyAdmin("Hanya admin yang boleh mengakses fitur ini"),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Learning routes...")
	routeDetails.LearningPublicRoutes(public, db)
	routeDetails.LearningUserRoutes(private, db, registry)
	routeDetails.LearningAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Commerce routes...")
	routeDetails.CommercePublicRoutes(public, db)
	routeDetails.CommerceAdminRoutes(admin, db)
}
