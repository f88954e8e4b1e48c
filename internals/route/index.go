// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"viajescaribe_backend/internals/configs"
	clientRoute "viajescaribe_backend/internals/features/payments/clients/route"
	paymentRoute "viajescaribe_backend/internals/features/payments/payments/route"
	settingsRoute "viajescaribe_backend/internals/features/payments/settings/route"
	middlewares "viajescaribe_backend/internals/middlewares"
	authMiddleware "viajescaribe_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *configs.Config) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api", middlewares.DBMiddleware(db))

	log.Println("[INFO] Mounting Payment routes...")
	paymentRoute.PaymentRoutes(public, db, cfg)

	log.Println("[INFO] Mounting Client public routes...")
	clientRoute.ClientPublicRoutes(public, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(cfg.JWTSecret),
		authMiddleware.RequireAdmin(),
	)

	log.Println("[INFO] Mounting Client admin routes...")
	clientRoute.ClientAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Settings admin routes...")
	settingsRoute.SettingsAdminRoutes(admin, db)
}
