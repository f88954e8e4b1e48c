package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"viajescaribe_backend/internals/configs"
	"viajescaribe_backend/internals/middlewares/logger"
)

// SetupMiddlewares registra los middlewares globales en orden.
func SetupMiddlewares(app *fiber.App, cfg *configs.Config) {
	app.Use(RecoveryMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware(cfg))
	app.Use(GlobalRateLimiter())
}
