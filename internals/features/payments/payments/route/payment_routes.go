package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"viajescaribe_backend/internals/configs"
	"viajescaribe_backend/internals/features/payments/payments/controller"
	middlewares "viajescaribe_backend/internals/middlewares"
)

// PaymentRoutes monta los dos endpoints de pago del sitio público.
func PaymentRoutes(r fiber.Router, db *gorm.DB, cfg *configs.Config) {
	confirmCtrl := controller.NewPaymentConfirmController(db)
	checkoutCtrl := controller.NewCheckoutController(db, cfg)

	pay := r.Group("/payments", middlewares.PaymentRateLimiter())
	pay.Post("/confirm", confirmCtrl.Confirm)
	pay.Post("/checkout", checkoutCtrl.CreatePreference)
}
