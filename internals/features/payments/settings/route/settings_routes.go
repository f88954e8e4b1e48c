package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"viajescaribe_backend/internals/features/payments/settings/controller"
)

// SettingsAdminRoutes: lectura y ajuste de comisiones/modo de cobro.
func SettingsAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSettingsAdminController(db)
	r.Get("/settings", ctrl.Get)
	r.Put("/settings", ctrl.Update)
}
