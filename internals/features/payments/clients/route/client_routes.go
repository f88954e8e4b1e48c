package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"viajescaribe_backend/internals/features/payments/clients/controller"
)

// ClientPublicRoutes: consulta de contrato para la página de pago.
func ClientPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewClientPublicController()
	r.Get("/clients/:contract_number", ctrl.GetByContractNumber)
}

// ClientAdminRoutes: listado y historial para el back office.
func ClientAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewClientAdminController(db)
	r.Get("/clients", ctrl.List)
	r.Get("/clients/:id/payments", ctrl.Payments)
}
