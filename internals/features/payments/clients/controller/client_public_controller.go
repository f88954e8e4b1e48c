package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"viajescaribe_backend/internals/features/payments/clients/dto"
	"viajescaribe_backend/internals/features/payments/clients/model"
	helper "viajescaribe_backend/internals/helpers"
)

type ClientPublicController struct{}

func NewClientPublicController() *ClientPublicController {
	return &ClientPublicController{}
}

// 🟢 GET /api/clients/:contract_number
// Estado del contrato para la página de pago. La conexión viene del
// DBMiddleware en el context.
func (ctrl *ClientPublicController) GetByContractNumber(c *fiber.Ctx) error {
	db, ok := c.Locals("db").(*gorm.DB)
	if !ok {
		return helper.Error(c, fiber.StatusInternalServerError, "Conexión de base de datos no disponible")
	}

	contractNumber := c.Params("contract_number")
	if contractNumber == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Número de contrato requerido")
	}

	var cl model.ClientModel
	if err := db.WithContext(c.UserContext()).
		Where("LOWER(client_contract_number) = LOWER(?)", contractNumber).
		Take(&cl).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Contrato no encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var payments []model.ClientPaymentModel
	if err := db.WithContext(c.UserContext()).
		Where("client_payment_client_id = ?", cl.ClientID).
		Order("client_payment_date desc, client_payment_created_at desc").
		Find(&payments).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Contrato encontrado", dto.ContractStatusResponse{
		Client:   dto.FromClientModel(cl),
		Payments: dto.FromClientPaymentModels(payments),
	})
}
