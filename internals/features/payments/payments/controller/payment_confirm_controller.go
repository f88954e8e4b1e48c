// 📁 controller/payment_confirm_controller.go
package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"viajescaribe_backend/internals/features/payments/payments/dto"
	"viajescaribe_backend/internals/features/payments/payments/service"
)

type PaymentConfirmController struct {
	DB *gorm.DB
}

func NewPaymentConfirmController(db *gorm.DB) *PaymentConfirmController {
	return &PaymentConfirmController{DB: db}
}

// el sitio consume estas respuestas tal cual; no cambiar las formas
func paymentError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": message,
	})
}

// 🟢 CONFIRM: POST /api/payments/confirm
// Acredita un abono al contrato. Sin monto explícito y sin pagos previos se
// usa el anticipo pactado; un abono no positivo es un no-op exitoso.
func (ctrl *PaymentConfirmController) Confirm(c *fiber.Ctx) error {
	var req dto.ConfirmPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return paymentError(c, "Cuerpo de la petición inválido")
	}
	if err := validator.New().Struct(req); err != nil {
		return paymentError(c, err.Error())
	}
	if req.Amount.Provided() && !req.Amount.Valid() {
		return paymentError(c, "Monto inválido")
	}

	res, err := service.ConfirmPayment(c.UserContext(), ctrl.DB, req.ContractNumber, req.Method, req.ExplicitAmount())
	if err != nil {
		log.Printf("[ERROR] confirmación de pago contrato=%s: %v", req.ContractNumber, err)
		return paymentError(c, err.Error())
	}

	if res.NoOp {
		return c.JSON(fiber.Map{
			"message": "Nada que acreditar",
		})
	}

	return c.JSON(dto.ConfirmPaymentResponse{
		Success:  true,
		Credited: res.Credited,
	})
}
