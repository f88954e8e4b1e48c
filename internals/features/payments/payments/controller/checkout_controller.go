// 📁 controller/checkout_controller.go
package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"viajescaribe_backend/internals/configs"
	"viajescaribe_backend/internals/features/payments/payments/dto"
	"viajescaribe_backend/internals/features/payments/payments/service"
)

const defaultPreferenceTitle = "Anticipo de Reserva"

type CheckoutController struct {
	DB  *gorm.DB
	Cfg *configs.Config

	// fábrica del cliente de Mercado Pago, reemplazable en pruebas
	NewMPClient func(accessToken string) (*service.MercadoPagoClient, error)
}

func NewCheckoutController(db *gorm.DB, cfg *configs.Config) *CheckoutController {
	return &CheckoutController{
		DB:  db,
		Cfg: cfg,
		NewMPClient: func(accessToken string) (*service.MercadoPagoClient, error) {
			return service.NewMercadoPagoClient(accessToken)
		},
	}
}

// 🟢 CHECKOUT: POST /api/payments/checkout
// Calcula el cargo bruto para que la agencia reciba el neto pedido y crea la
// preferencia de pago hospedada.
func (ctrl *CheckoutController) CreatePreference(c *fiber.Ctx) error {
	var req dto.CheckoutPreferenceRequest
	if err := c.BodyParser(&req); err != nil {
		return paymentError(c, "Cuerpo de la petición inválido")
	}
	if err := validator.New().Struct(req); err != nil {
		return paymentError(c, err.Error())
	}

	settings, err := service.LoadAgencySettings(c.UserContext(), ctrl.DB)
	if err != nil {
		log.Printf("[ERROR] ajustes de agencia: %v", err)
		return paymentError(c, err.Error())
	}

	token, err := service.SelectAccessToken(settings, ctrl.Cfg)
	if err != nil {
		return paymentError(c, err.Error())
	}

	gross, err := service.GrossUpAmount(req.Amount, settings.CommissionPercentage(), settings.FixedFee())
	if err != nil {
		log.Printf("[ERROR] comisión configurada: %v", err)
		return paymentError(c, err.Error())
	}

	title := req.Description
	if title == "" {
		title = defaultPreferenceTitle
	}

	origin := c.Get(fiber.HeaderOrigin)
	if origin == "" {
		origin = c.Protocol() + "://" + c.Hostname()
	}

	pref := service.PreferenceRequest{
		Items: []service.PreferenceItem{
			{
				Title:      title,
				Quantity:   1,
				UnitPrice:  gross,
				CurrencyID: "MXN",
			},
		},
		ExternalReference: req.ClientID,
		BackURLs: service.PreferenceBackURLs{
			Success: origin + "/pago/" + req.ContractNumber + "?estado=exito",
			Failure: origin + "/pago/" + req.ContractNumber + "?estado=fallo",
		},
		AutoReturn: "approved",
	}

	mp, err := ctrl.NewMPClient(token)
	if err != nil {
		log.Printf("[ERROR] cliente de Mercado Pago: %v", err)
		return paymentError(c, err.Error())
	}
	p, err := mp.CreatePreference(c.UserContext(), pref)
	if err != nil {
		log.Printf("[ERROR] preferencia de checkout contrato=%s: %v", req.ContractNumber, err)
		return paymentError(c, err.Error())
	}

	return c.JSON(dto.CheckoutPreferenceResponse{
		ID:        p.ID,
		InitPoint: p.InitPoint,
		Total:     gross,
	})
}
