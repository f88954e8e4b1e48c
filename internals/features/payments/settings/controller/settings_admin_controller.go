package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"viajescaribe_backend/internals/features/payments/settings/dto"
	"viajescaribe_backend/internals/features/payments/settings/model"
	helper "viajescaribe_backend/internals/helpers"
)

type SettingsAdminController struct {
	DB *gorm.DB
}

func NewSettingsAdminController(db *gorm.DB) *SettingsAdminController {
	return &SettingsAdminController{DB: db}
}

/* ======================= GET ======================= */
// GET /api/a/settings
func (ctrl *SettingsAdminController) Get(c *fiber.Ctx) error {
	var s model.AgencySettingsModel
	if err := ctrl.DB.WithContext(c.UserContext()).Take(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s = model.AgencySettingsModel{AgencySettingPaymentMode: model.PaymentModeProduction}
			return helper.Success(c, "Ajustes por defecto (sin fila registrada)", dto.FromAgencySettingsModel(&s))
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", dto.FromAgencySettingsModel(&s))
}

/* ======================= UPDATE ======================= */
// PUT /api/a/settings — parcial; crea la fila única si aún no existe.
func (ctrl *SettingsAdminController) Update(c *fiber.Ctx) error {
	var req dto.UpdateAgencySettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var s model.AgencySettingsModel
	err := ctrl.DB.WithContext(c.UserContext()).Take(&s).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		s = model.AgencySettingsModel{AgencySettingPaymentMode: model.PaymentModeProduction}
		req.ApplyTo(&s)
		if err := ctrl.DB.WithContext(c.UserContext()).Create(&s).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, err.Error())
		}
	case err != nil:
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	default:
		req.ApplyTo(&s)
		if err := ctrl.DB.WithContext(c.UserContext()).Save(&s).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	return helper.Success(c, "Ajustes actualizados", dto.FromAgencySettingsModel(&s))
}
