package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"viajescaribe_backend/internals/configs"
	settingsModel "viajescaribe_backend/internals/features/payments/settings/model"
)

// LoadAgencySettings lee la fila única de ajustes. Sin fila registrada se
// regresan los defaults (modo producción, 3.99%, $4.00).
func LoadAgencySettings(ctx context.Context, db *gorm.DB) (*settingsModel.AgencySettingsModel, error) {
	var s settingsModel.AgencySettingsModel
	if err := db.WithContext(ctx).Take(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &settingsModel.AgencySettingsModel{
				AgencySettingPaymentMode: settingsModel.PaymentModeProduction,
			}, nil
		}
		return nil, err
	}
	return &s, nil
}

// SelectAccessToken elige el token de Mercado Pago según el modo configurado.
// La ausencia del token requerido falla nombrando el modo.
func SelectAccessToken(s *settingsModel.AgencySettingsModel, cfg *configs.Config) (string, error) {
	if s.IsTestMode() {
		if cfg.MPAccessTokenTest == "" {
			return "", fmt.Errorf("%w (modo Prueba)", ErrCredentialNotConfigured)
		}
		return cfg.MPAccessTokenTest, nil
	}
	if cfg.MPAccessTokenProd == "" {
		return "", fmt.Errorf("%w (modo Producción)", ErrCredentialNotConfigured)
	}
	return cfg.MPAccessTokenProd, nil
}
