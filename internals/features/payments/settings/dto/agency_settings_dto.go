package dto

import (
	"time"

	m "viajescaribe_backend/internals/features/payments/settings/model"
)

/* ================== REQUESTS ================== */

// Update (parcial)
type UpdateAgencySettingsRequest struct {
	AgencySettingPaymentMode            *string  `json:"agency_setting_payment_mode" validate:"omitempty,oneof=test production"`
	// arriba de ~86.21% la comisión con IVA absorbe el cargo completo
	AgencySettingMPCommissionPercentage *float64 `json:"agency_setting_mp_commission_percentage" validate:"omitempty,gte=0,lt=86"`
	AgencySettingMPFixedFee             *float64 `json:"agency_setting_mp_fixed_fee" validate:"omitempty,gte=0"`
}

// Aplica los cambios al modelo existente
func (r UpdateAgencySettingsRequest) ApplyTo(mo *m.AgencySettingsModel) {
	if r.AgencySettingPaymentMode != nil {
		mo.AgencySettingPaymentMode = *r.AgencySettingPaymentMode
	}
	if r.AgencySettingMPCommissionPercentage != nil {
		mo.AgencySettingMPCommissionPercentage = r.AgencySettingMPCommissionPercentage
	}
	if r.AgencySettingMPFixedFee != nil {
		mo.AgencySettingMPFixedFee = r.AgencySettingMPFixedFee
	}
}

/* ================== RESPONSES ================== */

type AgencySettingsResponse struct {
	AgencySettingPaymentMode            string    `json:"agency_setting_payment_mode"`
	AgencySettingMPCommissionPercentage float64   `json:"agency_setting_mp_commission_percentage"`
	AgencySettingMPFixedFee             float64   `json:"agency_setting_mp_fixed_fee"`
	AgencySettingUpdatedAt              time.Time `json:"agency_setting_updated_at"`
}

func FromAgencySettingsModel(x *m.AgencySettingsModel) AgencySettingsResponse {
	return AgencySettingsResponse{
		AgencySettingPaymentMode:            x.AgencySettingPaymentMode,
		AgencySettingMPCommissionPercentage: x.CommissionPercentage(),
		AgencySettingMPFixedFee:             x.FixedFee(),
		AgencySettingUpdatedAt:              x.AgencySettingUpdatedAt,
	}
}
