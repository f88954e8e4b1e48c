package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	PaymentModeTest       = "test"
	PaymentModeProduction = "production"

	// Comisión porcentual y cargo fijo por transacción de Mercado Pago,
	// usados cuando la fila de ajustes no define valores.
	DefaultMPCommissionPercentage = 3.99
	DefaultMPFixedFee             = 4.0
)

// AgencySettingsModel es la fila única de configuración de la agencia.
// El flujo de pagos solo la lee; el back office puede actualizarla.
type AgencySettingsModel struct {
	AgencySettingID uuid.UUID `gorm:"column:agency_setting_id;type:uuid;default:gen_random_uuid();primaryKey" json:"agency_setting_id"`

	AgencySettingPaymentMode string `gorm:"column:agency_setting_payment_mode;type:varchar(20);not null;default:'production'" json:"agency_setting_payment_mode"`

	AgencySettingMPCommissionPercentage *float64 `gorm:"column:agency_setting_mp_commission_percentage;type:numeric(6,4)" json:"agency_setting_mp_commission_percentage,omitempty"`
	AgencySettingMPFixedFee             *float64 `gorm:"column:agency_setting_mp_fixed_fee;type:numeric(10,2)" json:"agency_setting_mp_fixed_fee,omitempty"`

	AgencySettingUpdatedAt time.Time `gorm:"column:agency_setting_updated_at;autoUpdateTime" json:"agency_setting_updated_at"`
}

func (AgencySettingsModel) TableName() string { return "agency_settings" }

// IsTestMode: cualquier modo distinto de "test" cuenta como producción.
func (m *AgencySettingsModel) IsTestMode() bool {
	return strings.EqualFold(strings.TrimSpace(m.AgencySettingPaymentMode), PaymentModeTest)
}

func (m *AgencySettingsModel) CommissionPercentage() float64 {
	if m.AgencySettingMPCommissionPercentage != nil {
		return *m.AgencySettingMPCommissionPercentage
	}
	return DefaultMPCommissionPercentage
}

func (m *AgencySettingsModel) FixedFee() float64 {
	if m.AgencySettingMPFixedFee != nil {
		return *m.AgencySettingMPFixedFee
	}
	return DefaultMPFixedFee
}
