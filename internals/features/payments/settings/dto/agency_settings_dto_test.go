package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"

	m "viajescaribe_backend/internals/features/payments/settings/model"
)

func fp(v float64) *float64 { return &v }
func sp(s string) *string   { return &s }

func TestUpdateAgencySettingsValidation(t *testing.T) {
	v := validator.New()

	cases := []struct {
		name    string
		req     UpdateAgencySettingsRequest
		wantErr bool
	}{
		{"vacío (parcial)", UpdateAgencySettingsRequest{}, false},
		{"defaults de MP", UpdateAgencySettingsRequest{
			AgencySettingMPCommissionPercentage: fp(3.99),
			AgencySettingMPFixedFee:             fp(4.0),
		}, false},
		{"modo test", UpdateAgencySettingsRequest{AgencySettingPaymentMode: sp("test")}, false},
		{"modo desconocido", UpdateAgencySettingsRequest{AgencySettingPaymentMode: sp("sandbox")}, true},
		{"comisión negativa", UpdateAgencySettingsRequest{AgencySettingMPCommissionPercentage: fp(-1)}, true},
		// arriba del umbral la comisión con IVA absorbe el cargo completo
		{"comisión 90", UpdateAgencySettingsRequest{AgencySettingMPCommissionPercentage: fp(90)}, true},
		{"comisión 86", UpdateAgencySettingsRequest{AgencySettingMPCommissionPercentage: fp(86)}, true},
		{"comisión 85.9", UpdateAgencySettingsRequest{AgencySettingMPCommissionPercentage: fp(85.9)}, false},
		{"fijo negativo", UpdateAgencySettingsRequest{AgencySettingMPFixedFee: fp(-0.5)}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Struct(tc.req)
			if (err != nil) != tc.wantErr {
				t.Errorf("Struct() err = %v, quiero error=%v", err, tc.wantErr)
			}
		})
	}
}

func TestApplyToPartial(t *testing.T) {
	mo := &m.AgencySettingsModel{AgencySettingPaymentMode: m.PaymentModeProduction}

	UpdateAgencySettingsRequest{
		AgencySettingMPCommissionPercentage: fp(2.5),
	}.ApplyTo(mo)

	if mo.AgencySettingPaymentMode != m.PaymentModeProduction {
		t.Errorf("el modo no debía cambiar, quedó %q", mo.AgencySettingPaymentMode)
	}
	if got := mo.CommissionPercentage(); got != 2.5 {
		t.Errorf("comisión = %v, quiero 2.5", got)
	}
	if got := mo.FixedFee(); got != m.DefaultMPFixedFee {
		t.Errorf("fijo = %v, quiero el default %v", got, m.DefaultMPFixedFee)
	}
}
