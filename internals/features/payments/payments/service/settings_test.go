package service

import (
	"errors"
	"strings"
	"testing"

	"viajescaribe_backend/internals/configs"
	settingsModel "viajescaribe_backend/internals/features/payments/settings/model"
)

func TestSelectAccessToken(t *testing.T) {
	cfg := &configs.Config{
		MPAccessTokenTest: "TEST-token",
		MPAccessTokenProd: "PROD-token",
	}

	cases := []struct {
		name string
		mode string
		want string
	}{
		{"modo test usa el token de prueba", "test", "TEST-token"},
		{"modo producción usa el token productivo", "production", "PROD-token"},
		{"cualquier otro modo cuenta como producción", "live", "PROD-token"},
		{"modo vacío cuenta como producción", "", "PROD-token"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := &settingsModel.AgencySettingsModel{AgencySettingPaymentMode: tc.mode}
			got, err := SelectAccessToken(s, cfg)
			if err != nil {
				t.Fatalf("error inesperado: %v", err)
			}
			if got != tc.want {
				t.Errorf("token = %q, quiero %q", got, tc.want)
			}
		})
	}
}

func TestSelectAccessTokenMissingCredential(t *testing.T) {
	s := &settingsModel.AgencySettingsModel{AgencySettingPaymentMode: "test"}
	_, err := SelectAccessToken(s, &configs.Config{MPAccessTokenProd: "PROD-token"})
	if !errors.Is(err, ErrCredentialNotConfigured) {
		t.Fatalf("quiero ErrCredentialNotConfigured, obtuve %v", err)
	}
	if !strings.Contains(err.Error(), "Prueba") {
		t.Errorf("el error debe nombrar el modo Prueba: %q", err.Error())
	}

	s = &settingsModel.AgencySettingsModel{AgencySettingPaymentMode: "production"}
	_, err = SelectAccessToken(s, &configs.Config{MPAccessTokenTest: "TEST-token"})
	if !errors.Is(err, ErrCredentialNotConfigured) {
		t.Fatalf("quiero ErrCredentialNotConfigured, obtuve %v", err)
	}
	if !strings.Contains(err.Error(), "Producción") {
		t.Errorf("el error debe nombrar el modo Producción: %q", err.Error())
	}
}
