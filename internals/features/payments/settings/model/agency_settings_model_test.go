package model

import "testing"

func fl(v float64) *float64 { return &v }

func TestAgencySettingsDefaults(t *testing.T) {
	s := &AgencySettingsModel{}

	if got := s.CommissionPercentage(); got != DefaultMPCommissionPercentage {
		t.Errorf("CommissionPercentage() = %v, quiero %v", got, DefaultMPCommissionPercentage)
	}
	if got := s.FixedFee(); got != DefaultMPFixedFee {
		t.Errorf("FixedFee() = %v, quiero %v", got, DefaultMPFixedFee)
	}

	s.AgencySettingMPCommissionPercentage = fl(2.5)
	s.AgencySettingMPFixedFee = fl(7)
	if got := s.CommissionPercentage(); got != 2.5 {
		t.Errorf("CommissionPercentage() = %v, quiero 2.5", got)
	}
	if got := s.FixedFee(); got != 7.0 {
		t.Errorf("FixedFee() = %v, quiero 7", got)
	}
}

func TestIsTestMode(t *testing.T) {
	cases := []struct {
		mode string
		want bool
	}{
		{"test", true},
		{"TEST", true},
		{" test ", true},
		{"production", false},
		{"live", false},
		{"", false},
	}
	for _, tc := range cases {
		s := &AgencySettingsModel{AgencySettingPaymentMode: tc.mode}
		if got := s.IsTestMode(); got != tc.want {
			t.Errorf("IsTestMode(%q) = %v, quiero %v", tc.mode, got, tc.want)
		}
	}
}
