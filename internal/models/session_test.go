package models

import "testing"

func TestNormalizeMode(t *testing.T) {
	cases := []struct {
		raw      string
		expected Mode
	}{
		{"1", ModeLocal},
		{"local", ModeLocal},
		{"Local", ModeLocal},
		{" LOCAL ", ModeLocal},
		{"2", ModeGlobal},
		{"global", ModeGlobal},
		{"", ModeGlobal},
		{"3", ModeGlobal},
		{"anything else", ModeGlobal},
	}

	for _, tc := range cases {
		if got := NormalizeMode(tc.raw); got != tc.expected {
			t.Errorf("NormalizeMode(%q) = %q, want %q", tc.raw, got, tc.expected)
		}
	}
}

func TestValidMode(t *testing.T) {
	for _, valid := range []string{"1", "2"} {
		if !ValidMode(valid) {
			t.Errorf("ValidMode(%q) = false, want true", valid)
		}
	}
	for _, invalid := range []string{"", "0", "3", "local", "global", "Local"} {
		if ValidMode(invalid) {
			t.Errorf("ValidMode(%q) = true, want false", invalid)
		}
	}
}

func TestModeLabel(t *testing.T) {
	if got := ModeLocal.Label(); got != "Local" {
		t.Errorf("ModeLocal.Label() = %q", got)
	}
	if got := ModeGlobal.Label(); got != "Global" {
		t.Errorf("ModeGlobal.Label() = %q", got)
	}
}
