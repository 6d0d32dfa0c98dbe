package units

import (
	"math"
	"testing"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		unit string
		want bool
	}{
		{MPS, true},
		{MPH, true},
		{KMPH, true},
		{KPH, true},
		{"knots", false},
		{"", false},
		{"MPH", false},
	}
	for _, tt := range tests {
		if got := IsValid(tt.unit); got != tt.want {
			t.Errorf("IsValid(%q) = %v, want %v", tt.unit, got, tt.want)
		}
	}
}

func TestConvertSpeed(t *testing.T) {
	tests := []struct {
		name     string
		speedMPS float64
		units    string
		want     float64
	}{
		{"mps passthrough", 10, MPS, 10},
		{"mph", 10, MPH, 22.3694},
		{"kmph", 10, KMPH, 36},
		{"kph alias", 10, KPH, 36},
		{"unknown falls back to mps", 10, "furlongs", 10},
		{"zero", 0, MPH, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConvertSpeed(tt.speedMPS, tt.units)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ConvertSpeed(%v, %q) = %v, want %v", tt.speedMPS, tt.units, got, tt.want)
			}
		})
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		unit string
		want string
	}{
		{MPS, "m/s"},
		{MPH, "mph"},
		{KMPH, "km/h"},
		{KPH, "km/h"},
		{"unknown", "m/s"},
	}
	for _, tt := range tests {
		if got := Label(tt.unit); got != tt.want {
			t.Errorf("Label(%q) = %q, want %q", tt.unit, got, tt.want)
		}
	}
}

func TestValidUnitsString(t *testing.T) {
	if got, want := ValidUnitsString(), "mps, mph, kmph, kph"; got != want {
		t.Errorf("ValidUnitsString() = %q, want %q", got, want)
	}
}
