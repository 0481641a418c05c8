package mathutil

import (
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"Round down", 1.234, 1.23},
		{"Round up", 1.235, 1.24},
		{"Already rounded", 10.50, 10.50},
		{"Negative value", -1.236, -1.24},
		{"Zero", 0.0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Round(tt.input); got != tt.expected {
				t.Errorf("Round(%v) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsZero(t *testing.T) {
	if !IsZero(0.001) {
		t.Errorf("IsZero(0.001) = false, expected true within tolerance")
	}
	if IsZero(0.02) {
		t.Errorf("IsZero(0.02) = true, expected false")
	}
}

func TestWithinTolerance(t *testing.T) {
	if !WithinTolerance(1.0, 1.005, 0.01) {
		t.Errorf("WithinTolerance(1.0, 1.005, 0.01) = false, expected true")
	}
	if WithinTolerance(1.0, 1.02, 0.01) {
		t.Errorf("WithinTolerance(1.0, 1.02, 0.01) = true, expected false")
	}
}

func TestMinMax(t *testing.T) {
	if got := Min(3.0, 7.0); got != 3.0 {
		t.Errorf("Min(3, 7) = %v, expected 3", got)
	}
	if got := Max(3.0, 7.0); got != 7.0 {
		t.Errorf("Max(3, 7) = %v, expected 7", got)
	}
}

func TestApplyPercentage(t *testing.T) {
	tests := []struct {
		name       string
		value      float64
		percentage float64
		expected   float64
	}{
		{"Ten percent", 770.0, 10.0, 77.0},
		{"Rush surcharge", 480.0, 25.0, 120.0},
		{"Zero percent", 100.0, 0.0, 0.0},
		{"Zero value", 0.0, 15.0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyPercentage(tt.value, tt.percentage)
			if !WithinTolerance(got, tt.expected, 1e-9) {
				t.Errorf("ApplyPercentage(%v, %v) = %v, expected %v", tt.value, tt.percentage, got, tt.expected)
			}
		})
	}
}
