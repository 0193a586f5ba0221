package services

import "testing"

func TestMultiplyPrice(t *testing.T) {
	tests := []struct {
		name      string
		unitPrice float64
		area      float64
		expect    float64
	}{
		{"whole numbers", 5, 10, 50},
		{"rounds half up", 4.12, 18.8, 77.46},
		{"wall surface", 5.2, 72.6, 377.52},
		{"ceiling surface", 3.99, 18.8, 75.01},
		{"small price", 0.46, 58.8, 27.05},
		{"zero area", 4.12, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MultiplyPrice(tt.unitPrice, tt.area)
			if got != tt.expect {
				t.Errorf("MultiplyPrice(%v, %v) = %v, want %v", tt.unitPrice, tt.area, got, tt.expect)
			}
		})
	}
}

func TestSumAmounts(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		expect float64
	}{
		{"empty", nil, 0},
		{"single", []float64{12.34}, 12.34},
		{"room total", []float64{77.46, 377.52, 75.01}, 529.99},
		{"room areas", []float64{18.8, 72.6, 18.8}, 110.2},
		{"floats that misbehave in binary", []float64{0.1, 0.2}, 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SumAmounts(tt.values...)
			if got != tt.expect {
				t.Errorf("SumAmounts(%v) = %v, want %v", tt.values, got, tt.expect)
			}
		})
	}
}

func TestRoundAmount(t *testing.T) {
	tests := []struct {
		name   string
		input  float64
		expect float64
	}{
		{"already rounded", 12.34, 12.34},
		{"rounds half up", 12.345, 12.35},
		{"rounds down", 12.344, 12.34},
		{"negative half away from zero", -12.345, -12.35},
		{"integer", 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RoundAmount(tt.input)
			if got != tt.expect {
				t.Errorf("RoundAmount(%v) = %v, want %v", tt.input, got, tt.expect)
			}
		})
	}
}
