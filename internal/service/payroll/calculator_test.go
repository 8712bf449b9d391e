package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateAmounts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		regular  float64
		overtime float64
		rate     float64
		want     Amounts
	}{
		{
			name:    "regular hours only",
			regular: 160, rate: 20,
			want: Amounts{Base: 3200, Overtime: 0, Total: 3200},
		},
		{
			name:    "overtime at time and a half",
			regular: 160, overtime: 10, rate: 20,
			want: Amounts{Base: 3200, Overtime: 300, Total: 3500},
		},
		{
			name: "zero hours",
			rate: 20,
			want: Amounts{},
		},
		{
			name:     "fractional hours",
			regular:  7.5,
			overtime: 1.5,
			rate:     10,
			want:     Amounts{Base: 75, Overtime: 22.5, Total: 97.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := CalculateAmounts(tt.regular, tt.overtime, tt.rate)
			assert.InDelta(t, tt.want.Base, got.Base, 1e-9)
			assert.InDelta(t, tt.want.Overtime, got.Overtime, 1e-9)
			assert.InDelta(t, tt.want.Total, got.Total, 1e-9)
		})
	}
}
