package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestYearsBetween(t *testing.T) {
	sale := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	valuation := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	// 306 days / 365.25
	assert.InDelta(t, 0.837782, yearsBetween(sale, valuation), 1e-6)
	assert.Zero(t, yearsBetween(sale, sale))
}

func TestCompoundGrowth(t *testing.T) {
	tests := []struct {
		name  string
		rate  float64
		years float64
		want  float64
	}{
		{"zero rate", 0, 2, 1.0},
		{"one year", 3.5, 1, 1.035},
		{"two years compounds", 3.5, 2, 1.071225},
		{"fractional years", 3.5, 0.837782, 1.029240},
		{"negative rate", -2, 1, 0.98},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, compoundGrowth(tt.rate, tt.years), 1e-6)
		})
	}
}

func TestAnnuityFactor(t *testing.T) {
	// PV of $1/yr for 10 years at 7%.
	assert.InDelta(t, 7.023582, annuityFactor(0.07, 10), 1e-6)

	// Zero rate degenerates to the term.
	assert.Equal(t, 10.0, annuityFactor(0, 10))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.24, round2(1.2449))
	assert.Equal(t, 1.25, round2(1.2451))
	assert.Equal(t, -1.25, round2(-1.2451))
	assert.Equal(t, 0.0, round2(0))
}
