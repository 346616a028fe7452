package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   int64
	}{
		{"whole rupees", 1000, 100000},
		{"zero", 0, 0},
		{"paise precision", 19.99, 1999},
		{"half paisa rounds", 0.005, 1},
		{"float-hostile sum", 0.1 + 0.2, 30},
		{"large total", 249999.99, 24999999},
		{"single paisa", 0.01, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToMinorUnits(tt.amount))
		})
	}
}

func TestFromMinorUnits(t *testing.T) {
	assert.Equal(t, 1000.0, FromMinorUnits(100000))
	assert.Equal(t, 19.99, FromMinorUnits(1999))
	assert.Equal(t, 0.0, FromMinorUnits(0))
}

// The conversion must be applied exactly once end to end: converting and
// converting back is the identity for any paise-precision amount.
func TestMinorUnitsRoundTrip(t *testing.T) {
	for _, amount := range []float64{0.01, 1, 99.95, 1000, 123456.78} {
		assert.Equal(t, amount, FromMinorUnits(ToMinorUnits(amount)), "amount %v", amount)
	}
}
