package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePrice(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr error
	}{
		{"12.5", "12.50", nil},
		{"12.50", "12.50", nil},
		{" 3 ", "3.00", nil},
		{"0", "0.00", nil},
		{"0.10", "0.10", nil},
		{"1.005", "", ErrPricePrecision},
		{"-1", "", ErrNegativePrice},
		{"", "", ErrInvalidPrice},
		{"1e400x", "", ErrInvalidPrice},
		{"twelve", "", ErrInvalidPrice},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NormalizePrice(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizePriceModifier_AllowsNegative(t *testing.T) {
	got, err := NormalizePriceModifier("-0.5")

	require.NoError(t, err)
	assert.Equal(t, "-0.50", got)
}

func TestFinalPrice(t *testing.T) {
	// 0.1 + 0.2 is exact in decimal arithmetic.
	got, err := FinalPrice("0.10", "0.20")
	require.NoError(t, err)
	assert.Equal(t, "0.30", got)

	got, err = FinalPrice("2.00", "-2.00")
	require.NoError(t, err)
	assert.Equal(t, "0.00", got)

	_, err = FinalPrice("2.00", "-2.01")
	assert.ErrorIs(t, err, ErrNegativePrice)
}

func TestPriceVariant(t *testing.T) {
	v := ProductVariant{ID: "v1", Name: "Large", PriceModifier: "0.50"}

	pv, err := PriceVariant(v, "12.50")

	require.NoError(t, err)
	assert.Equal(t, "13.00", pv.FinalPrice)
	assert.Equal(t, "v1", pv.ID)
}
