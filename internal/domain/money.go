package domain

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// PriceScale is the number of fractional digits every stored price carries.
const PriceScale = 2

var (
	ErrInvalidPrice   = errors.New("price must be a decimal number")
	ErrPricePrecision = errors.New("price must have at most 2 decimal places")
	ErrNegativePrice  = errors.New("price must not be negative")
)

// ParsePrice parses a decimal string without ever passing through float64.
func ParsePrice(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrInvalidPrice
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidPrice
	}
	if !d.Equal(d.Round(PriceScale)) {
		return decimal.Zero, ErrPricePrecision
	}
	return d, nil
}

// NormalizePrice validates a non-negative price and renders it with exactly
// PriceScale digits, so "12.5" and "12.50" are stored as "12.50".
func NormalizePrice(s string) (string, error) {
	d, err := ParsePrice(s)
	if err != nil {
		return "", err
	}
	if d.IsNegative() {
		return "", ErrNegativePrice
	}
	return d.StringFixed(PriceScale), nil
}

// NormalizePriceModifier is NormalizePrice for signed adjustments.
func NormalizePriceModifier(s string) (string, error) {
	d, err := ParsePrice(s)
	if err != nil {
		return "", err
	}
	return d.StringFixed(PriceScale), nil
}

// FinalPrice adds a variant modifier to a product base price.
func FinalPrice(basePrice, modifier string) (string, error) {
	base, err := ParsePrice(basePrice)
	if err != nil {
		return "", err
	}
	mod, err := ParsePrice(modifier)
	if err != nil {
		return "", err
	}
	total := base.Add(mod)
	if total.IsNegative() {
		return "", ErrNegativePrice
	}
	return total.StringFixed(PriceScale), nil
}
