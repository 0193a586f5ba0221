// Package services holds the pricing engine, validation rules, Excel and PDF
// workbook generation, and the record-backed material and calculation
// operations.
package services

import "github.com/shopspring/decimal"

// Monetary arithmetic runs through shopspring/decimal with rounding to 2
// decimal places after every step. Chained per-step rounding (rather than a
// single round at the end) keeps a recomputed total byte-identical to the
// stored one, so totals stay stable across repricing runs.

// MultiplyPrice returns unitPrice * area rounded to 2 decimal places,
// half away from zero.
func MultiplyPrice(unitPrice, area float64) float64 {
	p := decimal.NewFromFloat(unitPrice)
	a := decimal.NewFromFloat(area)
	v, _ := p.Mul(a).Round(2).Float64()
	return v
}

// SumAmounts adds the values left to right, rounding to 2 decimal places
// after each addition.
func SumAmounts(values ...float64) float64 {
	sum := decimal.Zero
	for _, v := range values {
		sum = sum.Add(decimal.NewFromFloat(v)).Round(2)
	}
	out, _ := sum.Float64()
	return out
}

// RoundAmount rounds a single value to 2 decimal places, half away from zero.
func RoundAmount(v float64) float64 {
	out, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return out
}
