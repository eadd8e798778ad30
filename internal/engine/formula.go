// Package engine implements the sequential comparable-sales adjustment
// pipeline: six ordered stages per comparable, threshold validation, weighted
// reconciliation, and rate sensitivity analysis.
package engine

import (
	"math"
	"time"
)

// daysPerYear converts a calendar span to fractional years for the compound
// time adjustment.
const daysPerYear = 365.25

// yearsBetween returns the fractional years from a sale date to the valuation
// date.
func yearsBetween(saleDate, valuationDate time.Time) float64 {
	return valuationDate.Sub(saleDate).Hours() / 24 / daysPerYear
}

// compoundGrowth returns the compound appreciation factor for an annual rate
// in percent over fractional years. Compound, not simple: the market stage's
// correctness depends on it.
func compoundGrowth(annualRatePct, years float64) float64 {
	return math.Pow(1+annualRatePct/100, years)
}

// annuityFactor is the present value of an ordinary annuity of 1 per year for
// termYears at the given decimal rate.
func annuityFactor(rate, termYears float64) float64 {
	if rate == 0 {
		return termYears
	}
	return (1 - math.Pow(1+rate, -termYears)) / rate
}

// round2 rounds to cents for output values.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
