// Package fincalc holds the closed-form amortization identities the
// schedulers and simulator are built on. Rates are annual percentages
// (6.5 means 6.5%). Every function is total over its real-valued
// domain: degenerate inputs yield boundary values, never errors.
package fincalc

import "math"

// FixedPayment returns the level monthly payment that retires
// principal over termYears at annualRatePct. A non-positive term or
// principal means nothing is left to amortize, so the payment is zero.
// A zero rate degrades to straight-line repayment.
func FixedPayment(principal, annualRatePct float64, termYears int) float64 {
	if termYears <= 0 || principal <= 0 {
		return 0
	}
	n := float64(termYears * 12)
	if annualRatePct == 0 {
		return principal / n
	}
	r := annualRatePct / 12 / 100
	pow := math.Pow(1+r, n)
	return principal * (r * pow) / (pow - 1)
}

// RemainingBalance returns the outstanding principal after monthsPaid
// scheduled payments on the original rate and term. The result is
// floored at zero: a loan cannot be overpaid past payoff. This is the
// balance a refinance boundary operates on, evaluated with the
// pre-refinance rate and term.
func RemainingBalance(principal, annualRatePct float64, termYears, monthsPaid int) float64 {
	if monthsPaid == 0 {
		return principal
	}
	if termYears <= 0 || principal <= 0 {
		return 0
	}
	n := float64(termYears * 12)

	var balance float64
	if annualRatePct == 0 {
		balance = principal - (principal/n)*float64(monthsPaid)
	} else {
		r := annualRatePct / 12 / 100
		powN := math.Pow(1+r, n)
		powM := math.Pow(1+r, float64(monthsPaid))
		balance = principal * (powN - powM) / (powN - 1)
	}
	return math.Max(balance, 0)
}
