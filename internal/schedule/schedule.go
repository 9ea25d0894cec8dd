// Package schedule builds the deterministic monthly obligations, the
// mortgage payment sequence and the base rent sequence, including the
// one-time refinance and rent-upgrade events. A schedule is computed
// once per scenario and shared read-only across all simulated paths.
package schedule

import (
	"rentbuy-engine/internal/fincalc"
	"rentbuy-engine/internal/model"
)

// Schedule holds the month-indexed obligations for the full horizon.
// Payments[i] and BaseRent[i] apply to month i+1. BaseRent carries the
// level before inflation; the simulator multiplies in the cumulative
// rent-inflation factor each month.
type Schedule struct {
	Payments []float64
	BaseRent []float64

	// RefinanceMonth is the 1-based month at which the refinance cost is
	// due and after which the refinance rate applies; 0 means no
	// refinance.
	RefinanceMonth int
	RefinanceCost  float64

	initialRate   float64
	refinanceRate float64
}

// Build derives the payment and base-rent sequences from the scenario.
//
// If a refinance year is set, the remaining balance at that boundary is
// computed from the original rate and term, and a new fixed payment
// over the remaining 30-Y years at the refinance rate replaces the
// schedule from that month on. The refinance closing cost is not
// capitalized into the loan; the simulator deducts it from the buyer's
// investment account at the boundary month.
//
// If a move year is set, the base rent is replaced once from that
// month on. The replacement is a base level: rent inflation keeps
// compounding across the change rather than restarting.
func Build(sc model.Scenario) *Schedule {
	s := &Schedule{
		Payments:    make([]float64, model.HorizonMonths),
		BaseRent:    make([]float64, model.HorizonMonths),
		initialRate: sc.InitialRate,
	}

	basePayment := fincalc.FixedPayment(sc.LoanAmount, sc.InitialRate, model.HorizonYears)
	for i := range s.Payments {
		s.Payments[i] = basePayment
	}
	for i := range s.BaseRent {
		s.BaseRent[i] = sc.CurrentRent
	}

	if sc.RefinanceYear > 0 && sc.RefinanceYear < model.HorizonYears {
		s.RefinanceMonth = sc.RefinanceYear * 12
		s.RefinanceCost = sc.RefinanceCost
		s.refinanceRate = sc.RefinanceRate

		balance := fincalc.RemainingBalance(sc.LoanAmount, sc.InitialRate, model.HorizonYears, s.RefinanceMonth)
		newPayment := fincalc.FixedPayment(balance, sc.RefinanceRate, model.HorizonYears-sc.RefinanceYear)
		for i := s.RefinanceMonth; i < model.HorizonMonths; i++ {
			s.Payments[i] = newPayment
		}
	}

	if sc.MoveYear > 0 && sc.MoveYear < model.HorizonYears {
		for i := sc.MoveYear * 12; i < model.HorizonMonths; i++ {
			s.BaseRent[i] = sc.NewRent
		}
	}

	return s
}

// RateAt returns the annual mortgage rate in percent active during the
// given 1-based month. The refinance rate takes over strictly after the
// boundary month: the boundary month itself still pays at the original
// rate, matching the payment sequence.
func (s *Schedule) RateAt(month int) float64 {
	if s.RefinanceMonth > 0 && month > s.RefinanceMonth {
		return s.refinanceRate
	}
	return s.initialRate
}
