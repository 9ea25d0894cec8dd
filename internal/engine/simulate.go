package engine

import (
	"rentbuy-engine/internal/model"
	"rentbuy-engine/internal/schedule"
)

// YearTotals accumulates the cash actually paid during one year of one
// path. A fresh record starts at each year boundary.
type YearTotals struct {
	Principal float64
	Interest  float64
	Tax       float64
	Insurance float64
	HOA       float64
	Rent      float64
}

// Simulation holds the month-by-month state series of every simulated
// path. All slices are indexed [path][month] with month 0 carrying the
// initial state, and are owned exclusively by the Simulate call that
// produced them.
type Simulation struct {
	Paths int

	HomeValues   [][]float64
	LoanBalances [][]float64
	BuyInvested  [][]float64
	RentInvested [][]float64
	BuyNetWorth  [][]float64
	RentNetWorth [][]float64

	// Totals is indexed [path][year-1] for years 1..30.
	Totals [][]YearTotals
}

// Simulate advances the month-by-month recurrence across all paths in
// the supplied growth matrices. The three matrices must share the same
// path count; the recurrence never reads across paths, so deterministic
// (one path) and Monte Carlo (N paths) runs take the identical code
// path.
//
// Per month and path: grow the home value and the cumulative rent
// inflation multiplier; split the scheduled payment into interest and
// principal against the outstanding balance (all zero once the loan is
// exhausted); assess tax and insurance on the grown home value; grow
// both investment accounts by the market factor; then route the
// non-negative side of the owning-versus-renting cash-flow gap into the
// advantaged account. The disadvantaged side absorbs its shortfall
// rather than drawing down savings, so both accounts are non-decreasing
// except for the one-time refinance cost, which is deducted from the
// buyer's account at the boundary month and may drive it negative.
func Simulate(sc model.Scenario, sched *schedule.Schedule, home, rent, stock [][]float64) *Simulation {
	paths := len(stock)
	months := model.HorizonMonths

	sim := &Simulation{
		Paths:        paths,
		HomeValues:   makeSeries(paths, months),
		LoanBalances: makeSeries(paths, months),
		BuyInvested:  makeSeries(paths, months),
		RentInvested: makeSeries(paths, months),
		BuyNetWorth:  makeSeries(paths, months),
		RentNetWorth: makeSeries(paths, months),
		Totals:       make([][]YearTotals, paths),
	}

	taxRate := sc.PropertyTaxRate / 100
	insRate := sc.InsuranceRate / 100

	for p := 0; p < paths; p++ {
		homeValue := sc.HomePrice
		balance := sc.LoanAmount
		buyInvested := 0.0
		rentInvested := sc.DownPayment + sc.ClosingCosts
		cumRentInflation := 1.0

		sim.HomeValues[p][0] = homeValue
		sim.LoanBalances[p][0] = balance
		sim.BuyInvested[p][0] = buyInvested
		sim.RentInvested[p][0] = rentInvested
		sim.BuyNetWorth[p][0] = homeValue - balance + buyInvested
		sim.RentNetWorth[p][0] = rentInvested

		totals := make([]YearTotals, 0, model.HorizonYears)
		var year YearTotals

		for m := 1; m <= months; m++ {
			homeValue *= home[p][m-1]
			cumRentInflation *= rent[p][m-1]
			rentDue := sched.BaseRent[m-1] * cumRentInflation

			monthlyRate := sched.RateAt(m) / 100 / 12
			payment := sched.Payments[m-1]
			var interest, principal float64
			if balance <= 0 {
				payment = 0
			} else {
				interest = balance * monthlyRate
				principal = payment - interest
			}
			balance -= principal
			if balance < 0 {
				balance = 0
			}

			tax := homeValue * taxRate / 12
			insurance := homeValue * insRate / 12
			owningCost := payment + tax + insurance + sc.HOAMonthly
			gap := rentDue - owningCost

			buyInvested *= stock[p][m-1]
			rentInvested *= stock[p][m-1]
			if gap > 0 {
				buyInvested += gap
			} else {
				rentInvested += -gap
			}
			if sched.RefinanceMonth > 0 && m == sched.RefinanceMonth {
				buyInvested -= sched.RefinanceCost
			}

			year.Principal += principal
			year.Interest += interest
			year.Tax += tax
			year.Insurance += insurance
			year.HOA += sc.HOAMonthly
			year.Rent += rentDue

			sim.HomeValues[p][m] = homeValue
			sim.LoanBalances[p][m] = balance
			sim.BuyInvested[p][m] = buyInvested
			sim.RentInvested[p][m] = rentInvested
			sim.BuyNetWorth[p][m] = homeValue - balance + buyInvested
			sim.RentNetWorth[p][m] = rentInvested

			if m%12 == 0 {
				totals = append(totals, year)
				year = YearTotals{}
			}
		}
		sim.Totals[p] = totals
	}

	return sim
}

func makeSeries(paths, months int) [][]float64 {
	s := make([][]float64, paths)
	for i := range s {
		s[i] = make([]float64, months+1)
	}
	return s
}
