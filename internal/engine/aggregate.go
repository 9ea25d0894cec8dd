package engine

import (
	"math"
	"sort"

	"rentbuy-engine/internal/model"
)

// Percentile band reported for Monte Carlo runs; 16th/84th is a
// one-standard-deviation proxy under normality.
const (
	PercentileLow  = 16.0
	PercentileHigh = 84.0
)

// Aggregate reduces the simulated paths to the caller-facing result:
// the deterministic yearly series, the per-year breakdown, and, when mc
// is non-nil, percentile bands and the horizon win rate across the
// Monte Carlo population. baseline must hold exactly one path.
func Aggregate(baseline, mc *Simulation) model.AnalysisResult {
	years := make([]int, model.HorizonYears+1)
	buyNW := make([]float64, model.HorizonYears+1)
	rentNW := make([]float64, model.HorizonYears+1)
	for y := 0; y <= model.HorizonYears; y++ {
		years[y] = y
		buyNW[y] = baseline.BuyNetWorth[0][y*12]
		rentNW[y] = baseline.RentNetWorth[0][y*12]
	}

	details := make([]model.YearlyDetail, 0, model.HorizonYears)
	for y := 1; y <= model.HorizonYears; y++ {
		m := y * 12
		totals := baseline.Totals[0][y-1]
		details = append(details, model.YearlyDetail{
			Year:          y,
			HomeValue:     baseline.HomeValues[0][m],
			LoanBalance:   baseline.LoanBalances[0][m],
			HomeEquity:    baseline.HomeValues[0][m] - baseline.LoanBalances[0][m],
			PrincipalPaid: totals.Principal,
			InterestPaid:  totals.Interest,
			TaxPaid:       totals.Tax,
			InsurancePaid: totals.Insurance,
			HOAPaid:       totals.HOA,
			RentPaid:      totals.Rent,
			BuyNetWorth:   baseline.BuyNetWorth[0][m],
			RentNetWorth:  baseline.RentNetWorth[0][m],
		})
	}

	result := model.AnalysisResult{
		Years:             years,
		BuyNetWorth:       buyNW,
		RentNetWorth:      rentNW,
		FinalBuyNetWorth:  buyNW[model.HorizonYears],
		FinalRentNetWorth: rentNW[model.HorizonYears],
		YearlyDetails:     details,
	}

	if mc != nil {
		result.BuyNetWorthBand = yearlyBand(mc.BuyNetWorth)
		result.RentNetWorthBand = yearlyBand(mc.RentNetWorth)

		buyWins := winRate(mc)
		rentWins := 100 - buyWins
		result.BuyWinsPct = &buyWins
		result.RentWinsPct = &rentWins
	}

	return result
}

// yearlyBand computes the [PercentileLow, PercentileHigh] band of the
// given net-worth series across paths at each 12-month boundary.
func yearlyBand(series [][]float64) *model.BandSeries {
	band := &model.BandSeries{
		Low:  make([]float64, model.HorizonYears+1),
		High: make([]float64, model.HorizonYears+1),
	}
	values := make([]float64, len(series))
	for y := 0; y <= model.HorizonYears; y++ {
		m := y * 12
		for p := range series {
			values[p] = series[p][m]
		}
		sort.Float64s(values)
		band.Low[y] = percentile(values, PercentileLow)
		band.High[y] = percentile(values, PercentileHigh)
	}
	return band
}

// winRate is the percentage of paths whose final buy net worth exceeds
// the final rent net worth.
func winRate(mc *Simulation) float64 {
	wins := 0
	for p := 0; p < mc.Paths; p++ {
		if mc.BuyNetWorth[p][model.HorizonMonths] > mc.RentNetWorth[p][model.HorizonMonths] {
			wins++
		}
	}
	return float64(wins) / float64(mc.Paths) * 100
}

// percentile interpolates linearly between the order statistics of
// sorted, for p in [0, 100].
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	rank := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	return sorted[lo] + (rank-float64(lo))*(sorted[hi]-sorted[lo])
}
