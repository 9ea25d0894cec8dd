package model

import (
	"errors"
	"fmt"
)

// The projection horizon is fixed: every schedule and path series in
// the engine is sized from these two constants.
const (
	HorizonYears  = 30
	HorizonMonths = HorizonYears * 12
)

// Defaults applied when the corresponding optional field is absent.
const (
	DefaultStockVolatility = 15.0
	DefaultHomeVolatility  = 5.0
	DefaultRentVolatility  = 5.0
	DefaultPaths           = 2000
)

// ErrInvalidConfiguration is the only error class surfaced to callers.
// It is raised at the boundary, before parameters reach the engine;
// the engine itself never fails.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// AnalysisRequest is the flat parameter record accepted at the process
// boundary. All rates, growth figures and volatilities are annual
// percentages (6.5 means 6.5%); the engine derives monthly equivalents.
// Pointer fields are optional with non-zero defaults; nil means the
// field was not provided, which is distinct from an explicit zero.
type AnalysisRequest struct {
	HomePrice         float64  `json:"home_price" toml:"home_price"`
	DownPaymentPct    float64  `json:"down_payment_pct" toml:"down_payment_pct"`
	DownPaymentAmount float64  `json:"down_payment_amount" toml:"down_payment_amount"`
	InitialRate       float64  `json:"initial_rate" toml:"initial_rate"`
	CurrentRent       float64  `json:"current_rent" toml:"current_rent"`
	HomePriceGrowth   float64  `json:"home_price_growth" toml:"home_price_growth"`
	RentGrowth        float64  `json:"rent_growth" toml:"rent_growth"`
	StockGrowth       float64  `json:"stock_growth" toml:"stock_growth"`
	HomeVolatility    *float64 `json:"home_volatility" toml:"home_volatility"`
	RentVolatility    *float64 `json:"rent_volatility" toml:"rent_volatility"`
	StockVolatility   *float64 `json:"stock_volatility" toml:"stock_volatility"`
	HOAFees           float64  `json:"hoa_fees" toml:"hoa_fees"`
	PropertyTaxRate   float64  `json:"property_tax_rate" toml:"property_tax_rate"`
	InsuranceRate     float64  `json:"insurance_rate" toml:"insurance_rate"`
	ClosingCostsPct   float64  `json:"closing_costs_pct" toml:"closing_costs_pct"`
	ClosingCosts      float64  `json:"closing_costs" toml:"closing_costs"`

	// One-time refinance event; year 0 disables it.
	RefinanceYear  int     `json:"refinance_year" toml:"refinance_year"`
	RefinanceRate  float64 `json:"refinance_rate" toml:"refinance_rate"`
	RefinanceCosts float64 `json:"refinance_costs" toml:"refinance_costs"`

	// One-time move to a costlier rental; year 0 disables it. The new
	// base rent is either an absolute figure in today's dollars or a
	// multiplier on the current rent.
	MoveToLargerYear     int     `json:"move_to_larger_year" toml:"move_to_larger_year"`
	NewRentToday         float64 `json:"new_rent_today" toml:"new_rent_today"`
	LargerRentMultiplier float64 `json:"larger_rent_multiplier" toml:"larger_rent_multiplier"`

	// Simulation controls. Paths 0 means DefaultPaths; Seed 0 means an
	// unseeded (time-based) random source.
	MonteCarlo bool  `json:"monte_carlo" toml:"monte_carlo"`
	Paths      int   `json:"paths" toml:"paths"`
	Seed       int64 `json:"seed" toml:"seed"`
}

// Validate checks the raw parameters once at the boundary. Degenerate
// but well-defined inputs (zero price, zero rates) pass; only
// configurations with no defined meaning are rejected.
func (r *AnalysisRequest) Validate() error {
	nonNegative := []struct {
		name  string
		value float64
	}{
		{"home_price", r.HomePrice},
		{"down_payment_pct", r.DownPaymentPct},
		{"down_payment_amount", r.DownPaymentAmount},
		{"initial_rate", r.InitialRate},
		{"current_rent", r.CurrentRent},
		{"hoa_fees", r.HOAFees},
		{"property_tax_rate", r.PropertyTaxRate},
		{"insurance_rate", r.InsuranceRate},
		{"closing_costs_pct", r.ClosingCostsPct},
		{"closing_costs", r.ClosingCosts},
		{"refinance_rate", r.RefinanceRate},
		{"refinance_costs", r.RefinanceCosts},
		{"new_rent_today", r.NewRentToday},
		{"larger_rent_multiplier", r.LargerRentMultiplier},
	}
	for _, f := range nonNegative {
		if f.value < 0 {
			return fmt.Errorf("%w: %s must not be negative", ErrInvalidConfiguration, f.name)
		}
	}
	optional := []struct {
		name  string
		value *float64
	}{
		{"home_volatility", r.HomeVolatility},
		{"rent_volatility", r.RentVolatility},
		{"stock_volatility", r.StockVolatility},
	}
	for _, f := range optional {
		if f.value != nil && *f.value < 0 {
			return fmt.Errorf("%w: %s must not be negative", ErrInvalidConfiguration, f.name)
		}
	}

	if r.downPayment() > r.HomePrice {
		return fmt.Errorf("%w: down payment exceeds home price", ErrInvalidConfiguration)
	}
	if r.RefinanceYear < 0 || r.RefinanceYear >= HorizonYears {
		return fmt.Errorf("%w: refinance_year must be between 1 and %d (0 disables)", ErrInvalidConfiguration, HorizonYears-1)
	}
	if r.RefinanceYear > 0 && r.RefinanceRate == 0 {
		return fmt.Errorf("%w: refinance_year requires refinance_rate", ErrInvalidConfiguration)
	}
	if r.MoveToLargerYear < 0 || r.MoveToLargerYear >= HorizonYears {
		return fmt.Errorf("%w: move_to_larger_year must be between 1 and %d (0 disables)", ErrInvalidConfiguration, HorizonYears-1)
	}
	if r.MoveToLargerYear > 0 && r.NewRentToday == 0 && r.LargerRentMultiplier == 0 {
		return fmt.Errorf("%w: move_to_larger_year requires new_rent_today or larger_rent_multiplier", ErrInvalidConfiguration)
	}
	if r.Paths < 0 {
		return fmt.Errorf("%w: paths must not be negative", ErrInvalidConfiguration)
	}
	return nil
}

func (r *AnalysisRequest) downPayment() float64 {
	if r.DownPaymentAmount > 0 {
		return r.DownPaymentAmount
	}
	return r.HomePrice * r.DownPaymentPct / 100
}

func (r *AnalysisRequest) closingCosts() float64 {
	if r.ClosingCosts > 0 {
		return r.ClosingCosts
	}
	return r.HomePrice * r.ClosingCostsPct / 100
}

// PathCount resolves the number of Monte Carlo paths to simulate.
func (r *AnalysisRequest) PathCount() int {
	if r.Paths > 0 {
		return r.Paths
	}
	return DefaultPaths
}

// Scenario resolves the raw request into the immutable record the
// engine consumes: amount-or-percent alternatives collapsed, optional
// defaults filled in. Call Validate first.
func (r *AnalysisRequest) Scenario() Scenario {
	sc := Scenario{
		HomePrice:       r.HomePrice,
		DownPayment:     r.downPayment(),
		ClosingCosts:    r.closingCosts(),
		InitialRate:     r.InitialRate,
		CurrentRent:     r.CurrentRent,
		HomeGrowth:      r.HomePriceGrowth,
		RentGrowth:      r.RentGrowth,
		StockGrowth:     r.StockGrowth,
		HomeVolatility:  DefaultHomeVolatility,
		RentVolatility:  DefaultRentVolatility,
		StockVolatility: DefaultStockVolatility,
		HOAMonthly:      r.HOAFees,
		PropertyTaxRate: r.PropertyTaxRate,
		InsuranceRate:   r.InsuranceRate,
	}
	sc.LoanAmount = sc.HomePrice - sc.DownPayment

	if r.HomeVolatility != nil {
		sc.HomeVolatility = *r.HomeVolatility
	}
	if r.RentVolatility != nil {
		sc.RentVolatility = *r.RentVolatility
	}
	if r.StockVolatility != nil {
		sc.StockVolatility = *r.StockVolatility
	}

	if r.RefinanceYear > 0 {
		sc.RefinanceYear = r.RefinanceYear
		sc.RefinanceRate = r.RefinanceRate
		sc.RefinanceCost = r.RefinanceCosts
	}
	if r.MoveToLargerYear > 0 {
		sc.MoveYear = r.MoveToLargerYear
		if r.NewRentToday > 0 {
			sc.NewRent = r.NewRentToday
		} else {
			sc.NewRent = r.CurrentRent * r.LargerRentMultiplier
		}
	}
	return sc
}
