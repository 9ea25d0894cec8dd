package model

// Scenario is the resolved, immutable input record every engine
// component reads. Rates, growth means and volatilities stay in annual
// percent units; components derive monthly decimals where needed.
// Dollar figures (DownPayment, ClosingCosts, NewRent) are absolute.
type Scenario struct {
	HomePrice    float64
	DownPayment  float64
	LoanAmount   float64
	ClosingCosts float64

	InitialRate float64
	CurrentRent float64

	HomeGrowth      float64
	RentGrowth      float64
	StockGrowth     float64
	HomeVolatility  float64
	RentVolatility  float64
	StockVolatility float64

	HOAMonthly      float64
	PropertyTaxRate float64
	InsuranceRate   float64

	// RefinanceYear 0 means no refinance.
	RefinanceYear int
	RefinanceRate float64
	RefinanceCost float64

	// MoveYear 0 means no rent upgrade. NewRent is the replacement base
	// rent in today's dollars; cumulative rent inflation still applies.
	MoveYear int
	NewRent  float64
}
