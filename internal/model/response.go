package model

type AnalysisResponse struct {
	AnalysisMetadata AnalysisMetadata `json:"analysis_metadata"`
	AnalysisResult   AnalysisResult   `json:"analysis_result"`
}

type AnalysisMetadata struct {
	AnalysisID          string `json:"analysis_id"`
	AnalysisStartedAt   string `json:"analysis_started_at"`
	AnalysisCompletedAt string `json:"analysis_completed_at"`
	AnalysisDurationMs  int64  `json:"analysis_duration_ms"`
	MonteCarlo          bool   `json:"monte_carlo"`
	Paths               int    `json:"paths"`
}

type AnalysisResult struct {
	Years             []int     `json:"years"`
	BuyNetWorth       []float64 `json:"buy_net_worth"`
	RentNetWorth      []float64 `json:"rent_net_worth"`
	FinalBuyNetWorth  float64   `json:"final_buy_net_worth"`
	FinalRentNetWorth float64   `json:"final_rent_net_worth"`

	// Monte Carlo statistics; omitted on deterministic-only runs.
	BuyWinsPct       *float64    `json:"buy_wins_pct,omitempty"`
	RentWinsPct      *float64    `json:"rent_wins_pct,omitempty"`
	BuyNetWorthBand  *BandSeries `json:"buy_nw_range,omitempty"`
	RentNetWorthBand *BandSeries `json:"rent_nw_range,omitempty"`

	YearlyDetails []YearlyDetail `json:"yearly_details"`
}

// BandSeries is a per-year percentile band across Monte Carlo paths.
type BandSeries struct {
	Low  []float64 `json:"low"`
	High []float64 `json:"high"`
}

// YearlyDetail is the per-year breakdown of the deterministic run.
// The *Paid fields cover only the twelve months of that year.
type YearlyDetail struct {
	Year          int     `json:"year"`
	HomeValue     float64 `json:"home_value"`
	LoanBalance   float64 `json:"loan_balance"`
	HomeEquity    float64 `json:"home_equity"`
	PrincipalPaid float64 `json:"principal_paid"`
	InterestPaid  float64 `json:"interest_paid"`
	TaxPaid       float64 `json:"tax_paid"`
	InsurancePaid float64 `json:"insurance_paid"`
	HOAPaid       float64 `json:"hoa_paid"`
	RentPaid      float64 `json:"rent_paid"`
	BuyNetWorth   float64 `json:"buy_net_worth"`
	RentNetWorth  float64 `json:"rent_net_worth"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
