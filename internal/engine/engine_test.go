package engine

import (
	"math"
	"testing"

	"rentbuy-engine/internal/model"
)

func TestProcessDeterministic(t *testing.T) {
	req := baselineRequest()
	resp := Process(req)

	meta := resp.AnalysisMetadata
	if meta.AnalysisID == "" {
		t.Fatal("expected an analysis id")
	}
	if meta.MonteCarlo {
		t.Fatal("metadata should record a deterministic-only run")
	}
	if meta.Paths != 1 {
		t.Fatalf("expected 1 path, got %d", meta.Paths)
	}

	result := resp.AnalysisResult
	if len(result.Years) != 31 || len(result.BuyNetWorth) != 31 || len(result.RentNetWorth) != 31 {
		t.Fatalf("expected 31-entry yearly series, got %d/%d/%d",
			len(result.Years), len(result.BuyNetWorth), len(result.RentNetWorth))
	}
	if math.Abs(result.FinalBuyNetWorth-1426643.58) > 1 {
		t.Fatalf("expected final buy net worth ~1426643.58, got %.2f", result.FinalBuyNetWorth)
	}
	if math.Abs(result.FinalRentNetWorth-4576277.18) > 1 {
		t.Fatalf("expected final rent net worth ~4576277.18, got %.2f", result.FinalRentNetWorth)
	}
	if result.BuyWinsPct != nil {
		t.Fatal("deterministic run should not report a win rate")
	}
	if len(result.YearlyDetails) != 30 {
		t.Fatalf("expected 30 yearly detail rows, got %d", len(result.YearlyDetails))
	}
}

func TestProcessMonteCarloZeroVolatility(t *testing.T) {
	// With volatility forced to zero, every sampled path reproduces the
	// deterministic run and the win rate is degenerate.
	zero := 0.0
	req := baselineRequest()
	req.HomeVolatility = &zero
	req.RentVolatility = &zero
	req.StockVolatility = &zero
	req.MonteCarlo = true
	req.Paths = 32
	req.Seed = 7

	resp := Process(req)

	meta := resp.AnalysisMetadata
	if !meta.MonteCarlo || meta.Paths != 32 {
		t.Fatalf("expected Monte Carlo metadata with 32 paths, got %+v", meta)
	}

	result := resp.AnalysisResult
	if result.BuyNetWorthBand == nil || result.RentNetWorthBand == nil {
		t.Fatal("expected percentile bands")
	}
	for y := range result.Years {
		if math.Abs(result.BuyNetWorthBand.Low[y]-result.BuyNetWorth[y]) > 1e-6 {
			t.Fatalf("year %d: zero-volatility band diverges from the deterministic series", y)
		}
		if math.Abs(result.RentNetWorthBand.High[y]-result.RentNetWorth[y]) > 1e-6 {
			t.Fatalf("year %d: zero-volatility band diverges from the deterministic series", y)
		}
	}
	if result.BuyWinsPct == nil {
		t.Fatal("expected a win rate")
	}
	if *result.BuyWinsPct != 0 && *result.BuyWinsPct != 100 {
		t.Fatalf("zero-volatility win rate must be 0 or 100, got %.2f", *result.BuyWinsPct)
	}
	if *result.BuyWinsPct+*result.RentWinsPct != 100 {
		t.Fatalf("win rates must sum to 100, got %.2f + %.2f", *result.BuyWinsPct, *result.RentWinsPct)
	}
}

func TestProcessSeedReproducible(t *testing.T) {
	build := func() *model.AnalysisRequest {
		req := baselineRequest()
		req.MonteCarlo = true
		req.Paths = 16
		req.Seed = 42
		return req
	}

	a := Process(build()).AnalysisResult
	b := Process(build()).AnalysisResult

	if *a.BuyWinsPct != *b.BuyWinsPct {
		t.Fatalf("same seed produced win rates %.2f and %.2f", *a.BuyWinsPct, *b.BuyWinsPct)
	}
	for y := range a.Years {
		if a.BuyNetWorthBand.Low[y] != b.BuyNetWorthBand.Low[y] ||
			a.BuyNetWorthBand.High[y] != b.BuyNetWorthBand.High[y] {
			t.Fatalf("year %d: same seed produced different bands", y)
		}
	}
}

func TestProcessDegenerateScenario(t *testing.T) {
	// A zero home price means a zero loan and zero payments: the engine
	// degrades to defined values instead of failing. Owning costs
	// nothing here, so the buyer banks the avoided rent every month.
	req := &model.AnalysisRequest{CurrentRent: 1000}
	resp := Process(req)

	result := resp.AnalysisResult
	if math.Abs(result.FinalBuyNetWorth-360000) > 1e-6 {
		t.Fatalf("expected the buyer to bank 360 months of avoided rent, got %.4f", result.FinalBuyNetWorth)
	}
	if result.FinalRentNetWorth != 0 {
		t.Fatalf("renter has nothing to invest in an empty scenario, got %.4f", result.FinalRentNetWorth)
	}
}
