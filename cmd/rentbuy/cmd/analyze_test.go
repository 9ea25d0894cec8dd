package cmd

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"

	"rentbuy-engine/internal/model"
)

const scenarioTOML = `home_price = 500000.0
down_payment_pct = 20.0
initial_rate = 6.5
current_rent = 1000.0
home_price_growth = 3.5
rent_growth = 3.0
stock_growth = 8.0
hoa_fees = 150.0
property_tax_rate = 1.2
insurance_rate = 0.5
`

func TestAnalyzeCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.toml")
	if err := os.WriteFile(path, []byte(scenarioTOML), 0o644); err != nil {
		t.Fatalf("write scenario: %v", err)
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"analyze", "--scenario", path})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("analyze failed: %v\n%s", err, out.String())
	}

	var resp model.AnalysisResponse
	if err := json.Unmarshal(out.Bytes(), &resp); err != nil {
		t.Fatalf("output did not decode as a result record: %v", err)
	}
	if math.Abs(resp.AnalysisResult.FinalBuyNetWorth-1426643.58) > 1 {
		t.Fatalf("expected final buy net worth ~1426643.58, got %.2f", resp.AnalysisResult.FinalBuyNetWorth)
	}
}

func TestAnalyzeCommandMissingFile(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"analyze", "--scenario", filepath.Join(t.TempDir(), "absent.toml")})

	if err := rootCmd.Execute(); err == nil {
		t.Fatal("expected an error for a missing scenario file")
	}
}
