// Package engine runs the rent-versus-buy projection: a deterministic
// baseline over the fixed 30-year horizon, optionally a Monte Carlo
// batch over randomized growth paths, reduced to yearly series,
// percentile bands and win-rate statistics.
package engine

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"rentbuy-engine/internal/growth"
	"rentbuy-engine/internal/model"
	"rentbuy-engine/internal/schedule"
)

// Process runs the full analysis for a validated request. It is a pure
// batch computation: no I/O, no shared state across invocations, and no
// error path: degenerate parameters produce degenerate-but-defined
// results.
func Process(req *model.AnalysisRequest) *model.AnalysisResponse {
	start := time.Now()

	sc := req.Scenario()
	sched := schedule.Build(sc)

	var rng *rand.Rand
	if req.Seed != 0 {
		rng = rand.New(rand.NewSource(req.Seed))
	}
	gen := growth.New(rng)

	baseline := Simulate(sc, sched,
		gen.Paths(sc.HomeGrowth, sc.HomeVolatility, model.HorizonMonths, 1, false),
		gen.Paths(sc.RentGrowth, sc.RentVolatility, model.HorizonMonths, 1, false),
		gen.Paths(sc.StockGrowth, sc.StockVolatility, model.HorizonMonths, 1, false),
	)

	var mc *Simulation
	paths := 1
	if req.MonteCarlo {
		paths = req.PathCount()
		mc = Simulate(sc, sched,
			gen.Paths(sc.HomeGrowth, sc.HomeVolatility, model.HorizonMonths, paths, true),
			gen.Paths(sc.RentGrowth, sc.RentVolatility, model.HorizonMonths, paths, true),
			gen.Paths(sc.StockGrowth, sc.StockVolatility, model.HorizonMonths, paths, true),
		)
	}

	result := Aggregate(baseline, mc)

	elapsed := time.Since(start)
	now := time.Now().UTC()

	return &model.AnalysisResponse{
		AnalysisMetadata: model.AnalysisMetadata{
			AnalysisID:          uuid.New().String(),
			AnalysisStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			AnalysisCompletedAt: now.Format(time.RFC3339),
			AnalysisDurationMs:  elapsed.Milliseconds(),
			MonteCarlo:          req.MonteCarlo,
			Paths:               paths,
		},
		AnalysisResult: result,
	}
}
