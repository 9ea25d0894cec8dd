// Package growth produces the monthly multiplicative growth factors
// that drive home appreciation, rent inflation and market returns.
package growth

import (
	"math"
	"math/rand"
	"time"
)

// Generator samples growth paths from a single random source. The
// source is injectable so tests can pin a seed; passing nil seeds from
// the wall clock, so reproducibility across runs is not guaranteed
// unless the caller provides a seeded source.
type Generator struct {
	rng *rand.Rand
}

func New(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng}
}

// Paths returns a pathCount x months matrix of multiplicative monthly
// factors for a process with the given annual mean and volatility, both
// in percent.
//
// Deterministic mode (stochastic=false) forces a single path whose
// every entry is 1 + meanAnnualPct/100/12. Stochastic mode draws each
// entry independently from a normal distribution with that mean and
// standard deviation (volAnnualPct/100)/sqrt(12), annual volatility
// scaled to monthly by square root of time. Factors are not clamped, so
// an extreme draw can produce a negative factor.
func (g *Generator) Paths(meanAnnualPct, volAnnualPct float64, months, pathCount int, stochastic bool) [][]float64 {
	monthlyMean := meanAnnualPct / 100 / 12

	if !stochastic {
		path := make([]float64, months)
		for m := range path {
			path[m] = 1 + monthlyMean
		}
		return [][]float64{path}
	}

	monthlyVol := (volAnnualPct / 100) / math.Sqrt(12)
	paths := make([][]float64, pathCount)
	for i := range paths {
		path := make([]float64, months)
		for m := range path {
			path[m] = 1 + monthlyMean + g.rng.NormFloat64()*monthlyVol
		}
		paths[i] = path
	}
	return paths
}
