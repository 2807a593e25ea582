package montecarlo

import (
	"fmt"
	"math/rand"

	"github.com/TimothyAndrewChowles/Mortgage-Backed-Security/waterfall"
)

// RunParams specifies a full Monte Carlo run.
type RunParams struct {
	Path PathParams
	// Runs is the number of independent paths to average over.
	Runs int
}

// Result is the averaged output of a Monte Carlo run.
type Result struct {
	// AvgPV maps tranche name to mean present value across paths.
	AvgPV map[string]float64
	// Order lists tranche names in seniority order, since AvgPV iteration
	// order is unspecified.
	Order []string
	// Runs is the number of paths averaged.
	Runs int
}

// Run prices the deal by repeating PricePath over independent paths — each
// with a freshly drawn pool and a fresh tranche copy — and averaging the
// per-tranche present values.
//
// Run draws from rng but never seeds it; the caller controls reproducibility
// by seeding before invoking.
func Run(rng *rand.Rand, p RunParams) (Result, error) {
	if p.Runs <= 0 {
		return Result{}, fmt.Errorf("Run: Runs must be positive, got %d", p.Runs)
	}
	if err := p.Path.Validate(); err != nil {
		return Result{}, fmt.Errorf("Run: %w", err)
	}

	aggregate := make(map[string]float64, len(p.Path.Structure))
	for _, t := range p.Path.Structure {
		aggregate[t.Name] = 0
	}

	for i := 0; i < p.Runs; i++ {
		pv, err := PricePath(rng, p.Path)
		if err != nil {
			return Result{}, fmt.Errorf("Run: path %d: %w", i, err)
		}
		for name, v := range pv {
			aggregate[name] += v
		}
	}

	for name := range aggregate {
		aggregate[name] /= float64(p.Runs)
	}

	return Result{
		AvgPV: aggregate,
		Order: waterfall.Names(p.Path.Structure),
		Runs:  p.Runs,
	}, nil
}
