package collateral

import (
	"fmt"
	"math"
	"math/rand"
)

// PoolConfig describes the synthetic collateral pool to generate. A
// production variant would read a loan tape instead; the factory and its
// consumers only depend on the resulting []*Mortgage.
type PoolConfig struct {
	// LoanCount is the number of loans in the pool.
	LoanCount int
	// MinPrincipal / MaxPrincipal bound the uniform per-loan size draw.
	MinPrincipal float64
	MaxPrincipal float64
	// RateMean / RateStdDev parameterize the Gaussian note-rate draw.
	RateMean   float64
	RateStdDev float64
	// RateFloor keeps drawn rates strictly positive (the annuity formula
	// is undefined at rate 0).
	RateFloor float64
	// TermMonths is the original term applied to every loan.
	TermMonths int
}

// DefaultPoolConfig is the example pool: 400 loans for roughly 100mm of
// notional, sized U(180k, 320k) at rates N(4.5%, 0.5%) floored at 1%.
var DefaultPoolConfig = PoolConfig{
	LoanCount:    400,
	MinPrincipal: 180_000,
	MaxPrincipal: 320_000,
	RateMean:     0.045,
	RateStdDev:   0.005,
	RateFloor:    0.01,
	TermMonths:   360,
}

// Validate checks the pool configuration is usable.
func (p PoolConfig) Validate() error {
	if p.LoanCount <= 0 {
		return fmt.Errorf("PoolConfig: LoanCount must be positive, got %d", p.LoanCount)
	}
	if p.MinPrincipal <= 0 || p.MaxPrincipal < p.MinPrincipal {
		return fmt.Errorf("PoolConfig: principal range [%v, %v] is invalid", p.MinPrincipal, p.MaxPrincipal)
	}
	if p.RateFloor <= 0 {
		return fmt.Errorf("PoolConfig: RateFloor must be positive, got %v", p.RateFloor)
	}
	if p.TermMonths <= 0 {
		return fmt.Errorf("PoolConfig: TermMonths must be positive, got %d", p.TermMonths)
	}
	return nil
}

// GeneratePool draws a fresh pool of loans from cfg using rng. Each loan's
// principal and rate are drawn independently; pool composition is fixed per
// run but realized values differ per path.
func GeneratePool(rng *rand.Rand, cfg PoolConfig) ([]*Mortgage, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("GeneratePool: %w", err)
	}

	pool := make([]*Mortgage, 0, cfg.LoanCount)
	for i := 0; i < cfg.LoanCount; i++ {
		principal := cfg.MinPrincipal + rng.Float64()*(cfg.MaxPrincipal-cfg.MinPrincipal)
		rate := math.Max(cfg.RateFloor, cfg.RateMean+rng.NormFloat64()*cfg.RateStdDev)

		m, err := NewMortgage(principal, rate, cfg.TermMonths)
		if err != nil {
			return nil, fmt.Errorf("GeneratePool: loan %d: %w", i, err)
		}
		pool = append(pool, m)
	}
	return pool, nil
}

// AnyAlive reports whether at least one loan in the pool is still active.
func AnyAlive(pool []*Mortgage) bool {
	for _, m := range pool {
		if m.Alive {
			return true
		}
	}
	return false
}

// PoolSummary holds descriptive statistics over the active loans in a pool.
type PoolSummary struct {
	LoanCount    int
	AliveCount   int
	TotalBalance float64
	// WAC is the balance-weighted average coupon of alive loans.
	WAC float64
	// WAM is the balance-weighted average remaining months of alive loans.
	WAM float64
}

// Summarize computes pool-level stats. WAC/WAM are zero for an all-inert pool.
func Summarize(pool []*Mortgage) PoolSummary {
	s := PoolSummary{LoanCount: len(pool)}

	var rateWeighted, termWeighted float64
	for _, m := range pool {
		if !m.Alive {
			continue
		}
		s.AliveCount++
		s.TotalBalance += m.Balance
		rateWeighted += m.Balance * m.Rate
		termWeighted += m.Balance * float64(m.Remaining)
	}
	if s.TotalBalance > 0 {
		s.WAC = rateWeighted / s.TotalBalance
		s.WAM = termWeighted / s.TotalBalance
	}
	return s
}
