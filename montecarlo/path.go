// Package montecarlo drives collateral simulation paths through the
// waterfall and averages discounted tranche proceeds across paths.
package montecarlo

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/TimothyAndrewChowles/Mortgage-Backed-Security/collateral"
	"github.com/TimothyAndrewChowles/Mortgage-Backed-Security/config"
	"github.com/TimothyAndrewChowles/Mortgage-Backed-Security/waterfall"
)

// PathParams fully specifies one simulation path (and, with RunParams, a
// whole Monte Carlo run).
type PathParams struct {
	// Pool describes the synthetic collateral generated fresh per path.
	Pool collateral.PoolConfig
	// Structure is the tranche template; each path works on a value copy.
	Structure []waterfall.Tranche
	// Months is the projection horizon N; the path ends at month N at the
	// latest, earlier if every loan has paid off or defaulted. Zero means
	// the configured default horizon (config.GetConfig().HorizonMonths).
	Months int
	// Assumptions are the constant annualized CPR/CDR/recovery inputs.
	Assumptions collateral.Assumptions
	// DiscountRate is the flat annualized discount rate; receipts in month
	// m are discounted at (1 + DiscountRate/12)^m.
	DiscountRate float64
}

// Validate checks path parameters before simulation.
func (p PathParams) Validate() error {
	if err := p.Pool.Validate(); err != nil {
		return err
	}
	if len(p.Structure) == 0 {
		return fmt.Errorf("PathParams: Structure is required")
	}
	if p.Months < 0 {
		return fmt.Errorf("PathParams: Months must be non-negative, got %d", p.Months)
	}
	if err := p.Assumptions.Validate(); err != nil {
		return err
	}
	if p.DiscountRate < 0 {
		return fmt.Errorf("PathParams: DiscountRate must be non-negative, got %v", p.DiscountRate)
	}
	return nil
}

// PricePath runs one Monte Carlo path: generates a fresh pool, projects
// monthly collateral cashflows, routes them through the waterfall
// (losses, then interest top-down, then sequential principal), and
// discounts each tranche's monthly receipts into a present value.
//
// The returned map (tranche name -> accumulated PV) is owned by the caller.
func PricePath(rng *rand.Rand, p PathParams) (map[string]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("PricePath: %w", err)
	}
	if p.Months == 0 {
		p.Months = config.GetConfig().HorizonMonths
	}

	pool, err := collateral.GeneratePool(rng, p.Pool)
	if err != nil {
		return nil, fmt.Errorf("PricePath: %w", err)
	}

	tranches := waterfall.CopyStructure(p.Structure)
	pv := make(map[string]float64, len(tranches))
	for _, t := range tranches {
		pv[t.Name] = 0
	}
	monthlyDisc := p.DiscountRate / 12.0

	for month := 1; month <= p.Months; month++ {
		if !collateral.AnyAlive(pool) {
			break
		}

		var total collateral.Cashflow
		for _, m := range pool {
			total.Add(m.Step(rng, p.Assumptions))
		}

		// Losses first: defaults realized this period hit the structure
		// before any cash moves.
		waterfall.AllocateLosses(total.Loss, tranches)

		interestPaid, leftover := waterfall.PayInterest(total.Interest, tranches)
		principalPaid := waterfall.PayPrincipal(total.Principal+leftover, tranches)

		discount := math.Pow(1+monthlyDisc, float64(month))
		for i, t := range tranches {
			pv[t.Name] += (interestPaid[i] + principalPaid[i]) / discount
		}
	}

	return pv, nil
}
