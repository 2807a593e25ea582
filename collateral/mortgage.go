package collateral

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/TimothyAndrewChowles/Mortgage-Backed-Security/config"
)

// Mortgage is a plain-vanilla fixed-rate amortizing loan.
//
// Balance, Remaining and Alive are mutated in place by Step; everything else
// is fixed at origination. Payment is computed once from the annuity formula
// and never recomputed.
type Mortgage struct {
	// Balance is the current outstanding principal.
	Balance float64
	// Rate is the annual note rate (e.g., 0.045 for 4.5%).
	Rate float64
	// Term is the original term in months.
	Term int
	// Remaining is the number of scheduled months left.
	Remaining int
	// Payment is the scheduled level monthly payment.
	Payment float64
	// Alive is false once the loan has defaulted or fully amortized.
	Alive bool
}

// Cashflow is one month of cash thrown off by a loan (or summed over a pool).
//
// Amounts are in currency units. Loss is the credit writedown realized this
// month, not a cash amount.
type Cashflow struct {
	Interest  float64
	Principal float64
	Loss      float64
}

// Total returns the cash portion of the flow (interest + principal).
func (c Cashflow) Total() float64 {
	return c.Interest + c.Principal
}

// Add accumulates another cashflow into this one.
func (c *Cashflow) Add(other Cashflow) {
	c.Interest += other.Interest
	c.Principal += other.Principal
	c.Loss += other.Loss
}

// Assumptions are the constant annualized credit/prepay assumptions applied
// each month.
type Assumptions struct {
	// CPR is the annualized conditional prepayment rate, in [0, 1]. At 1
	// the monthly-equivalent rate is 1 and the loan prepays in full.
	CPR float64
	// CDR is the annualized conditional default rate, in [0, 1]. At 1 the
	// monthly default trial is certain.
	CDR float64
	// Recovery is the fraction of balance recovered on default, in [0, 1].
	Recovery float64
}

// Validate checks the assumption set is usable.
func (a Assumptions) Validate() error {
	if a.CPR < 0 || a.CPR > 1 {
		return fmt.Errorf("Assumptions: CPR must be in [0, 1], got %v", a.CPR)
	}
	if a.CDR < 0 || a.CDR > 1 {
		return fmt.Errorf("Assumptions: CDR must be in [0, 1], got %v", a.CDR)
	}
	if a.Recovery < 0 || a.Recovery > 1 {
		return fmt.Errorf("Assumptions: Recovery must be in [0, 1], got %v", a.Recovery)
	}
	return nil
}

// NewMortgage builds a fully-amortizing loan and computes its level monthly
// payment from the standard annuity formula:
//
//	payment = P * r / (1 - (1+r)^-n)   with r = rate/12, n = term months
//
// Rate must be strictly positive: the formula divides by zero at rate 0.
func NewMortgage(principal, rate float64, termMonths int) (*Mortgage, error) {
	if principal <= 0 {
		return nil, fmt.Errorf("NewMortgage: principal must be positive, got %v", principal)
	}
	if rate <= 0 {
		return nil, fmt.Errorf("NewMortgage: rate must be positive, got %v", rate)
	}
	if termMonths <= 0 {
		return nil, fmt.Errorf("NewMortgage: term must be positive, got %d", termMonths)
	}

	monthlyRate := rate / 12.0
	payment := principal * monthlyRate / (1 - math.Pow(1+monthlyRate, -float64(termMonths)))

	return &Mortgage{
		Balance:   principal,
		Rate:      rate,
		Term:      termMonths,
		Remaining: termMonths,
		Payment:   payment,
		Alive:     true,
	}, nil
}

// MonthlyEquivalent converts an annualized event rate (CPR/CDR) to its
// monthly-equivalent rate under the compound convention:
//
//	monthly = 1 - (1 - annual)^(1/12)
//
// This assumes events are identically distributed each month and independent
// across months.
func MonthlyEquivalent(annual float64) float64 {
	return 1 - math.Pow(1-annual, 1.0/12.0)
}

// Step advances the loan by one month and returns its cashflow.
//
// The default trial fires with the monthly-equivalent CDR probability and is
// checked before prepayment: a loan cannot both default and prepay in the
// same month. On default the loan liquidates immediately — cash recovered is
// Balance*Recovery, the rest is credit loss, and interest for the month is
// forfeited. Absent default, prepayment is applied deterministically at the
// monthly-equivalent CPR on the post-scheduled balance.
//
// An inert loan (defaulted or fully amortized) returns a zero cashflow; Step
// is the only operation that mutates loan state.
func (m *Mortgage) Step(rng *rand.Rand, a Assumptions) Cashflow {
	eps := config.GetConfig().Epsilon
	if !m.Alive || m.Balance <= eps {
		return Cashflow{}
	}

	interest := m.Balance * (m.Rate / 12.0)
	scheduledPrincipal := math.Min(m.Payment-interest, m.Balance)

	if rng.Float64() < MonthlyEquivalent(a.CDR) {
		recovered := m.Balance * a.Recovery
		loss := m.Balance - recovered
		m.Balance = 0
		m.Alive = false
		return Cashflow{Principal: recovered, Loss: loss}
	}

	prepay := (m.Balance - scheduledPrincipal) * MonthlyEquivalent(a.CPR)
	totalPrincipal := math.Min(m.Balance, scheduledPrincipal+prepay)
	m.Balance -= totalPrincipal
	m.Remaining--

	if m.Remaining <= 0 || m.Balance <= eps {
		m.Alive = false
	}

	return Cashflow{Interest: interest, Principal: totalPrincipal}
}
