package collateral_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/TimothyAndrewChowles/Mortgage-Backed-Security/collateral"
)

func TestNewMortgage_RejectsBadOrigination(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		principal float64
		rate      float64
		term      int
	}{
		{"zero principal", 0, 0.045, 360},
		{"negative principal", -1000, 0.045, 360},
		{"zero rate", 200_000, 0, 360},
		{"negative rate", 200_000, -0.01, 360},
		{"zero term", 200_000, 0.045, 0},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, err := collateral.NewMortgage(tc.principal, tc.rate, tc.term); err == nil {
				t.Fatalf("expected error for %s", tc.name)
			}
		})
	}
}

func TestMortgage_FirstMonthScheduledFlows(t *testing.T) {
	t.Parallel()

	m, err := collateral.NewMortgage(200_000, 0.045, 360)
	if err != nil {
		t.Fatalf("NewMortgage error: %v", err)
	}

	rng := rand.New(rand.NewSource(1))
	cf := m.Step(rng, collateral.Assumptions{CPR: 0, CDR: 0, Recovery: 0})

	// First-month interest is balance * rate/12 = 200,000 * 0.045/12 = 750.00.
	const wantInterest = 750.0
	if math.Abs(cf.Interest-wantInterest) > 1e-9 {
		t.Fatalf("interest mismatch: got %.9f want %.2f", cf.Interest, wantInterest)
	}
	wantPrincipal := m.Payment - wantInterest
	if math.Abs(cf.Principal-wantPrincipal) > 1e-9 {
		t.Fatalf("principal mismatch: got %.9f want %.9f", cf.Principal, wantPrincipal)
	}
	if cf.Loss != 0 {
		t.Fatalf("expected zero loss, got %v", cf.Loss)
	}
}

func TestMortgage_AmortizesToZeroOverFullTerm(t *testing.T) {
	t.Parallel()

	const principal = 200_000.0
	m, err := collateral.NewMortgage(principal, 0.045, 360)
	if err != nil {
		t.Fatalf("NewMortgage error: %v", err)
	}

	rng := rand.New(rand.NewSource(7))
	noCredit := collateral.Assumptions{CPR: 0, CDR: 0, Recovery: 0}

	var cumPrincipal float64
	for month := 0; month < 360; month++ {
		cf := m.Step(rng, noCredit)
		cumPrincipal += cf.Principal
		if cf.Loss != 0 {
			t.Fatalf("month %d: unexpected loss %v", month+1, cf.Loss)
		}
	}

	const tol = 1e-6
	if math.Abs(m.Balance) > tol {
		t.Fatalf("ending balance not amortized to zero: %.12f", m.Balance)
	}
	if m.Alive {
		t.Fatal("loan should be inert after full term")
	}
	if math.Abs(cumPrincipal-principal) > tol {
		t.Fatalf("cumulative principal mismatch: got %.6f want %.6f", cumPrincipal, principal)
	}
}

func TestMortgage_DefaultForfeitsInterestAndBooksLoss(t *testing.T) {
	t.Parallel()

	m, err := collateral.NewMortgage(200_000, 0.045, 360)
	if err != nil {
		t.Fatalf("NewMortgage error: %v", err)
	}

	// CDR=1 makes the monthly default trial certain.
	rng := rand.New(rand.NewSource(1))
	cf := m.Step(rng, collateral.Assumptions{CPR: 0, CDR: 1.0, Recovery: 0.60})

	if cf.Interest != 0 {
		t.Fatalf("default month must forfeit interest, got %v", cf.Interest)
	}
	if math.Abs(cf.Principal-200_000*0.60) > 1e-9 {
		t.Fatalf("recovered cash mismatch: got %.6f want %.6f", cf.Principal, 200_000*0.60)
	}
	if math.Abs(cf.Loss-200_000*0.40) > 1e-9 {
		t.Fatalf("credit loss mismatch: got %.6f want %.6f", cf.Loss, 200_000*0.40)
	}
	if m.Alive || m.Balance != 0 {
		t.Fatalf("defaulted loan must be inert with zero balance, got alive=%v balance=%v", m.Alive, m.Balance)
	}
}

func TestMortgage_InertLoanIsAbsorbing(t *testing.T) {
	t.Parallel()

	m, err := collateral.NewMortgage(200_000, 0.045, 360)
	if err != nil {
		t.Fatalf("NewMortgage error: %v", err)
	}
	m.Alive = false
	m.Balance = 0

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 5; i++ {
		cf := m.Step(rng, collateral.Assumptions{CPR: 0.08, CDR: 0.02, Recovery: 0.60})
		if cf != (collateral.Cashflow{}) {
			t.Fatalf("inert loan produced cashflow %+v", cf)
		}
	}
}

func TestMortgage_PrepaymentShortensLife(t *testing.T) {
	t.Parallel()

	m, err := collateral.NewMortgage(200_000, 0.045, 360)
	if err != nil {
		t.Fatalf("NewMortgage error: %v", err)
	}

	rng := rand.New(rand.NewSource(1))
	fast := collateral.Assumptions{CPR: 0.25, CDR: 0, Recovery: 0}

	months := 0
	var cumPrincipal float64
	for m.Alive && months < 360 {
		cf := m.Step(rng, fast)
		cumPrincipal += cf.Principal
		months++
	}

	if months >= 360 {
		t.Fatalf("25%% CPR loan should retire well before term, took %d months", months)
	}
	if math.Abs(cumPrincipal-200_000) > 1e-6 {
		t.Fatalf("principal not conserved under prepayment: got %.6f", cumPrincipal)
	}
}

func TestAssumptions_Validate(t *testing.T) {
	t.Parallel()

	// The bounds are inclusive: CPR/CDR of exactly 1 model certain
	// prepayment/default and Step handles both.
	for _, a := range []collateral.Assumptions{
		{CPR: 0, CDR: 0, Recovery: 0},
		{CPR: 1, CDR: 1, Recovery: 1},
		{CPR: 0.08, CDR: 0.02, Recovery: 0.60},
	} {
		if err := a.Validate(); err != nil {
			t.Fatalf("Validate(%+v) unexpected error: %v", a, err)
		}
	}

	for _, a := range []collateral.Assumptions{
		{CPR: -0.1},
		{CPR: 1.1},
		{CDR: -0.1},
		{CDR: 1.1},
		{Recovery: -0.1},
		{Recovery: 1.1},
	} {
		if err := a.Validate(); err == nil {
			t.Fatalf("Validate(%+v) expected error", a)
		}
	}
}

func TestMonthlyEquivalent(t *testing.T) {
	t.Parallel()

	if got := collateral.MonthlyEquivalent(0); got != 0 {
		t.Fatalf("MonthlyEquivalent(0) = %v, want 0", got)
	}
	// (1 - monthly)^12 must recompose the annual rate.
	monthly := collateral.MonthlyEquivalent(0.08)
	if recomposed := 1 - math.Pow(1-monthly, 12); math.Abs(recomposed-0.08) > 1e-12 {
		t.Fatalf("compound conversion does not recompose: %.15f", recomposed)
	}
}
