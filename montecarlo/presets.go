package montecarlo

import "github.com/TimothyAndrewChowles/Mortgage-Backed-Security/collateral"

// Scenario bundles the credit/prepay assumptions with a discount rate.
type Scenario struct {
	Name         string
	Assumptions  collateral.Assumptions
	DiscountRate float64
}

// Preset scenarios for the example deal.
var (
	// Base is the reference scenario: 8% CPR, 2% CDR, 60% recovery,
	// discounted at 5%.
	Base = Scenario{
		Name:         "Base",
		Assumptions:  collateral.Assumptions{CPR: 0.08, CDR: 0.02, Recovery: 0.60},
		DiscountRate: 0.05,
	}

	// FastPrepay stresses extension-averse holders: prepayments at 25% CPR
	// with benign credit.
	FastPrepay = Scenario{
		Name:         "FastPrepay",
		Assumptions:  collateral.Assumptions{CPR: 0.25, CDR: 0.005, Recovery: 0.65},
		DiscountRate: 0.05,
	}

	// HighDefault stresses the subordination: 6% CDR with weak recoveries
	// and prepayments shut off.
	HighDefault = Scenario{
		Name:         "HighDefault",
		Assumptions:  collateral.Assumptions{CPR: 0.02, CDR: 0.06, Recovery: 0.40},
		DiscountRate: 0.05,
	}
)
