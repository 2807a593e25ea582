package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TimothyAndrewChowles/Mortgage-Backed-Security/collateral"
	"github.com/TimothyAndrewChowles/Mortgage-Backed-Security/montecarlo"
	"github.com/TimothyAndrewChowles/Mortgage-Backed-Security/waterfall"
)

func baseParams() montecarlo.RunParams {
	return montecarlo.RunParams{
		Path: montecarlo.PathParams{
			Pool:         collateral.DefaultPoolConfig,
			Structure:    waterfall.DefaultStructure,
			Assumptions:  montecarlo.Base.Assumptions,
			DiscountRate: montecarlo.Base.DiscountRate,
		},
		Runs: 30,
	}
}

func TestApplyInput_ExplicitZerosApply(t *testing.T) {
	t.Parallel()

	var in priceInput
	require.NoError(t, json.Unmarshal([]byte(`{"cpr": 0, "recovery": 0}`), &in))

	params := baseParams()
	applyInput(&params, in)

	assert.Equal(t, 0.0, params.Path.Assumptions.CPR)
	assert.Equal(t, 0.0, params.Path.Assumptions.Recovery)
	// Fields absent from the JSON keep the scenario defaults.
	assert.Equal(t, montecarlo.Base.Assumptions.CDR, params.Path.Assumptions.CDR)
	assert.Equal(t, montecarlo.Base.DiscountRate, params.Path.DiscountRate)
}

func TestApplyInput_OverridesDealShape(t *testing.T) {
	t.Parallel()

	var in priceInput
	require.NoError(t, json.Unmarshal([]byte(`{
		"runs": 100,
		"months": 120,
		"disc_rate": 0.07,
		"tranches": [
			{"name": "A", "balance": 80000000, "coupon": 0.04},
			{"name": "B", "balance": 20000000, "coupon": 0.00}
		]
	}`), &in))

	params := baseParams()
	applyInput(&params, in)

	assert.Equal(t, 100, params.Runs)
	assert.Equal(t, 120, params.Path.Months)
	assert.Equal(t, 0.07, params.Path.DiscountRate)
	require.Len(t, params.Path.Structure, 2)
	assert.Equal(t, "A", params.Path.Structure[0].Name)
	assert.Equal(t, 80_000_000.0, params.Path.Structure[0].Balance)
}

func TestScenarioByName(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"Base", "base", "FastPrepay", "highdefault", ""} {
		if _, err := scenarioByName(name); err != nil {
			t.Fatalf("scenarioByName(%q) error: %v", name, err)
		}
	}
	if _, err := scenarioByName("bogus"); err == nil {
		t.Fatal("expected error for unknown scenario")
	}
}
