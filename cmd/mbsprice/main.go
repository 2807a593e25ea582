package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/TimothyAndrewChowles/Mortgage-Backed-Security/collateral"
	"github.com/TimothyAndrewChowles/Mortgage-Backed-Security/config"
	"github.com/TimothyAndrewChowles/Mortgage-Backed-Security/montecarlo"
	"github.com/TimothyAndrewChowles/Mortgage-Backed-Security/report"
	"github.com/TimothyAndrewChowles/Mortgage-Backed-Security/waterfall"
)

// priceInput overrides the example deal. Pointer fields distinguish "absent"
// from an explicit zero, so a CPR=0 or recovery=0 stress input applies.
type priceInput struct {
	Runs     int      `json:"runs,omitempty"`
	Months   int      `json:"months,omitempty"`
	CPR      *float64 `json:"cpr,omitempty"`
	CDR      *float64 `json:"cdr,omitempty"`
	Recovery *float64 `json:"recovery,omitempty"`
	DiscRate *float64 `json:"disc_rate,omitempty"`

	Pool     *poolJSON     `json:"pool,omitempty"`
	Tranches []trancheJSON `json:"tranches,omitempty"`
}

type poolJSON struct {
	LoanCount    int     `json:"loan_count"`
	MinPrincipal float64 `json:"min_principal"`
	MaxPrincipal float64 `json:"max_principal"`
	RateMean     float64 `json:"rate_mean"`
	RateStdDev   float64 `json:"rate_std_dev"`
	RateFloor    float64 `json:"rate_floor"`
	TermMonths   int     `json:"term_months"`
}

type trancheJSON struct {
	Name    string  `json:"name"`
	Balance float64 `json:"balance"`
	Coupon  float64 `json:"coupon"`
}

func main() {
	inputPath := flag.String("input", "", "JSON input path overriding the example deal")
	runs := flag.Int("runs", 30, "Number of Monte Carlo paths")
	seed := flag.Int64("seed", 1, "Random seed")
	scenario := flag.String("scenario", "Base", "Scenario preset: Base, FastPrepay, HighDefault")
	asJSON := flag.Bool("json", false, "Emit the report as JSON instead of text")
	help := flag.Bool("h", false, "Show help")
	flag.BoolVar(help, "help", false, "Show help")
	flag.Parse()

	if *help {
		fmt.Fprintln(os.Stderr, "Usage: mbsprice [-runs N] [-seed S] [-scenario NAME] [-input <path>] [-json]")
		fmt.Fprintln(os.Stderr, "Price MBS tranches by Monte Carlo simulation of pool cashflows through a sequential waterfall.")
		return
	}

	sc, err := scenarioByName(*scenario)
	if err != nil {
		exitError(err.Error())
	}

	params := montecarlo.RunParams{
		Path: montecarlo.PathParams{
			Pool:         collateral.DefaultPoolConfig,
			Structure:    waterfall.DefaultStructure,
			Months:       config.GetConfig().HorizonMonths,
			Assumptions:  sc.Assumptions,
			DiscountRate: sc.DiscountRate,
		},
		Runs: *runs,
	}

	if *inputPath != "" {
		raw, err := os.ReadFile(*inputPath)
		if err != nil {
			exitError(fmt.Sprintf("read input: %v", err))
		}
		var in priceInput
		if err := json.Unmarshal(raw, &in); err != nil {
			exitError(fmt.Sprintf("parse JSON: %v", err))
		}
		applyInput(&params, in)
	}

	rng := rand.New(rand.NewSource(*seed))
	res, err := montecarlo.Run(rng, params)
	if err != nil {
		exitError(err.Error())
	}

	rep := report.Build(res, sc)
	if *asJSON {
		b, err := rep.JSON()
		if err != nil {
			exitError(err.Error())
		}
		fmt.Println(string(b))
		return
	}
	fmt.Print(rep.Text())
}

func scenarioByName(name string) (montecarlo.Scenario, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "base":
		return montecarlo.Base, nil
	case "fastprepay":
		return montecarlo.FastPrepay, nil
	case "highdefault":
		return montecarlo.HighDefault, nil
	default:
		return montecarlo.Scenario{}, fmt.Errorf("unknown scenario %q", name)
	}
}

func applyInput(params *montecarlo.RunParams, in priceInput) {
	if in.Runs > 0 {
		params.Runs = in.Runs
	}
	if in.Months > 0 {
		params.Path.Months = in.Months
	}
	if in.CPR != nil {
		params.Path.Assumptions.CPR = *in.CPR
	}
	if in.CDR != nil {
		params.Path.Assumptions.CDR = *in.CDR
	}
	if in.Recovery != nil {
		params.Path.Assumptions.Recovery = *in.Recovery
	}
	if in.DiscRate != nil {
		params.Path.DiscountRate = *in.DiscRate
	}
	if in.Pool != nil {
		params.Path.Pool = collateral.PoolConfig{
			LoanCount:    in.Pool.LoanCount,
			MinPrincipal: in.Pool.MinPrincipal,
			MaxPrincipal: in.Pool.MaxPrincipal,
			RateMean:     in.Pool.RateMean,
			RateStdDev:   in.Pool.RateStdDev,
			RateFloor:    in.Pool.RateFloor,
			TermMonths:   in.Pool.TermMonths,
		}
	}
	if len(in.Tranches) > 0 {
		structure := make([]waterfall.Tranche, 0, len(in.Tranches))
		for _, t := range in.Tranches {
			structure = append(structure, waterfall.Tranche{Name: t.Name, Balance: t.Balance, Coupon: t.Coupon})
		}
		params.Path.Structure = structure
	}
}

func exitError(msg string) {
	fmt.Fprintln(os.Stderr, "mbsprice:", msg)
	os.Exit(1)
}
