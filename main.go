package main

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/TimothyAndrewChowles/Mortgage-Backed-Security/collateral"
	"github.com/TimothyAndrewChowles/Mortgage-Backed-Security/config"
	"github.com/TimothyAndrewChowles/Mortgage-Backed-Security/montecarlo"
	"github.com/TimothyAndrewChowles/Mortgage-Backed-Security/report"
	"github.com/TimothyAndrewChowles/Mortgage-Backed-Security/waterfall"
)

func main() {
	// Reproducible example run: seeded source, 30 paths, base scenario.
	rng := rand.New(rand.NewSource(1))

	// Preview the collateral composition on its own stream so the pricing
	// draws below stay reproducible.
	preview, err := collateral.GeneratePool(rand.New(rand.NewSource(1)), collateral.DefaultPoolConfig)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(report.PoolLine(collateral.Summarize(preview)))

	res, err := montecarlo.Run(rng, montecarlo.RunParams{
		Path: montecarlo.PathParams{
			Pool:         collateral.DefaultPoolConfig,
			Structure:    waterfall.DefaultStructure,
			Months:       config.GetConfig().HorizonMonths,
			Assumptions:  montecarlo.Base.Assumptions,
			DiscountRate: montecarlo.Base.DiscountRate,
		},
		Runs: 30,
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Print(report.Build(res, montecarlo.Base).Text())
}
