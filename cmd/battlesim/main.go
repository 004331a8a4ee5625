package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"skirmish/internal/battle"
	"skirmish/internal/config"
	"skirmish/internal/logging"
	"skirmish/internal/sweep"
)

func main() {
	var unitsFile, scenarioFile, out string
	var seed int64
	var rounds, n, workers int
	var saveRounds bool
	flag.StringVar(&unitsFile, "units", "assets/units.yaml", "unit catalog file")
	flag.StringVar(&scenarioFile, "scenario", "", "scenario file (default: built-in mirror match)")
	flag.StringVar(&out, "out", "report.json", "output file (single) or summary file (batch)")
	flag.Int64Var(&seed, "seed", 0, "seed (0 draws one)")
	flag.IntVar(&rounds, "rounds", 0, "round cap (0 uses the engine default)")
	flag.IntVar(&n, "n", 1, "number of battles")
	flag.IntVar(&workers, "workers", 8, "batch workers")
	flag.BoolVar(&saveRounds, "log", true, "keep per-round records when n==1")
	flag.Parse()

	catalog, err := config.LoadCatalog(unitsFile)
	if err != nil {
		panic(err)
	}

	specA := map[string]int{"Peasants": 95, "Swordsmen": 5}
	specB := map[string]int{"Peasants": 95, "Swordsmen": 5}
	if scenarioFile != "" {
		sc, err := config.LoadScenario(scenarioFile)
		if err != nil {
			panic(err)
		}
		specA, specB = sc.ArmyA, sc.ArmyB
		if seed == 0 {
			seed = sc.Seed
		}
		if rounds == 0 {
			rounds = sc.MaxRounds
		}
	}

	if n <= 1 {
		rep, err := battle.SimulateSpecs(specA, specB, catalog, battle.Options{
			Seed:      seed,
			MaxRounds: rounds,
		})
		if err != nil {
			panic(err)
		}
		var payload any = rep
		if !saveRounds {
			payload = rep.Summary
		}
		if err := os.WriteFile(out, battle.MarshalPretty(payload), 0644); err != nil {
			panic(err)
		}
		fmt.Printf("Battle finished. Winner=%s, Rounds=%d, Seed=%d -> %s\n",
			rep.Summary.Winner, rep.Summary.Rounds, rep.Summary.Seed, out)
		return
	}

	log := logging.New(logging.Options{Level: "info"})
	defer log.Sync()

	sum, err := sweep.Run(specA, specB, catalog, sweep.Config{
		Runs:      n,
		Workers:   workers,
		Seed:      seed,
		MaxRounds: rounds,
	}, log)
	if err != nil {
		panic(err)
	}
	if err := os.WriteFile(out, battle.MarshalPretty(sum), 0644); err != nil {
		panic(err)
	}
	fmt.Printf("Batch %d done -> %s\n", n, filepath.Base(out))
}
