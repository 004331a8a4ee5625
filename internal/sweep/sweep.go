// Package sweep estimates outcome statistics by running many independent
// battles across derived seeds. Runs share nothing, so a small worker pool
// executes them in parallel and folds results under one mutex.
package sweep

import (
	"sync"

	"go.uber.org/zap"

	"skirmish/internal/battle"
	"skirmish/internal/util"
)

type Config struct {
	Runs      int
	Workers   int   // 0 means 8
	Seed      int64 // base seed, 0 means draw one
	MaxRounds int
}

// Summary aggregates the outcomes of a sweep. Seed is the base seed that
// produced it; run i used Seed+i.
type Summary struct {
	Runs      int     `json:"runs"`
	Seed      int64   `json:"seed"`
	WinsA     int     `json:"wins_a"`
	WinsB     int     `json:"wins_b"`
	Draws     int     `json:"draws"`
	WinRateA  float64 `json:"win_rate_a"`
	WinRateB  float64 `json:"win_rate_b"`
	DrawRate  float64 `json:"draw_rate"`
	AvgRounds float64 `json:"avg_rounds"`
	MinRounds int     `json:"min_rounds"`
	MaxRounds int     `json:"max_rounds"`
	AvgSizeA  float64 `json:"avg_survivors_a"`
	AvgSizeB  float64 `json:"avg_survivors_b"`
}

// Run simulates cfg.Runs battles between the two compositions and tallies
// the outcomes. Run i always uses seed cfg.Seed+i, so a sweep reproduces
// exactly no matter how jobs land on workers.
func Run(specA, specB map[string]int, catalog battle.Catalog, cfg Config, log *zap.Logger) (*Summary, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.Runs <= 0 {
		cfg.Runs = 1
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 8
	}
	if workers > cfg.Runs {
		workers = cfg.Runs
	}
	seed := cfg.Seed
	if seed == 0 {
		drawn, err := util.NewSeed()
		if err != nil {
			return nil, err
		}
		seed = drawn
	}

	armyA, err := battle.NewArmy(specA, catalog)
	if err != nil {
		return nil, err
	}
	armyB, err := battle.NewArmy(specB, catalog)
	if err != nil {
		return nil, err
	}

	var (
		mu                     sync.Mutex
		winsA, winsB, draws    int
		totalRounds            int
		totalSizeA, totalSizeB int
		minRounds              = -1
		maxRounds              int
		firstErr               error
	)

	var wg sync.WaitGroup
	jobs := make(chan int, cfg.Runs)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				runSeed := seed + int64(i)
				if runSeed == 0 { // seed 0 would ask the engine for entropy
					runSeed = 1
				}
				rep, err := battle.Simulate(armyA, armyB, catalog, battle.Options{
					Seed:      runSeed,
					MaxRounds: cfg.MaxRounds,
				})

				mu.Lock()
				if err != nil {
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					continue
				}
				switch rep.Summary.Winner {
				case battle.WinnerA:
					winsA++
				case battle.WinnerB:
					winsB++
				default:
					draws++
				}
				totalRounds += rep.Summary.Rounds
				totalSizeA += rep.Summary.FinalSizes["A"]
				totalSizeB += rep.Summary.FinalSizes["B"]
				if minRounds < 0 || rep.Summary.Rounds < minRounds {
					minRounds = rep.Summary.Rounds
				}
				if rep.Summary.Rounds > maxRounds {
					maxRounds = rep.Summary.Rounds
				}
				mu.Unlock()
			}
		}()
	}
	for i := 0; i < cfg.Runs; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	n := float64(cfg.Runs)
	sum := &Summary{
		Runs:      cfg.Runs,
		Seed:      seed,
		WinsA:     winsA,
		WinsB:     winsB,
		Draws:     draws,
		WinRateA:  float64(winsA) / n,
		WinRateB:  float64(winsB) / n,
		DrawRate:  float64(draws) / n,
		AvgRounds: float64(totalRounds) / n,
		MinRounds: minRounds,
		MaxRounds: maxRounds,
		AvgSizeA:  float64(totalSizeA) / n,
		AvgSizeB:  float64(totalSizeB) / n,
	}
	log.Info("sweep finished",
		zap.Int("runs", sum.Runs),
		zap.Int64("seed", sum.Seed),
		zap.Float64("win_rate_a", sum.WinRateA),
		zap.Float64("win_rate_b", sum.WinRateB),
		zap.Float64("avg_rounds", sum.AvgRounds))
	return sum, nil
}
