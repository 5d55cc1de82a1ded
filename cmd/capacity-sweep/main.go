package main

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"colony/internal/logs"
	"colony/internal/sims/colony"
)

type scenario struct {
	size  int
	bases int
}

func (s scenario) String() string {
	return fmt.Sprintf("size=%d bases=%d (max %d)", s.size, s.bases, colony.MaxBases(s.size))
}

type scenarioResult struct {
	scenario  scenario
	runs      int
	failures  int
	draws     int
	firstFail int64
}

func (r scenarioResult) failureRate() float64 {
	if r.runs == 0 {
		return 0
	}
	return float64(r.failures) / float64(r.runs)
}

func main() {
	sizes := pflag.IntSlice("sizes", []int{3, 5, 8, 10}, "grid sizes to sweep")
	seeds := pflag.Int("seeds", 50, "seeds to try per scenario")
	attempts := pflag.Int("max-attempts", colony.DefaultConfig().MaxAttempts, "random draws allowed per base")
	fill := pflag.Float64("fill", 1, "largest base count to try, as a fraction of the packing bound")
	level := pflag.String("log-level", "warn", "log level")
	pflag.Parse()

	logCfg := logs.DefaultConfig()
	logCfg.Level = *level
	if err := logs.Init("capacity-sweep", logCfg); err != nil {
		fmt.Fprintln(os.Stderr, "capacity-sweep:", err)
		os.Exit(1)
	}
	defer logs.Sync()

	var sets []scenario
	for _, size := range *sizes {
		limit := int(float64(colony.MaxBases(size)) * *fill)
		for bases := 1; bases <= limit; bases++ {
			sets = append(sets, scenario{size: size, bases: bases})
		}
	}

	fmt.Printf("Sweeping %d scenarios (%d seeds, %d attempts per base)\n", len(sets), *seeds, *attempts)

	start := time.Now()
	var all []scenarioResult
	for _, sc := range sets {
		res := runScenario(sc, *seeds, *attempts)
		logs.Debug("scenario done", zap.Stringer("scenario", sc), zap.Int("draws", res.draws))
		if res.failures > 0 {
			logs.Info("capacity failures",
				zap.Stringer("scenario", res.scenario),
				zap.Int("failures", res.failures),
				zap.Int64("first_seed", res.firstFail))
		}
		all = append(all, res)
	}

	sort.SliceStable(all, func(i, j int) bool { return all[i].failureRate() > all[j].failureRate() })
	elapsed := time.Since(start)

	fmt.Printf("\nResults (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i, res := range all {
		if res.failures == 0 {
			fmt.Printf("%d scenarios never failed\n", len(all)-i)
			break
		}
		fmt.Printf("%3d) fail=%5.1f%% (%d/%d) first seed=%d avg draws=%d %s\n",
			i+1, 100*res.failureRate(), res.failures, res.runs, res.firstFail,
			res.draws/max(1, res.runs), res.scenario)
	}
}

func runScenario(sc scenario, seeds, attempts int) scenarioResult {
	res := scenarioResult{scenario: sc, firstFail: -1}
	for seed := int64(1); seed <= int64(seeds); seed++ {
		cfg := colony.DefaultConfig()
		cfg.Size = sc.size
		cfg.Seed = seed
		cfg.MaxAttempts = attempts

		world := colony.NewWithConfig(cfg)
		world.SetLogger(logs.L())
		res.runs++

		err := world.Initialize(sc.bases)
		res.draws += world.Draws()
		switch {
		case err == nil:
		case errors.Is(err, colony.ErrCapacity):
			res.failures++
			if res.firstFail < 0 {
				res.firstFail = seed
			}
		default:
			logs.Warn("unexpected error", zap.Stringer("scenario", sc), zap.Error(err))
		}
	}
	return res
}
