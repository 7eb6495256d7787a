// Command simulate runs Monte Carlo playthroughs against the shipped (or a
// custom) event pool and tuning config, reporting the ending distribution
// and suggestions for calibrating the hidden rebellion ending.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/carpediemzzsssww-cpu/delay-the-end/internal/config"
	"github.com/carpediemzzsssww-cpu/delay-the-end/internal/content"
	"github.com/carpediemzzsssww-cpu/delay-the-end/internal/engine"
	"github.com/carpediemzzsssww-cpu/delay-the-end/internal/game"
	"github.com/carpediemzzsssww-cpu/delay-the-end/internal/logging"
	"github.com/carpediemzzsssww-cpu/delay-the-end/internal/rng"
	"github.com/carpediemzzsssww-cpu/delay-the-end/internal/sim"
)

func main() {
	eventsPath := flag.String("events", "./data/events.json", "path to events.json")
	configPath := flag.String("config", "./data/game-config.json", "path to game-config.json")
	runs := flag.Int("runs", 5000, "number of simulated playthroughs")
	seed := flag.Int64("seed", 0, "random seed (0 = from clock)")
	truthful := flag.Float64("truthful", 0.25, "record weight: truthful")
	embellish := flag.Float64("embellish", 0.25, "record weight: embellish")
	obscure := flag.Float64("obscure", 0.25, "record weight: obscure")
	seal := flag.Float64("seal", 0.25, "record weight: seal")
	export := flag.String("export", "", "export summary JSON to this path")
	flag.Parse()

	rules := engine.DefaultRules()
	if cfg, err := config.LoadConfig(*configPath); err == nil {
		rules = cfg.Rules
	} else if !errors.Is(err, fs.ErrNotExist) {
		logging.Fatal("Invalid game configuration", err, logging.Fields{"config_path": *configPath})
	}

	pool, err := content.LoadEvents(*eventsPath)
	if err != nil {
		logging.Fatal("Missing or invalid event content", err, logging.Fields{"events_path": *eventsPath})
	}

	src := rng.New()
	if *seed != 0 {
		src = rng.NewSeeded(*seed)
	}
	policy := sim.Policy{Truthful: *truthful, Embellish: *embellish, Obscure: *obscure, Seal: *seal}

	summary, err := sim.MonteCarlo(rules, pool, src, policy, *runs)
	if err != nil {
		logging.Fatal("Simulation failed", err, nil)
	}
	printReport(summary)

	if *export != "" {
		b, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			logging.Fatal("Failed to encode summary", err, nil)
		}
		if err := os.WriteFile(*export, b, 0o644); err != nil {
			logging.Fatal("Failed to write summary", err, logging.Fields{"path": *export})
		}
		fmt.Printf("\nsummary saved to %s\n", *export)
	}
}

func printReport(s sim.Summary) {
	fmt.Println("===== Monte Carlo Report =====")
	fmt.Printf("Runs: %d\n\n", s.Runs)

	fmt.Println("[Ending Probabilities]")
	for _, id := range game.AllEndingIDs {
		fmt.Printf("  %-18s: %6.2f%%\n", id, s.EndingProbabilities[id]*100)
	}

	fmt.Println("\n[Extreme Choice Distribution]")
	counts := make([]int, 0, len(s.ExtremeDistribution))
	for k := range s.ExtremeDistribution {
		counts = append(counts, k)
	}
	sort.Ints(counts)
	for _, k := range counts {
		fmt.Printf("  extreme=%d: %6.2f%%\n", k, s.ExtremeDistribution[k]*100)
	}
	fmt.Printf("  average: %.2f\n", s.AvgExtremeChoices)

	fmt.Println("\n[Final State Means]")
	fmt.Printf("  Heaven   : %.2f\n", s.AvgHeaven)
	fmt.Printf("  Hell     : %.2f\n", s.AvgHell)
	fmt.Printf("  Stability: %.2f\n", s.AvgStability)
	fmt.Printf("  Pressure : %.2f\n", s.AvgPressure)

	fmt.Printf("\n[Hidden Path]\n  rebellion flag rate: %.2f%%\n", s.RebellionFlagRate*100)

	fmt.Println("\n[Tuning Suggestions]")
	for _, line := range s.Suggestions() {
		fmt.Printf("  - %s\n", line)
	}
}
