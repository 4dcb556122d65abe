package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/superdudu/internal/games/platformer"
	"github.com/vovakirdan/superdudu/internal/sim"
)

var simCmd = &cobra.Command{
	Use:   "sim <script>",
	Short: "Run a scripted game headless",
	Long: `Play a YAML input script without a terminal and print a summary.

The state hash is stable across runs, so two runs of the same script
with the same config and levels print the same hash.

Script format:
  character: dudu      # bubu (default) or dudu
  level: 1             # starting level
  ticks: 1200          # maximum ticks to simulate
  auto_advance: true   # continue after a level is completed
  inputs:
    - from: 0          # [from, to) tick range, to defaults to ticks
      to: 600
      actions: [right, run]
    - at: 45           # single tick
      actions: [jump]

Examples:
  dudu sim ./scripts/speedrun.yaml
  dudu sim ./scripts/speedrun.yaml --variant native --log-level debug`,
	Args: cobra.ExactArgs(1),
	Run:  runSim,
}

func runSim(_ *cobra.Command, args []string) {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	script, err := sim.LoadScript(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	engine, err := newEngine(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	res, err := sim.Run(engine, script)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("simulation finished", "ticks", res.Ticks, "hash", fmt.Sprintf("%016x", res.Hash))

	s := res.Final
	fmt.Printf("Ticks:     %d\n", res.Ticks)
	fmt.Printf("Status:    %s\n", s.Status)
	fmt.Printf("Level:     %d\n", s.Level)
	fmt.Printf("Score:     %d\n", s.Score)
	fmt.Printf("Lives:     %d\n", s.Lives)
	fmt.Printf("Health:    %d\n", s.Player.Health)
	fmt.Printf("Time left: %.2f\n", s.TimeRemaining)
	fmt.Printf("Position:  (%.2f, %.2f)\n", s.Player.Pos.X, s.Player.Pos.Y)
	fmt.Printf("Coins:     %d\n", s.Stats.CoinsCollected)
	fmt.Printf("Defeated:  %d\n", s.Stats.EnemiesDefeated)
	fmt.Printf("Cleared:   %d\n", s.Stats.LevelsCompleted)

	if len(res.Events) > 0 {
		kinds := make([]platformer.EventKind, 0, len(res.Events))
		for k := range res.Events {
			kinds = append(kinds, k)
		}
		sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

		fmt.Println("Events:")
		for _, k := range kinds {
			fmt.Printf("  %-15s %d\n", k, res.Events[k])
		}
	}

	fmt.Printf("Hash:      %016x\n", res.Hash)
}
