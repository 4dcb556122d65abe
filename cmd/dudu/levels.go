package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/superdudu/internal/config"
	"github.com/vovakirdan/superdudu/internal/games/platformer"
	"github.com/vovakirdan/superdudu/internal/games/platformer/levels"
)

var flagLevelID int

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List campaign levels",
	Long: `Shows the levels loaded from --levels, or the built-in campaign.

With --id, prints the details and check results of a single level.

Examples:
  dudu levels
  dudu levels --levels ./my-levels --id 2`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func init() {
	levelsCmd.Flags().IntVar(&flagLevelID, "id", 0, "Show details of the level with this id")
}

func runLevels(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if flagLevelID > 0 {
		if err := showLevel(flagLevelID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	engine, err := newEngine(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	table := engine.Levels()
	if table == 0 {
		fmt.Println("No levels available.")
		return
	}

	maxNameLen := 4 // "Name" header
	for n := 1; n <= table; n++ {
		if l := len(engine.LevelName(n)); l > maxNameLen {
			maxNameLen = l
		}
	}

	fmt.Println("Levels:")
	fmt.Println()
	fmt.Printf("  %-3s  %-*s  %6s  %5s\n", "#", maxNameLen, "Name", "End X", "Time")
	fmt.Printf("  %-3s  %-*s  %6s  %5s\n", "-", maxNameLen, "----", "-----", "----")
	for n := 1; n <= table; n++ {
		fmt.Printf("  %-3d  %-*s  %6.0f  %5.0f\n", n, maxNameLen, engine.LevelName(n), engine.EndX(n), engine.TimeLimit(n))
	}

	fmt.Println()
	fmt.Println("Run 'dudu levels --id <n>' for details, or 'dudu play --level <n>' to start on a level.")
}

// showLevel prints one level looked up by id.
func showLevel(id int) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var lvl levels.Level
	if flagLevels != "" {
		lvl, err = levels.NewLoader(flagLevels).LoadByID(id)
		if err != nil {
			return err
		}
	} else {
		table, err := levels.Builtin()
		if err != nil {
			return err
		}
		found := false
		for _, tpl := range table {
			if tpl.ID == id {
				lvl = levels.Level{LevelTemplate: tpl, FilePath: "(built-in)"}
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("level not found: %d", id)
		}
	}

	printLevel(lvl, cfg)
	return nil
}

func printLevel(lvl levels.Level, cfg config.Platformer) {
	fmt.Printf("Level %d: %s\n", lvl.ID, lvl.Name)
	fmt.Printf("  File:         %s\n", lvl.FilePath)
	if lvl.Theme != "" {
		fmt.Printf("  Theme:        %s\n", lvl.Theme)
	}
	fmt.Printf("  Time limit:   %.0fs\n", lvl.TimeLimit)
	fmt.Printf("  End X:        %.0f\n", platformer.LevelEndX(cfg.Rules, lvl.ID, lvl.EndX))
	fmt.Printf("  Start:        (%.0f, %.0f)\n", lvl.PlayerStart.X, lvl.PlayerStart.Y)
	fmt.Printf("  Platforms:    %d\n", len(lvl.Platforms))
	fmt.Printf("  Enemies:      %d\n", len(lvl.Enemies))
	fmt.Printf("  Collectibles: %d\n", len(lvl.Collectibles))

	issues := levels.Validate(lvl.LevelTemplate, cfg)
	if len(issues) == 0 {
		fmt.Println("  Checks:       ok")
		return
	}
	fmt.Println("  Checks:")
	for _, issue := range issues {
		fmt.Printf("    %s\n", issue)
	}
}
