package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/superdudu/internal/games/platformer"
	"github.com/vovakirdan/superdudu/internal/games/platformer/levels"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file|dir>",
	Short: "Check level files",
	Long: `Parse and check level files against the active config.

Errors make a level unplayable; warnings point at likely mistakes.
The command exits with status 1 when any file has errors.

Examples:
  dudu validate ./levels
  dudu validate ./levels/04-castle.yaml --variant desktop`,
	Args: cobra.ExactArgs(1),
	Run:  runValidate,
}

func runValidate(_ *cobra.Command, args []string) {
	path := args[0]

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	info, err := os.Stat(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	loader := levels.NewLoader(path)
	files := []string{path}
	if info.IsDir() {
		files, err = loader.Files()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "Error: no level files in %s\n", path)
		os.Exit(1)
	}

	failed := false
	var table platformer.LevelTable
	for _, file := range files {
		lvl, err := loader.LoadFile(file)
		if err != nil {
			fmt.Printf("FAIL  %s\n      %v\n", file, err)
			failed = true
			continue
		}
		table = append(table, lvl.LevelTemplate)

		issues := levels.Validate(lvl.LevelTemplate, cfg)
		switch {
		case levels.HasErrors(issues):
			fmt.Printf("FAIL  %s (level %d)\n", file, lvl.ID)
			failed = true
		case len(issues) > 0:
			fmt.Printf("WARN  %s (level %d)\n", file, lvl.ID)
		default:
			fmt.Printf("OK    %s (level %d)\n", file, lvl.ID)
		}
		for _, issue := range issues {
			fmt.Printf("      %s\n", issue)
		}
	}

	if len(table) > 1 {
		sort.Slice(table, func(i, j int) bool { return table[i].ID < table[j].ID })
		for _, issue := range levels.ValidateTable(table, cfg)[0] {
			fmt.Printf("TABLE %s\n", issue)
			if !issue.Warning {
				failed = true
			}
		}
	}

	if failed {
		os.Exit(1)
	}
}
