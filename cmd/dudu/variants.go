package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/superdudu/internal/registry"
)

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List tuning variants",
	Long:  `Shows the physics and scoring variants selectable with --variant.`,
	Args:  cobra.NoArgs,
	Run:   runVariants,
}

func runVariants(_ *cobra.Command, _ []string) {
	variants := registry.List()

	if len(variants) == 0 {
		fmt.Println("No variants available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, v := range variants {
		if len(v.ID) > maxIDLen {
			maxIDLen = len(v.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, v := range variants {
		fmt.Printf("  %-*s  %s\n", maxIDLen, v.ID, v.Title)
	}

	fmt.Println()
	fmt.Println("Run 'dudu play --variant <id>' to use one.")
}
