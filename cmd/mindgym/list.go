package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dkotlyar/mindgym/internal/game"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available exercises",
	Long:  `Shows the exercises the trainer knows, with their play identifiers.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	fmt.Println("Available exercises:")
	fmt.Println()

	maxIDLen := 2
	for _, t := range game.AllTypes() {
		if len(t) > maxIDLen {
			maxIDLen = len(t)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, t := range game.AllTypes() {
		fmt.Printf("  %-*s  %s\n", maxIDLen, string(t), t.Name())
	}

	fmt.Println()
	fmt.Println("Run 'mindgym play <id>' to play an exercise.")
}
