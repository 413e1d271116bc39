package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dkotlyar/mindgym/internal/game"
)

var statsCmd = &cobra.Command{
	Use:   "stats <exercise>",
	Short: "Show aggregate stats for an exercise",
	Long: `Display how often an exercise was played and its best score.

Examples:
  mindgym stats reading_speed
  mindgym stats word_memory`,
	Args: cobra.ExactArgs(1),
	Run:  runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	t := game.Type(args[0])
	if !t.Valid() {
		fmt.Fprintf(os.Stderr, "Error: unknown exercise %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'mindgym list' to see available exercises.")
		os.Exit(1)
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	stats := store.StatsForGame(t)

	fmt.Printf("%s\n", t.Name())
	fmt.Println()
	if stats.TotalGames == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'mindgym play %s' to record the first one!\n", string(t))
		return
	}

	fmt.Printf("  Games played:  %d\n", stats.TotalGames)
	fmt.Printf("  Best score:    %.1f%%\n", stats.BestScore)
}
