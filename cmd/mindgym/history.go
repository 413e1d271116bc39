package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dkotlyar/mindgym/internal/game"
)

var flagHistoryGame string

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print the stored result history",
	Long: `Print every stored result in chronological order.

Examples:
  mindgym history
  mindgym history --game reading_speed`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&flagHistoryGame, "game", "", "Only show results of one exercise")
}

func runHistory(cmd *cobra.Command, args []string) {
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var results []game.Result
	if flagHistoryGame != "" {
		t := game.Type(flagHistoryGame)
		if !t.Valid() {
			fmt.Fprintf(os.Stderr, "Error: unknown exercise %q\n", flagHistoryGame)
			os.Exit(1)
		}
		results = store.ResultsForGame(t)
	} else {
		results = store.AllResults()
	}

	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		return
	}

	fmt.Printf("  %-16s  %-20s  %s\n", "Date", "Exercise", "Score")
	fmt.Printf("  %-16s  %-20s  %s\n", "----", "--------", "-----")
	for _, r := range results {
		fmt.Printf("  %-16s  %-20s  %.1f%%\n",
			r.Timestamp.Local().Format("2006-01-02 15:04"),
			r.GameType.Name(),
			r.Score)
	}
}
