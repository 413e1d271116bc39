package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var flagClearYes bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all stored results",
	Long: `Delete every stored result. Per-exercise configs are kept.

Asks for confirmation unless --yes is given.

Examples:
  mindgym clear
  mindgym clear --yes`,
	Run: runClear,
}

func init() {
	clearCmd.Flags().BoolVar(&flagClearYes, "yes", false, "Skip the confirmation prompt")
}

func runClear(cmd *cobra.Command, args []string) {
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	n := len(store.AllResults())
	if n == 0 {
		fmt.Println("No results stored.")
		return
	}

	if !flagClearYes {
		fmt.Printf("Delete all %d stored results? [y/N] ", n)
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			fmt.Println("Aborted.")
			return
		}
	}

	store.ClearAllResults()
	fmt.Printf("Deleted %d results.\n", n)
}
