package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dkotlyar/mindgym/internal/controller"
	"github.com/dkotlyar/mindgym/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the trainer with the exercise picker",
	Long: `Start the trainer in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select an exercise. After an
exercise ends you see the results, then return to the menu.

Controls:
  Up/Down/j/k  - Navigate
  Enter        - Select
  H            - Result history
  Q            - Quit

Examples:
  mindgym menu
  mindgym menu --fps 30
  mindgym menu --data ./history.json`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctrl := controller.New(store)
	if err := tui.Run(ctrl, flagFPS); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
