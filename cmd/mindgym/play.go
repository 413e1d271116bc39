package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dkotlyar/mindgym/internal/config"
	"github.com/dkotlyar/mindgym/internal/controller"
	"github.com/dkotlyar/mindgym/internal/game"
	"github.com/dkotlyar/mindgym/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <exercise>",
	Short: "Play an exercise",
	Long: `Start the given exercise directly, skipping the menu.

The session config is resolved from --config when given, otherwise from
<user config dir>/mindgym/<exercise>.yaml, otherwise from the built-in
defaults. --difficulty overrides the resolved difficulty.

Examples:
  mindgym play word_memory
  mindgym play reading_speed --difficulty hard
  mindgym play inumbs --config ./inumbs.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom session config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty override: easy, medium, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	t := game.Type(args[0])
	if !t.Valid() || !game.Registered(t) {
		fmt.Fprintf(os.Stderr, "Error: unknown exercise %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'mindgym list' to see available exercises.")
		os.Exit(1)
	}

	cfg, err := config.Load(t, flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagDifficulty != "" {
		d := game.Difficulty(flagDifficulty)
		switch d {
		case game.Easy, game.Medium, game.Hard:
			cfg.Difficulty = d
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (easy, medium, hard)\n", flagDifficulty)
			os.Exit(1)
		}
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctrl := controller.New(store)
	if err := ctrl.StartGameWith(t, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error starting exercise: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(ctrl, flagFPS); err != nil {
		fmt.Fprintf(os.Stderr, "Error running exercise: %v\n", err)
		os.Exit(1)
	}
}
