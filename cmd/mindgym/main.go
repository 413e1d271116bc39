// mindgym is a terminal suite of short memory and reading exercises.
//
// Usage:
//
//	mindgym menu               - Interactive exercise picker
//	mindgym list               - List available exercises
//	mindgym play <exercise>    - Play one exercise directly
//	mindgym stats <exercise>   - Show aggregate stats for an exercise
//	mindgym history            - Print the full result history
//	mindgym clear              - Delete all stored results
//	mindgym serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>   - Repaint rate during animated phases (default: 60)
//	--data <path>  - History document path (default: per-user config dir)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/dkotlyar/mindgym/internal/storage"

	// Import games to register them
	_ "github.com/dkotlyar/mindgym/internal/games/digitspan"
	_ "github.com/dkotlyar/mindgym/internal/games/inumbs"
	_ "github.com/dkotlyar/mindgym/internal/games/textcomp"
	_ "github.com/dkotlyar/mindgym/internal/games/textrecall"
	_ "github.com/dkotlyar/mindgym/internal/games/wordmem"
)

var (
	// Global flags
	flagFPS      int
	flagDataPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mindgym",
	Short: "MindGym - memory and reading exercises in your terminal",
	Long: `MindGym is a terminal brain trainer with short exercises for memory
span, word recall, reading comprehension and text recall.

Available commands:
  menu     - Interactive exercise picker
  list     - Show all available exercises
  play     - Play a specific exercise directly
  stats    - Aggregate stats for one exercise
  history  - Print the stored result history
  clear    - Delete all stored results
  serve    - Start SSH server for remote play

Examples:
  mindgym menu
  mindgym play word_memory
  mindgym play reading_speed --difficulty hard
  mindgym stats reading_speed
  mindgym serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Repaint rate during animated phases")
	rootCmd.PersistentFlags().StringVar(&flagDataPath, "data", "", "History document path (default: per-user config dir)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(serveCmd)
}

// openStore opens the history document named by --data, or the per-user
// default. Open never fails; an unreadable document starts empty.
func openStore() (*storage.Store, error) {
	path := flagDataPath
	if path == "" {
		var err error
		path, err = storage.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return storage.OpenFile(path, log.Default()), nil
}
