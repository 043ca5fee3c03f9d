// rogue is a turn-based terminal roguelike with procedurally generated mazes.
//
// Usage:
//
//	rogue play               - Start a run in the terminal
//	rogue maze               - Generate and print a maze without playing
//	rogue list               - List available maze generators
//	rogue runs               - Browse run history
//	rogue serve              - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.rogue/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import generators to register them
	_ "github.com/vovakirdan/tui-rogue/internal/maze"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rogue",
	Short: "A turn-based maze roguelike for your terminal",
	Long: `rogue is a terminal roguelike. Each level is a procedurally
generated maze; reach the stairs to descend, and the mazes grow as
you go deeper.

Available commands:
  play     - Start a run
  maze     - Generate and print a maze without playing
  list     - Show available maze generators
  runs     - Browse run history
  serve    - Start SSH server for remote play

Examples:
  rogue play
  rogue play --algo binarytree --seed 42
  rogue maze --algo aldousbroder --width 20 --height 10 --solve
  rogue runs
  rogue serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.rogue/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(mazeCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(serveCmd)
}
