package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-rogue/internal/platform/tui"
	"github.com/vovakirdan/tui-rogue/internal/storage"
)

var flagRunsPlain bool

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Browse run history",
	Long: `Open an interactive browser over past runs, best runs first.
Press tab to switch between best and most recent ordering.

With --plain, prints the best runs as a table and exits.

Examples:
  rogue runs
  rogue runs --plain
  rogue runs --db ./runs.db`,
	Run: runRuns,
}

func init() {
	runsCmd.Flags().BoolVar(&flagRunsPlain, "plain", false, "Print runs to stdout instead of the interactive browser")
}

func runRuns(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagRunsPlain {
		printRuns(store)
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunBrowser(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printRuns(store *storage.Store) {
	runs, err := store.BestRuns(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Println("Best runs:")
	fmt.Println()
	fmt.Printf("  %-4s  %-6s  %-6s  %-10s  %-14s  %-14s  %s\n",
		"Rank", "Level", "Turns", "Outcome", "Maze", "Seed", "Date")
	for i, r := range runs {
		fmt.Printf("  #%-3d  %-6d  %-6d  %-10s  %-14s  %-14d  %s\n",
			i+1, r.Level, r.Turns, r.Outcome, r.Generator, r.Seed,
			r.CreatedAt.Format("Jan 02 15:04"))
	}
}
