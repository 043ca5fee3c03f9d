package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-rogue/internal/config"
	"github.com/vovakirdan/tui-rogue/internal/core"
	"github.com/vovakirdan/tui-rogue/internal/game"
	"github.com/vovakirdan/tui-rogue/internal/platform/tui"
	"github.com/vovakirdan/tui-rogue/internal/registry"
	"github.com/vovakirdan/tui-rogue/internal/storage"
)

var (
	flagConfig     string
	flagAlgo       string
	flagDifficulty string
	flagLoad       string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start a roguelike run in the terminal.

Controls:
  WASD/Arrows/HJKL - Move
  Ctrl+S           - Save the run to ~/.rogue/saves
  Q/Esc/Ctrl+C     - Quit

Difficulty options:
  easy   - Small mazes, slow growth, extra health
  normal - Default maze size and growth
  hard   - Large mazes, uncapped growth, low health
  fixed  - Every level reuses the starting maze size

Examples:
  rogue play
  rogue play --algo binarytree --seed 42
  rogue play --difficulty hard
  rogue play --config ./my-rogue.yaml
  rogue play --load ~/.rogue/saves/20260829_120000.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagAlgo, "algo", "", "Maze generator (overrides config)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagLoad, "load", "", "Path to a saved run to resume")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size early
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	session, err := buildSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(session, store, width, height)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// buildSession creates a session from a snapshot or from config and flags.
func buildSession() (*game.Session, error) {
	if flagLoad != "" {
		return game.LoadSession(flagLoad, nil)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagDifficulty != "" {
		if err := config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty)); err != nil {
			return nil, err
		}
	}
	if flagAlgo != "" {
		if !registry.Exists(flagAlgo) {
			return nil, fmt.Errorf("unknown generator %q, run 'rogue list' to see available generators", flagAlgo)
		}
		cfg.Maze.Generator = flagAlgo
	}

	session := game.NewSession(game.SessionConfig{
		Runtime: core.RuntimeConfig{
			Width:     cfg.Maze.Width,
			Height:    cfg.Maze.Height,
			Generator: cfg.Maze.Generator,
			Seed:      flagSeed,
		},
		Growth:       cfg.Progression.GrowthPerLevel(),
		MaxW:         cfg.Progression.MaxWidth,
		MaxH:         cfg.Progression.MaxHeight,
		PlayerHealth: cfg.Player.Health,
		VisionRadius: cfg.Player.VisionRadius,
	}, nil)

	if err := session.SetupLevel(); err != nil {
		return nil, err
	}
	return session, nil
}
