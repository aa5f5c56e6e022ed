package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/qube2048/internal/core"
	"github.com/vovakirdan/qube2048/internal/games/qube"
	"github.com/vovakirdan/qube2048/internal/platform/tui"
	"github.com/vovakirdan/qube2048/internal/registry"
	"github.com/vovakirdan/qube2048/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play the cube",
	Long: `Start a game. Without an argument the synchronized cube is played:
one six-faced game where a tile spawns on every face that moved.
Pass "qube_faces" for the independent-faces variant, where a tile
spawns only on the face you are looking at.

Controls:
  Arrows/WASD/HJKL - Swipe
  P/Esc            - Pause
  Enter            - Keep playing after a win
  R                - Restart
  Q/Ctrl+C         - Quit

Examples:
  qube play
  qube play qube_faces
  qube play --seed 42
  qube play --config ./my-qube.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "qube"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'qube list' to see available variants.")
		os.Exit(1)
	}

	// Terminal size for the initial layout; resizes are handled live.
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	qube.SetConfigPath(flagConfig)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
