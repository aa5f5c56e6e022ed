// qube is 2048 played on all six faces of a cube, in the terminal.
//
// Usage:
//
//	qube play [variant]      - Play the cube (default: synchronized)
//	qube list                - List game variants
//	qube scores <variant>    - Show high scores for a variant
//	qube serve               - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.qube2048/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its variants
	_ "github.com/vovakirdan/qube2048/internal/games/qube"
)

var (
	// Global flags
	flagFPS    int
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
	Use:   "qube",
	Short: "Qube 2048 - six faces, one swipe",
	Long: `Qube 2048 is 2048 played on a cube: every swipe slides and merges
tiles on all six 4x4 faces at once, then the cube rotates to bring a
new face forward.

Available commands:
  play     - Play the cube
  list     - Show the game variants
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  qube play
  qube play qube_faces
  qube play --seed 42
  qube scores qube
  qube serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.qube2048/scores.db", "Path to scores database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
