// bouncer is a terminal endless-runner: a ball propelled by gravity and jump
// impulses across a scrolling obstacle field, breaking boxes for points.
//
// Usage:
//
//	bouncer play             - Play the game
//	bouncer scores           - Show the high score table
//	bouncer serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.bouncer/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
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
	Use:   "bouncer",
	Short: "Bouncer - an endless ball-runner in your terminal",
	Long: `Bouncer is a terminal endless-runner. Keep the ball off the ground,
break boxes for points, collect milestone bonuses, and dodge the triangles
that show up once you are doing too well.

Available commands:
  play     - Play the game
  scores   - View the high score table
  serve    - Start SSH server for remote play

Examples:
  bouncer play
  bouncer play --seed 42
  bouncer scores
  bouncer serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.bouncer/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
