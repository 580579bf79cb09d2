package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-bouncer/internal/audio"
	"github.com/vovakirdan/tui-bouncer/internal/config"
	"github.com/vovakirdan/tui-bouncer/internal/core"
	"github.com/vovakirdan/tui-bouncer/internal/platform/tui"
	"github.com/vovakirdan/tui-bouncer/internal/storage"
)

var (
	flagConfig string
	flagMute   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game session. The first run asks for a player name; after
that you land on the menu.

Controls:
  Space/Up/W   - Jump straight up
  Left/A       - Jump up and to the left
  Right/D      - Jump up and to the right
  Mouse click  - Jump toward the clicked side of the screen
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Examples:
  bouncer play
  bouncer play --seed 42
  bouncer play --mute
  bouncer play --config ./my-bouncer.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	gameCfg, err := config.LoadBouncer(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	var sound *audio.Player
	if !flagMute {
		sound = audio.New(log.New(os.Stderr))
	}

	// Run the game
	runErr := tui.Run(store, sound, runtime, gameCfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
