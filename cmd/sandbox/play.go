package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-sandbox/internal/platform/tui"
	"github.com/vovakirdan/tui-sandbox/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a generated world",
	Long: `Generate a world and start playing.

Controls:
  Arrows/WASD  - Push the player (or move the marker)
  M            - Switch between player and marker control
  R            - Respawn at the spawn point
  P            - Pause
  Ctrl+S       - Save a text screenshot
  ?            - Toggle full help
  Q/Ctrl+C     - Quit

Dropping the marker tile onto the player's cell crushes the player.

Examples:
  sandbox play
  sandbox play --preset deep
  sandbox play --seed 42 --tps 60
  sandbox play --config ./my-sandbox.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	sl, closeLog, err := sessionLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	g, err := builder(sl).Build(flagPreset, seed())
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open history database", "error", err)
		// Continue without storage - the world still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	logger.Debug("starting world", "preset", g.Preset(), "seed", g.Seed())
	return tui.Run(g, tui.ModelOptions{
		Store:  store,
		Logger: sl,
		Width:  width,
		Height: height,
	})
}
