package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-sandbox/internal/platform/tui"
	"github.com/vovakirdan/tui-sandbox/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the sandbox with a world picker menu",
	Long: `Start the sandbox in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to generate the selected world.
Esc leaves a world and returns to the menu. Tab shows the session history.

Examples:
  sandbox menu
  sandbox menu --seed 7
  sandbox menu --db ./history.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	sl, closeLog, err := sessionLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open history database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	return tui.RunSession(tui.SessionOptions{
		Builder: builder(sl),
		Store:   store,
		Logger:  sl,
		Origin:  "local",
		Seed:    flagSeed,
		Width:   width,
		Height:  height,
	})
}
