// sandbox is a 2D tile sandbox that runs in the terminal.
//
// Usage:
//
//	sandbox play              - Play a generated world
//	sandbox menu              - Pick world presets interactively
//	sandbox generate          - Print a generated world as text
//	sandbox list              - List world presets
//	sandbox history           - Show recent sessions
//	sandbox serve             - Host sessions over SSH
//
// Global flags:
//
//	--tps <rate>      - Simulation ticks per second (default: 30)
//	--max-fps <rate>  - Render cap, 0 = unlimited (default: 60)
//	--seed <value>    - World seed, 0 = time based
//	--preset <name>   - World preset (default: layers from the config)
//	--config <path>   - Sandbox config YAML
//	--db <path>       - History database (default: ~/.sandbox/history.db)
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sandbox/internal/config"
	"github.com/vovakirdan/tui-sandbox/internal/game"
	"github.com/vovakirdan/tui-sandbox/internal/registry"
)

var (
	// Global flags
	flagTPS      int
	flagMaxFPS   int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagPreset   string
	flagLogLevel string
	flagLogFile  string

	// Set up by the root command before any subcommand runs.
	appConfig config.SandboxConfig
	logger    *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sandbox",
	Short: "TUI Sandbox - a tile world in your terminal",
	Long: `TUI Sandbox generates a layered tile world and lets you walk a player
across it or push the marker tile around.

Available commands:
  play      - Play a generated world
  menu      - Interactive world picker
  generate  - Print a generated world
  list      - Show world presets
  history   - Show recent sessions
  serve     - Start SSH server for remote play

Examples:
  sandbox play
  sandbox play --preset deep --seed 42
  sandbox play --tps 20 --max-fps 0
  sandbox generate --preset flat --width 40 --height 12
  sandbox serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagTPS, "tps", 30, "Simulation ticks per second")
	pf.IntVar(&flagMaxFPS, "max-fps", 60, "Render frames per second cap (0 = unlimited)")
	pf.Int64Var(&flagSeed, "seed", 0, "World seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.sandbox/history.db", "Path to session history database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom sandbox config YAML")
	pf.StringVar(&flagPreset, "preset", "", "World preset (see 'sandbox list'); empty uses the config layers")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write session logs to this file while the TUI runs")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup builds the logger and loads the configuration. Any failure here is
// fatal for the command.
func setup(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "sandbox",
		Level:           level,
	})

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("tps") {
		cfg.Loop.TickRate = flagTPS
	}
	if flags.Changed("max-fps") {
		cfg.Loop.MaxFPS = flagMaxFPS
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if flagPreset != "" && !registry.Exists(flagPreset) {
		return fmt.Errorf("unknown preset %q (run 'sandbox list' to see available presets)", flagPreset)
	}

	appConfig = cfg
	return nil
}

// seed returns the --seed flag, or a time-based seed when it is 0.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// sessionLogger returns the logger used while a TUI owns the terminal.
// Without --log-file, session logs are discarded.
func sessionLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "sandbox",
		Level:           logger.GetLevel(),
	})
	return l, func() { f.Close() }, nil
}

// builder returns a game builder for the loaded configuration.
func builder(l *log.Logger) game.Builder {
	return game.Builder{Config: appConfig, Logger: l}
}
