package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sandbox/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryStats bool
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent sessions",
	Long: `Display the most recent sandbox sessions, optionally filtered by --preset.

Examples:
  sandbox history
  sandbox history --preset deep --limit 5
  sandbox history --stats
  sandbox history --clear --preset flat`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of sessions to show")
	historyCmd.Flags().BoolVar(&flagHistoryStats, "stats", false, "Show per-preset totals instead of sessions")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete the history (of --preset, or everything)")
}

func runHistory(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	switch {
	case flagHistoryClear:
		if err := store.ClearSessions(flagPreset); err != nil {
			return err
		}
		fmt.Println("History cleared.")
		return nil

	case flagHistoryStats:
		return printStats(store)
	}

	sessions, err := store.RecentSessions(flagPreset, flagHistoryLimit)
	if err != nil {
		return err
	}

	title := "all presets"
	if flagPreset != "" {
		title = flagPreset
	}
	fmt.Printf("Recent sessions - %s\n", title)
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'sandbox play' to start one!")
		return nil
	}

	fmt.Printf("  %-8s  %-20s  %-7s  %8s  %6s  %6s  %s\n", "Preset", "Seed", "Size", "Ticks", "Deaths", "Time", "Date")
	fmt.Printf("  %-8s  %-20s  %-7s  %8s  %6s  %6s  %s\n", "------", "----", "----", "-----", "------", "----", "----")
	for _, s := range sessions {
		fmt.Printf("  %-8s  %-20d  %-7s  %8d  %6d  %6s  %s\n",
			s.Preset,
			s.Seed,
			fmt.Sprintf("%dx%d", s.Width, s.Height),
			s.Ticks,
			s.Deaths,
			fmt.Sprintf("%d:%02d", s.Duration/60, s.Duration%60),
			s.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	return nil
}

func printStats(store *storage.Store) error {
	stats, err := store.PresetStats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No sessions recorded yet.")
		return nil
	}

	names := make([]string, 0, len(stats))
	for name := range stats {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Printf("  %-8s  %8s  %10s  %6s  %s\n", "Preset", "Sessions", "Ticks", "Deaths", "Last played")
	fmt.Printf("  %-8s  %8s  %10s  %6s  %s\n", "------", "--------", "-----", "------", "-----------")
	for _, name := range names {
		s := stats[name]
		fmt.Printf("  %-8s  %8d  %10d  %6d  %s\n",
			s.Preset, s.Sessions, s.TotalTicks, s.Deaths, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
