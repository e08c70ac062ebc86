package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sandbox/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all world presets",
	Long:  `Shows a list of all world presets registered in the sandbox.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	presets := registry.List()

	if len(presets) == 0 {
		fmt.Println("No presets available.")
		return
	}

	fmt.Println("Available presets:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, p := range presets {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, "ID", "Title", "Description")
	fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, "--", "-----", "-----------")

	for _, p := range presets {
		fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, p.ID, p.Title, p.Description)
	}

	fmt.Println()
	fmt.Println("Run 'sandbox play --preset <id>' to play a preset.")
}
