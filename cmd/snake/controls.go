package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/checker-snake/internal/config"
)

var controlsCmd = &cobra.Command{
	Use:   "controls",
	Short: "List key bindings",
	Long:  `Shows the key bindings from the effective configuration.`,
	RunE:  runControls,
}

func runControls(_ *cobra.Command, _ []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}
	printControls(s.Config.Controls)
	fmt.Println()
	fmt.Printf("Loaded from: %s\n", s.Source)
	return nil
}

func printControls(c config.ControlsConfig) {
	rows := []struct {
		action string
		keys   []string
	}{
		{"up", c.Up},
		{"down", c.Down},
		{"left", c.Left},
		{"right", c.Right},
		{"quit", c.Quit},
	}

	fmt.Println("Controls:")
	fmt.Println()

	// Calculate column widths
	maxLen := len("Action")
	for _, r := range rows {
		if len(r.action) > maxLen {
			maxLen = len(r.action)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxLen, "Action", "Keys")
	fmt.Printf("  %-*s  %s\n", maxLen, "------", "----")

	for _, r := range rows {
		fmt.Printf("  %-*s  %s\n", maxLen, r.action, strings.Join(r.keys, ", "))
	}
}
