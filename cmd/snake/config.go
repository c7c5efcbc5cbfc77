package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration the game would run with, as YAML.

The output is a complete config file and can be used as a starting point:
  snake config > ~/.snake/config.yaml`,
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}

	data, err := s.Config.Marshal()
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "# source: %s\n", s.Source)
	fmt.Print(string(data))
	return nil
}
