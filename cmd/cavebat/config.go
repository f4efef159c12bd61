package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cave-bat/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default tuning YAML",
	Long: `Print the built-in tuning YAML to stdout. Redirect it to a file,
edit the values, and load it with --config or by placing it at
~/.cavebat/config.yaml.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(string(config.DefaultYAML()))
	},
}
