// Package cli implements the hatchlog command tree.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hatchlog",
	Short: "Draw editing-session logs as grid-hatched compositions",
	Long:  "Converts a time-ordered log of editing events — human and AI code edits,\nsnapshots, mode changes, policy violations — into a deterministic,\nseed-reproducible hatching drawing.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
