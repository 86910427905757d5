package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ray-zero3/hatchlog/internal/event"
)

var mergeOut string

func init() {
	rootCmd.AddCommand(mergeCmd)
	mergeCmd.Flags().StringVarP(&mergeOut, "out", "o", "", "Output path (default stdout)")
}

var mergeCmd = &cobra.Command{
	Use:   "merge <log> [<log>...]",
	Short: "Stitch session logs into one contiguous sequence",
	Long:  "Reads multiple append-only session logs, drops duplicate records\n(same timestamp, session, and event kind), sorts by timestamp, and\nrenumbers elapsed time so the output reads as one session.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runMerge,
}

func runMerge(cmd *cobra.Command, args []string) error {
	res, err := event.Merge(args)
	if err != nil {
		return err
	}

	for _, w := range res.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	out := os.Stdout
	if mergeOut != "" {
		f, err := os.Create(mergeOut)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}
	if err := event.WriteRecords(out, res.Records); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "merge %s: %d records kept, %d duplicates dropped\n",
		res.MergeID, len(res.Records), res.Dropped)
	return nil
}
