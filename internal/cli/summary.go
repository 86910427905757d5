package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/ray-zero3/hatchlog/internal/event"
)

var summaryFormat string

func init() {
	rootCmd.AddCommand(summaryCmd)
	summaryCmd.Flags().StringVarP(&summaryFormat, "format", "f", "text", "Output format (text|json)")
}

var summaryCmd = &cobra.Command{
	Use:   "summary <log>",
	Short: "Summarize a session log",
	Long:  "Prints event counts per kind, edit character totals, and the time span\nof a JSONL session log.",
	Args:  cobra.ExactArgs(1),
	RunE:  runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	loaded, err := event.Load(args[0])
	if err != nil {
		return err
	}
	for _, w := range loaded.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	sum := event.Summarize(loaded.Events)

	switch summaryFormat {
	case "json":
		out, err := json.MarshalIndent(sum, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal summary: %w", err)
		}
		fmt.Println(string(out))
	case "text":
		printSummary(sum)
	default:
		return fmt.Errorf("unknown format %q (want text or json)", summaryFormat)
	}
	return nil
}

func printSummary(sum event.Summary) {
	fmt.Printf("events:    %d across %d sessions\n", sum.Total, sum.Sessions)
	fmt.Printf("edits:     %d (%d human, %d AI)\n", sum.Edits, sum.HumanEdits, sum.AIEdits)
	fmt.Printf("chars:     +%d / -%d\n", sum.AddedChars, sum.DeletedChars)
	fmt.Printf("lines:     +%d / -%d\n", sum.AddedLines, sum.DeletedLines)
	fmt.Printf("violations: %d\n", sum.Violations)
	fmt.Printf("span:      %dms (%d .. %d)\n", sum.SpanMS, sum.FirstTS, sum.LastTS)

	kinds := make([]string, 0, len(sum.ByKind))
	for k := range sum.ByKind {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	fmt.Println("by kind:")
	for _, k := range kinds {
		fmt.Printf("  %-18s %d\n", k, sum.ByKind[k])
	}
}
