package sketch

import (
	"fmt"
	"strings"

	"github.com/ray-zero3/hatchlog/internal/event"
)

// Instructions renders a human-readable recipe for a completed pass: the
// configuration and statistics a reader needs to redraw the composition by
// hand. Pure function of (config, report, summary).
func Instructions(cfg *Config, rep *Report, sum event.Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "On a %gx%g canvas with a margin of %g%% per side,\n",
		cfg.Canvas.Width, cfg.Canvas.Height, cfg.Canvas.MarginRatio*100)
	fmt.Fprintf(&b, "draw a %dx%d grid of cells, walked in serpentine order.\n", rep.GridSize, rep.GridSize)
	fmt.Fprintf(&b, "Assign %d events to cells in %s order.\n", rep.Events, orderName(cfg.Order))
	b.WriteString("\n")

	fmt.Fprintf(&b, "Hatch each cell at the event's angle: %g for human edits,\n", 45.0)
	fmt.Fprintf(&b, "135 for AI edits, 0 for snapshots, 90 for mode changes,\n")
	fmt.Fprintf(&b, "both diagonals in red for policy violations.\n")
	fmt.Fprintf(&b, "Space lines %g to %g apart, weight %g to %g, by severity.\n",
		cfg.Hatch.SpacingMin, cfg.Hatch.SpacingMax, cfg.Hatch.WeightMin, cfg.Hatch.WeightMax)
	fmt.Fprintf(&b, "Blank a centered hole where characters were deleted.\n")
	b.WriteString("\n")

	fmt.Fprintf(&b, "Cast boundary points from editing cells (%d in total),\n", rep.BoundaryPoints)
	fmt.Fprintf(&b, "then join each point to its %d nearest neighbors (%d lines).\n",
		connectNeighbors, rep.Connections)
	b.WriteString("\n")

	fmt.Fprintf(&b, "The log holds %d events across %d sessions: %d edits\n",
		sum.Total, sum.Sessions, sum.Edits)
	fmt.Fprintf(&b, "(%d human, %d AI), %d policy violations,\n",
		sum.HumanEdits, sum.AIEdits, sum.Violations)
	fmt.Fprintf(&b, "+%d/-%d characters over %s.\n",
		sum.AddedChars, sum.DeletedChars, spanText(sum.SpanMS))

	if rep.SeedDerived {
		fmt.Fprintf(&b, "\nSeed %d was derived from the clock; this drawing is not reproducible.\n", rep.Seed)
	} else {
		fmt.Fprintf(&b, "\nSeed %d reproduces this drawing exactly.\n", rep.Seed)
	}

	return b.String()
}

func orderName(o event.Order) string {
	switch o {
	case event.OrderSeverity:
		return "descending severity"
	case event.OrderTypeBlocks:
		return "kind-block"
	default:
		return "chronological"
	}
}

func spanText(ms int64) string {
	switch {
	case ms >= 3600_000:
		return fmt.Sprintf("%.1f hours", float64(ms)/3600_000)
	case ms >= 60_000:
		return fmt.Sprintf("%.1f minutes", float64(ms)/60_000)
	default:
		return fmt.Sprintf("%.1f seconds", float64(ms)/1000)
	}
}
