// Package render wires the full pipeline — load, normalize, prepare,
// compose, write SVG — behind one call shared by the CLI and the MCP tools.
package render

import (
	"context"
	"fmt"
	"os"

	"github.com/ray-zero3/hatchlog/internal/event"
	"github.com/ray-zero3/hatchlog/internal/sketch"
	"github.com/ray-zero3/hatchlog/internal/svg"
)

// Options selects inputs and per-call overrides for one render.
type Options struct {
	LogPath    string
	ConfigPath string
	OutPath    string

	// Seed overrides the configured seed when nonzero.
	Seed uint32
	// MaxEvents overrides the configured cap when nonzero.
	MaxEvents int
	// Order overrides the configured ordering when nonempty.
	Order event.Order
}

// Result reports one completed render.
type Result struct {
	OutPath      string         `json:"out_path"`
	Report       *sketch.Report `json:"report"`
	Summary      event.Summary  `json:"summary"`
	Instructions string         `json:"instructions"`
	Warnings     []string       `json:"warnings,omitempty"`
}

// Run executes one render pass and writes the SVG to opts.OutPath.
func Run(ctx context.Context, opts Options) (*Result, error) {
	cfg, err := sketch.LoadConfig(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	applyOverrides(cfg, opts)

	loaded, err := event.Load(opts.LogPath)
	if err != nil {
		return nil, err
	}

	prepared := event.Prepare(loaded.Events, event.PrepareOptions{
		MaxEvents: cfg.MaxEvents,
		Order:     cfg.Order,
	})

	canvas, report, err := Compose(ctx, cfg, prepared)
	if err != nil {
		return nil, err
	}

	out, err := os.Create(opts.OutPath)
	if err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}
	defer out.Close()
	if _, err := canvas.WriteTo(out); err != nil {
		return nil, fmt.Errorf("write output: %w", err)
	}

	summary := event.Summarize(loaded.Events)
	return &Result{
		OutPath:      opts.OutPath,
		Report:       report,
		Summary:      summary,
		Instructions: sketch.Instructions(cfg, report, summary),
		Warnings:     loaded.Warnings,
	}, nil
}

// Compose renders prepared events to an in-memory SVG canvas, tiled when the
// config asks for it.
func Compose(ctx context.Context, cfg *sketch.Config, prepared []event.Prepared) (*svg.Canvas, *sketch.Report, error) {
	if cfg.Tile.Grid <= 1 && cfg.Tile.Scale == 1 {
		canvas := svg.New(cfg.Canvas.Width, cfg.Canvas.Height)
		report := sketch.NewComposer(cfg).Render(canvas, prepared)
		return canvas, report, nil
	}

	canvas := svg.New(cfg.Canvas.Width*cfg.Tile.Scale, cfg.Canvas.Height*cfg.Tile.Scale)
	report, err := sketch.NewTiler(cfg).Render(ctx, canvas, canvas, prepared)
	if err != nil {
		return nil, nil, err
	}
	return canvas, report, nil
}

func applyOverrides(cfg *sketch.Config, opts Options) {
	if opts.Seed != 0 {
		cfg.Seed = opts.Seed
	}
	if opts.MaxEvents != 0 {
		cfg.MaxEvents = opts.MaxEvents
	}
	if opts.Order != "" {
		cfg.Order = opts.Order
	}
}
