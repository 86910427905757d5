package mcp

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ray-zero3/hatchlog/internal/event"
	"github.com/ray-zero3/hatchlog/internal/render"
	"github.com/ray-zero3/hatchlog/internal/sketch"
)

// --- Input/Output types ---

// RenderInput defines parameters for the hatchlog_render tool.
type RenderInput struct {
	LogPath    string `json:"log_path" jsonschema:"path to the JSONL session log"`
	ConfigPath string `json:"config_path,omitempty" jsonschema:"optional sketch config YAML, defaults to the server config"`
	OutPath    string `json:"out_path,omitempty" jsonschema:"output SVG path, defaults to a timestamped file in the server output dir"`
	Seed       uint32 `json:"seed,omitempty" jsonschema:"nonzero seed for a reproducible drawing"`
	Order      string `json:"order,omitempty" jsonschema:"cell ordering: time, severity, or type_blocks"`
}

// RenderOutput reports the written drawing.
type RenderOutput struct {
	OutPath      string         `json:"out_path"`
	Report       *sketch.Report `json:"report"`
	Instructions string         `json:"instructions"`
	Warnings     []string       `json:"warnings,omitempty"`
}

// SummaryInput defines parameters for the hatchlog_summary tool.
type SummaryInput struct {
	LogPath string `json:"log_path" jsonschema:"path to the JSONL session log"`
}

// SummaryOutput carries the aggregated log statistics.
type SummaryOutput struct {
	Summary  event.Summary `json:"summary"`
	Warnings []string      `json:"warnings,omitempty"`
}

// --- Handlers ---

func (s *Server) handleRender(ctx context.Context, req *mcpsdk.CallToolRequest, input RenderInput) (*mcpsdk.CallToolResult, RenderOutput, error) {
	configPath := input.ConfigPath
	if configPath == "" {
		configPath = s.cfg.ConfigPath
	}
	outPath := input.OutPath
	if outPath == "" {
		outPath = filepath.Join(s.cfg.OutputDir, fmt.Sprintf("hatchlog-%d.svg", time.Now().Unix()))
	}

	res, err := render.Run(ctx, render.Options{
		LogPath:    input.LogPath,
		ConfigPath: configPath,
		OutPath:    outPath,
		Seed:       input.Seed,
		Order:      event.Order(input.Order),
	})
	if err != nil {
		return &mcpsdk.CallToolResult{IsError: true}, RenderOutput{}, err
	}

	out := RenderOutput{
		OutPath:      res.OutPath,
		Report:       res.Report,
		Instructions: res.Instructions,
		Warnings:     res.Warnings,
	}
	return nil, out, nil
}

func (s *Server) handleSummary(ctx context.Context, req *mcpsdk.CallToolRequest, input SummaryInput) (*mcpsdk.CallToolResult, SummaryOutput, error) {
	loaded, err := event.Load(input.LogPath)
	if err != nil {
		return &mcpsdk.CallToolResult{IsError: true}, SummaryOutput{}, err
	}

	out := SummaryOutput{
		Summary:  event.Summarize(loaded.Events),
		Warnings: loaded.Warnings,
	}
	return nil, out, nil
}
