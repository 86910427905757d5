// Package mcp exposes hatchlog over the Model Context Protocol, so an agent
// can request a drawing or a summary of its own session log.
package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ray-zero3/hatchlog/internal/sketch"
)

// Config holds MCP server configuration.
type Config struct {
	// ConfigPath is the default sketch config; tool calls may override it.
	ConfigPath string
	// OutputDir is where render tool calls write SVG files.
	OutputDir string
	Version   string
}

// Server wraps the MCP SDK server with the hatchlog tools.
type Server struct {
	mcpServer *mcpsdk.Server
	cfg       Config
}

// New creates an MCP server with the render and summary tools registered.
// The default sketch config is loaded once so a bad path fails at startup
// rather than on the first tool call.
func New(cfg Config) (*Server, error) {
	if _, err := sketch.LoadConfig(cfg.ConfigPath); err != nil {
		return nil, err
	}

	version := cfg.Version
	if version == "" {
		version = "dev"
	}

	s := &Server{cfg: cfg}
	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    "hatchlog",
			Version: version,
		},
		nil,
	)

	s.registerTools()
	return s, nil
}

// Run starts the MCP server on stdio transport. Blocks until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

// registerTools adds the hatchlog tools to the MCP server.
func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "hatchlog_render",
		Description: "Render a session log into a deterministic hatching composition (SVG). Returns the render report and instructions text.",
	}, s.handleRender)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "hatchlog_summary",
		Description: "Summarize a session log: event counts per kind, edit totals, time span.",
	}, s.handleSummary)
}
