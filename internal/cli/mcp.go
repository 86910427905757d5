package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ray-zero3/hatchlog/internal/mcp"
)

var (
	mcpConfigPath string
	mcpOutputDir  string
)

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().StringVarP(&mcpConfigPath, "config", "c", "", "Default sketch config YAML for tool calls")
	mcpCmd.Flags().StringVar(&mcpOutputDir, "output-dir", ".", "Directory for rendered SVG files")
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run as an MCP server on stdio",
	Long:  "Exposes hatchlog_render and hatchlog_summary as Model Context Protocol\ntools, so an agent can draw or inspect its own session log.",
	RunE:  runMCP,
}

func runMCP(cmd *cobra.Command, args []string) error {
	srv, err := mcp.New(mcp.Config{
		ConfigPath: mcpConfigPath,
		OutputDir:  mcpOutputDir,
		Version:    version,
	})
	if err != nil {
		return fmt.Errorf("create MCP server: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Fprintln(os.Stderr, "hatchlog MCP server listening on stdio")
	return srv.Run(ctx)
}
