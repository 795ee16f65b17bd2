package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/gorewood/hookkit/internal/config"
	hookkitmcp "github.com/gorewood/hookkit/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run hookkit as a Model Context Protocol (MCP) server over stdio.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "hookkit": {
        "command": "hookkit",
        "args": ["serve"]
      }
    }
  }

Available tools: find_git_root, hook_status, install_hooks, copy`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			server := hookkitmcp.NewServer(buildVersion(), config.Dir())
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
