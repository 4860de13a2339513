package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	minecorgmcp "github.com/gorewood/minecorg/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run minecorg as a Model Context Protocol (MCP) server over stdio.

Tools default to the project in --project (or the working directory);
each call may pass its own "path".

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "minecorg": {
        "command": "minecorg",
        "args": ["serve", "--project", "/path/to/addon"]
      }
    }
  }

Available tools: project_info, scan, list_assets, new_entity`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			server := minecorgmcp.NewServer(buildVersion(), minecorgmcp.Deps{
				Root:   a.root,
				Loader: a.loader,
				Logger: a.logger,
			})
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
