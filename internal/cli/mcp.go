// ABOUTME: MCP subcommand for running the duckie MCP server
// ABOUTME: Handles stdio transport initialization and server lifecycle
package cli

import (
	"os"
	"os/signal"

	"github.com/harper/duckie/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the duckie MCP server",
	Long:  `Start the Model Context Protocol server for AI assistants to search and store commands over stdio.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		a.logger.Info("starting MCP server", "db", a.store.Path())
		server := mcp.NewServer(a.store, a.matcher, a.cfg.MaxResults)
		return server.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
