// ABOUTME: MCP server implementation for duckie
// ABOUTME: Exposes the command store to AI assistants over stdio
package mcp

import (
	"context"

	"github.com/harper/duckie/internal/db"
	"github.com/harper/duckie/internal/match"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Version is reported to MCP clients during initialization.
const Version = "0.1.0"

// Server wraps the MCP server with duckie-specific functionality.
type Server struct {
	mcpServer  *mcp.Server
	store      *db.Store
	matcher    *match.Matcher
	maxResults int
}

// NewServer creates a duckie MCP server over an open store. maxResults caps
// search_commands when the caller does not pass a limit.
func NewServer(store *db.Store, matcher *match.Matcher, maxResults int) *Server {
	impl := &mcp.Implementation{
		Name:    "duckie",
		Version: Version,
	}

	if maxResults < 1 {
		maxResults = 1
	}

	server := &Server{
		mcpServer:  mcp.NewServer(impl, nil),
		store:      store,
		matcher:    matcher,
		maxResults: maxResults,
	}

	// Register components
	server.registerPrompts()
	server.registerTools()
	server.registerResources()

	return server
}

// Run starts the MCP server with stdio transport.
func (s *Server) Run(ctx context.Context) error {
	transport := &mcp.StdioTransport{}
	return s.mcpServer.Run(ctx, transport)
}
