// ABOUTME: MCP tool implementations for duckie
// ABOUTME: Search, add and delete stored commands
package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/harper/duckie/internal/match"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/samber/lo"
)

// SearchCommandsInput defines the input for the search_commands tool.
type SearchCommandsInput struct {
	Query string `json:"query" jsonschema:"What the user wants to do, in plain words"`
	Limit int    `json:"limit,omitempty" jsonschema:"Maximum number of matches to return"`
}

// CommandMatch is one ranked search hit.
type CommandMatch struct {
	ID          int64   `json:"id" jsonschema:"Record ID"`
	Intent      string  `json:"intent" jsonschema:"What the command does"`
	Command     string  `json:"command" jsonschema:"The shell command"`
	Description string  `json:"description,omitempty" jsonschema:"Optional notes"`
	Confidence  float64 `json:"confidence" jsonschema:"Match confidence between 0 and 1"`
}

// SearchCommandsOutput defines the output for the search_commands tool.
type SearchCommandsOutput struct {
	Matches []CommandMatch `json:"matches" jsonschema:"Matches, best first"`
	Count   int            `json:"count" jsonschema:"Number of matches"`
}

// AddCommandInput defines the input for the add_command tool.
type AddCommandInput struct {
	Intent      string `json:"intent" jsonschema:"Short description of what the command does"`
	Command     string `json:"command" jsonschema:"The shell command to store"`
	Description string `json:"description,omitempty" jsonschema:"Optional longer notes"`
}

// AddCommandOutput defines the output for the add_command tool.
type AddCommandOutput struct {
	ID      int64  `json:"id" jsonschema:"The ID of the stored command"`
	Intent  string `json:"intent" jsonschema:"The stored intent"`
	Command string `json:"command" jsonschema:"The stored command"`
}

// DeleteCommandInput defines the input for the delete_command tool.
type DeleteCommandInput struct {
	ID int64 `json:"id" jsonschema:"ID of the command to delete"`
}

// DeleteCommandOutput defines the output for the delete_command tool.
type DeleteCommandOutput struct {
	ID      int64 `json:"id" jsonschema:"ID of the deleted command"`
	Deleted bool  `json:"deleted" jsonschema:"Whether the command was removed"`
}

// registerTools adds all MCP tools to the server.
func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "search_commands",
		Description: "Find stored shell commands that match what the user is trying to do. Use this before writing a command from scratch.",
	}, s.handleSearchCommands)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_command",
		Description: "Store a shell command with a short intent so it can be found again later.",
	}, s.handleAddCommand)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_command",
		Description: "Delete a stored command by its ID.",
	}, s.handleDeleteCommand)
}

// handleSearchCommands implements the search_commands tool.
func (s *Server) handleSearchCommands(ctx context.Context, req *mcp.CallToolRequest, input SearchCommandsInput) (*mcp.CallToolResult, SearchCommandsOutput, error) {
	records, err := s.store.ListAll()
	if err != nil {
		return nil, SearchCommandsOutput{}, fmt.Errorf("failed to list commands: %w", err)
	}

	limit := input.Limit
	if limit <= 0 {
		limit = s.maxResults
	}

	ranked := s.matcher.Rank(input.Query, records, limit)
	output := SearchCommandsOutput{
		Matches: lo.Map(ranked, func(r match.Result, _ int) CommandMatch {
			return CommandMatch{
				ID:          r.Record.ID,
				Intent:      r.Record.Intent,
				Command:     r.Record.Command,
				Description: r.Record.Description,
				Confidence:  r.Confidence,
			}
		}),
		Count: len(ranked),
	}

	var text strings.Builder
	if len(ranked) == 0 {
		text.WriteString("No matching commands found.")
	}
	for _, m := range output.Matches {
		fmt.Fprintf(&text, "#%d %s (%.0f%%)\n%s\n\n", m.ID, m.Intent, m.Confidence*100, m.Command)
	}

	result := &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: strings.TrimSpace(text.String())},
		},
	}

	return result, output, nil
}

// handleAddCommand implements the add_command tool.
func (s *Server) handleAddCommand(ctx context.Context, req *mcp.CallToolRequest, input AddCommandInput) (*mcp.CallToolResult, AddCommandOutput, error) {
	rec, err := s.store.Insert(input.Intent, input.Command, input.Description)
	if err != nil {
		return nil, AddCommandOutput{}, fmt.Errorf("failed to add command: %w", err)
	}

	output := AddCommandOutput{
		ID:      rec.ID,
		Intent:  rec.Intent,
		Command: rec.Command,
	}

	result := &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{
				Text: fmt.Sprintf("Command added (ID: %d)", rec.ID),
			},
		},
	}

	return result, output, nil
}

// handleDeleteCommand implements the delete_command tool.
func (s *Server) handleDeleteCommand(ctx context.Context, req *mcp.CallToolRequest, input DeleteCommandInput) (*mcp.CallToolResult, DeleteCommandOutput, error) {
	if err := s.store.Delete(input.ID); err != nil {
		return nil, DeleteCommandOutput{}, fmt.Errorf("failed to delete command %d: %w", input.ID, err)
	}

	result := &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{
				Text: fmt.Sprintf("Command %d deleted", input.ID),
			},
		},
	}

	return result, DeleteCommandOutput{ID: input.ID, Deleted: true}, nil
}
