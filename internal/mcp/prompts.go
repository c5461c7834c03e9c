// ABOUTME: MCP prompt definitions for duckie
// ABOUTME: Tells AI assistants when to reach for the command store
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const gettingStarted = `Duckie is a personal store of shell commands, each saved with a short
intent describing what it does. It finds commands by fuzzy matching, so
partial or misspelled queries still work.

When to use duckie:
- Before composing a non-trivial shell command, search for it first
- When the user says "what was that command for..." or "how do I ... again"
- After the user works out a useful command, offer to store it

Best practices:
- Keep intents short and task-shaped ("scan network ports", "ssh with key")
- Put flags and caveats in the description, not the intent
- Commands are unique; adding the same command twice is rejected
- Show the confidence of a match when it is below 70%`

// registerPrompts adds static prompts to the MCP server.
func (s *Server) registerPrompts() {
	prompt := &mcp.Prompt{
		Name:        "duckie-getting-started",
		Description: "Introduction to duckie and how AI assistants should use it",
	}

	s.mcpServer.AddPrompt(prompt, handleGettingStarted)
}

func handleGettingStarted(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return &mcp.GetPromptResult{
		Description: "Getting started with duckie",
		Messages: []*mcp.PromptMessage{
			{
				Role: "user",
				Content: &mcp.TextContent{
					Text: gettingStarted,
				},
			},
		},
	}, nil
}
