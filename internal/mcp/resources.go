// ABOUTME: MCP resource implementations for duckie
// ABOUTME: Exposes the stored commands and the active configuration
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/harper/duckie/internal/config"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	commandsURI       = "duckie://commands"
	projectContextURI = "duckie://project-context"
)

// registerResources adds all MCP resources to the server.
func (s *Server) registerResources() {
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         commandsURI,
		Name:        "Commands",
		Description: "Every stored command in ID order",
		MIMEType:    "application/json",
	}, s.handleCommands)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         projectContextURI,
		Name:        "Project Context",
		Description: "Current directory's duckie configuration and database location",
		MIMEType:    "application/json",
	}, s.handleProjectContext)
}

// handleCommands implements the commands resource.
func (s *Server) handleCommands(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	records, err := s.store.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list commands: %w", err)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, err
	}

	return jsonResource(commandsURI, data), nil
}

// handleProjectContext implements the project-context resource.
func (s *Server) handleProjectContext(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	var contextData struct {
		HasProjectConfig bool           `json:"has_project_config"`
		ProjectRoot      string         `json:"project_root,omitempty"`
		DBPath           string         `json:"db_path"`
		Count            int            `json:"count"`
		Floor            float64        `json:"confidence_floor"`
		Config           *config.Config `json:"config,omitempty"`
		Message          string         `json:"message"`
	}

	contextData.DBPath = s.store.Path()
	contextData.Floor = s.matcher.Floor()
	if contextData.Count, err = s.store.Count(); err != nil {
		return nil, fmt.Errorf("failed to count commands: %w", err)
	}

	cfg, err := config.Load(cwd)
	switch {
	case err != nil:
		contextData.Message = fmt.Sprintf("Configuration could not be loaded: %v", err)
	case cfg.ProjectRoot == "":
		contextData.Config = cfg
		contextData.Message = "No .duckie project configuration found in current directory tree"
	default:
		contextData.HasProjectConfig = true
		contextData.ProjectRoot = cfg.ProjectRoot
		contextData.Config = cfg
		contextData.Message = "Project-specific duckie configuration found"
	}

	data, err := json.MarshalIndent(contextData, "", "  ")
	if err != nil {
		return nil, err
	}

	return jsonResource(projectContextURI, data), nil
}

func jsonResource(uri string, data []byte) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      uri,
				MIMEType: "application/json",
				Text:     string(data),
			},
		},
	}
}
