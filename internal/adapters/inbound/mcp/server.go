package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewLintClimateMCPServer creates an MCP server with the lint tools and the
// options and report resources registered. projectPath is the directory
// holding the options file; relative patterns resolve against it.
func NewLintClimateMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"lintclimate",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath)
	registerResources(s, projectPath)

	return s
}
