package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewStandardsMCPServer creates an MCP server with the compliance tools
// registered. The projectPath is the root directory of the project to
// validate.
func NewStandardsMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"cortex",
		"0.1.0",
		server.WithToolCapabilities(true),
	)
	registerTools(s, projectPath)
	return s
}
