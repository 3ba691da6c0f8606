package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewFTFMCPServer creates an MCP server exposing the ftf tools.
func NewFTFMCPServer(tools *Tools, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"ftf",
		version,
		server.WithToolCapabilities(true),
	)

	registerTools(s, tools)

	return s
}
