// Package mcp provides a Model Context Protocol server for hookkit.
// It exposes repository discovery, hook installation and asset staging as
// MCP tools so an agent can set up a project without shelling out.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer creates an MCP server with all hookkit tools registered.
// configDir is used for global template lookup and may be empty.
func NewServer(version, configDir string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "hookkit",
		Version: version,
	}, nil)
	registerTools(server, configDir)
	return server
}

func boolPtr(b bool) *bool {
	return &b
}

func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// writeAnnotations marks tools that modify the repository. Installing a hook
// renames the previous one rather than deleting it, so it is not destructive.
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}
}

func registerTools(server *mcp.Server, configDir string) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "find_git_root",
		Description: "Find the nearest ancestor of a directory that contains a .git directory.",
		Annotations: readOnlyAnnotations(),
	}, handleFindRoot())

	mcp.AddTool(server, &mcp.Tool{
		Name:        "hook_status",
		Description: "Report whether each git hook is installed, matches the hookkit template, and has a .backup.",
		Annotations: readOnlyAnnotations(),
	}, handleStatus(configDir))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "install_hooks",
		Description: "Install the hookkit pre-commit script as one or more git hooks. Existing hooks are renamed to <name>.backup.",
		Annotations: writeAnnotations(),
	}, handleInstall(configDir))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "copy",
		Description: "Copy a file or directory from a caller directory into the enclosing git project. The target must stay inside the project.",
		Annotations: writeAnnotations(),
	}, handleCopy())
}
