// Package mcpserver exposes the detector, the fixer and the role reference
// as MCP tools over stdio.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"arialint/internal/driver"
	"arialint/internal/version"
)

// Server holds the options every tool call runs with.
type Server struct {
	opts driver.Options
}

// New creates a tool set that analyses snippets with opts. Cache and
// progress settings are ignored; snippets are small and arrive one by one.
func New(opts driver.Options) *Server {
	opts.Cache = nil
	opts.Progress = nil
	opts.Timer = nil
	return &Server{opts: opts}
}

// MCP builds the protocol server with all tools registered.
func (s *Server) MCP() *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "arialint",
			Version: version.Current().Version,
		},
		nil,
	)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "detect_smells",
		Description: "Check an HTML/JSX/template snippet for ARIA misuse. Returns structured diagnostics (code, severity, subject, location) and the same findings as HTML fragments.",
	}, s.handleDetect)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_fix",
		Description: "Apply the conservative ARIA autofixes to a snippet: drop redundant roles, add default aria-checked and aria-value* attributes, wrap tabs in a tablist. Returns the fixed text and the change log.",
	}, s.handleFix)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "find_role",
		Description: "Look up a WAI-ARIA role by name (case-insensitive): category, description, preferred native element and required/discouraged attributes.",
	}, s.handleFindRole)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_roles",
		Description: "List known WAI-ARIA role names, optionally restricted to one category (live region, landmark, window, widget, document structure, other).",
	}, s.handleListRoles)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "extract_aria_attributes",
		Description: "List the quoted aria-* attributes of a snippet in order, with an explanation per attribute and whether a diagnostic is about it.",
	}, s.handleAttributes)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "implicit_role",
		Description: "Return the role a native element carries without an explicit role attribute, e.g. a[href] is a link and input type=checkbox is a checkbox.",
	}, s.handleImplicitRole)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "summarize",
		Description: "Summarise a snippet: the role it is about (explicit, else implicit) and the ARIA attributes it uses.",
	}, s.handleSummarize)

	return server
}

// Run serves the tools over stdio.
// It blocks until the client disconnects or the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.MCP().Run(ctx, &mcp.StdioTransport{})
}
