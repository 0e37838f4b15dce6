package mcpserver

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"arialint/internal/diagfmt"
	"arialint/internal/driver"
	"arialint/internal/fix"
	"arialint/internal/markup"
	"arialint/internal/roles"
	"arialint/internal/semantics"
	"arialint/internal/source"
	"arialint/internal/summary"
	"arialint/internal/trace"
)

const snippetName = "snippet.html"

type snippetInput struct {
	Snippet string `json:"snippet" jsonschema:"The markup to analyse"`
}

type detectOutput struct {
	Diagnostics []diagfmt.DiagnosticJSON `json:"diagnostics"`
	// Messages are the findings as HTML fragments, the form UIs show.
	Messages []string `json:"messages"`
	Count    int      `json:"count"`
}

func (s *Server) handleDetect(ctx context.Context, req *mcp.CallToolRequest, input snippetInput) (*mcp.CallToolResult, detectOutput, error) {
	span := trace.Begin(trace.FromContext(ctx), trace.ScopeDriver, "mcp:detect_smells", trace.CurrentSpan(ctx).SpanID)
	defer span.End("")
	ctx = trace.WithSpanContext(ctx, trace.SpanContext{SpanID: span.ID()})

	res := driver.DiagnoseSnippet(ctx, snippetName, input.Snippet, s.opts)
	diags := res.Diagnostics()
	out := diagfmt.BuildDiagnosticsOutput(diags, res.FileSet, diagfmt.JSONOpts{
		IncludePositions: true,
		PathMode:         diagfmt.PathModeBasename,
		IncludeNotes:     true,
	})
	return nil, detectOutput{
		Diagnostics: out.Diagnostics,
		Messages:    diagfmt.HTMLStrings(diags),
		Count:       out.Count,
	}, nil
}

type fixInput struct {
	Snippet    string `json:"snippet" jsonschema:"The markup to fix"`
	TrackDepth bool   `json:"track_depth,omitempty" jsonschema:"Pair tab containers with their matching closing tag instead of the first closing tag of the same name"`
}

type fixOutput struct {
	Text       string               `json:"text"`
	Changed    bool                 `json:"changed"`
	Changes    []diagfmt.ChangeJSON `json:"changes"`
	Messages   []string             `json:"messages"`
	Idempotent bool                 `json:"idempotent"`
}

func (s *Server) handleFix(ctx context.Context, req *mcp.CallToolRequest, input fixInput) (*mcp.CallToolResult, fixOutput, error) {
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeDriver, "mcp:generate_fix", trace.CurrentSpan(ctx).SpanID)
	defer span.End("")

	opts := s.opts.Fix
	opts.TrackDepth = opts.TrackDepth || input.TrackDepth
	opts.Tracer = tracer
	opts.ParentSpan = span.ID()

	res, idempotent := fix.Verify([]byte(input.Snippet), opts)
	fs := source.NewFileSet()
	file := fs.AddVirtual(snippetName, []byte(input.Snippet))
	out := diagfmt.BuildFixOutput(res, fs, file, diagfmt.PathModeBasename)

	messages := make([]string, 0, len(out.Changes))
	for _, c := range out.Changes {
		messages = append(messages, c.HTML)
	}
	span.WithExtra("changes", strconv.Itoa(len(out.Changes)))

	return nil, fixOutput{
		Text:       out.Text,
		Changed:    out.Changed,
		Changes:    out.Changes,
		Messages:   messages,
		Idempotent: idempotent,
	}, nil
}

type findRoleInput struct {
	Name string `json:"name" jsonschema:"Role name, e.g. tab or Button"`
}

type roleOutput struct {
	Found           bool     `json:"found"`
	Name            string   `json:"name"`
	Category        string   `json:"category,omitempty"`
	Description     string   `json:"description,omitempty"`
	DocURL          string   `json:"doc_url,omitempty"`
	PreferredNative string   `json:"preferred_native,omitempty"`
	GoodFor         []string `json:"good_for"`
	Deprecated      bool     `json:"deprecated,omitempty"`
	Required        []string `json:"required_attributes"`
	Discouraged     []string `json:"discouraged_attributes"`
}

func (s *Server) handleFindRole(ctx context.Context, req *mcp.CallToolRequest, input findRoleInput) (*mcp.CallToolResult, roleOutput, error) {
	r, ok := roles.Lookup(input.Name)
	if !ok {
		return nil, roleOutput{
			Name:        strings.TrimSpace(input.Name),
			GoodFor:     []string{},
			Required:    []string{},
			Discouraged: []string{},
		}, nil
	}
	return nil, roleOutput{
		Found:           true,
		Name:            r.Name,
		Category:        string(r.Category),
		Description:     r.Description,
		DocURL:          r.DocURL,
		PreferredNative: r.PreferredNative,
		GoodFor:         nonNil(r.GoodFor),
		Deprecated:      r.Deprecated,
		Required:        nonNil(roles.RequiredFor(r.Name)),
		Discouraged:     nonNil(roles.DiscouragedFor(r.Name)),
	}, nil
}

type listRolesInput struct {
	Category string `json:"category,omitempty" jsonschema:"Optional category filter"`
}

type listRolesOutput struct {
	Roles []string `json:"roles"`
}

func (s *Server) handleListRoles(ctx context.Context, req *mcp.CallToolRequest, input listRolesInput) (*mcp.CallToolResult, listRolesOutput, error) {
	if strings.TrimSpace(input.Category) == "" {
		return nil, listRolesOutput{Roles: roles.Names()}, nil
	}
	cat, ok := roles.ParseCategory(input.Category)
	if !ok {
		return nil, listRolesOutput{}, fmt.Errorf("unknown role category %q", input.Category)
	}
	names := make([]string, 0)
	for _, r := range roles.ByCategory(cat) {
		names = append(names, r.Name)
	}
	return nil, listRolesOutput{Roles: names}, nil
}

type attributesOutput struct {
	Attributes []summary.Attribute `json:"attributes"`
}

func (s *Server) handleAttributes(ctx context.Context, req *mcp.CallToolRequest, input snippetInput) (*mcp.CallToolResult, attributesOutput, error) {
	res := driver.DiagnoseSnippet(ctx, snippetName, strings.TrimSpace(input.Snippet), s.opts)
	sum := summary.Build(input.Snippet, res.Diagnostics())
	return nil, attributesOutput{Attributes: sum.Attributes}, nil
}

type implicitRoleInput struct {
	TagName string `json:"tag_name" jsonschema:"Element name, e.g. a or input"`
	TagText string `json:"tag_text,omitempty" jsonschema:"The opening tag or its attribute text; consulted for a[href] and input[type]"`
}

type implicitRoleOutput struct {
	Found bool   `json:"found"`
	Role  string `json:"role"`
}

func (s *Server) handleImplicitRole(ctx context.Context, req *mcp.CallToolRequest, input implicitRoleInput) (*mcp.CallToolResult, implicitRoleOutput, error) {
	role, ok := semantics.ImplicitRole(input.TagName, input.TagText)
	return nil, implicitRoleOutput{Found: ok, Role: role}, nil
}

type summarizeOutput struct {
	Kind       string              `json:"kind"`
	Role       string              `json:"role,omitempty"`
	Category   string              `json:"category,omitempty"`
	Detected   []string            `json:"detected"`
	Implicit   []string            `json:"implicit"`
	Attributes []summary.Attribute `json:"attributes"`
	Tags       int                 `json:"tags"`
}

func (s *Server) handleSummarize(ctx context.Context, req *mcp.CallToolRequest, input snippetInput) (*mcp.CallToolResult, summarizeOutput, error) {
	res := driver.DiagnoseSnippet(ctx, snippetName, strings.TrimSpace(input.Snippet), s.opts)
	sum := summary.Build(input.Snippet, res.Diagnostics())

	out := summarizeOutput{
		Kind:       sum.Role.Kind.String(),
		Detected:   nonNil(sum.Role.Detected),
		Implicit:   nonNil(sum.Role.Implicit),
		Attributes: sum.Attributes,
		Tags:       len(markup.Tags([]byte(input.Snippet), 0)),
	}
	if sum.Role.Role != nil {
		out.Role = sum.Role.Role.Name
		out.Category = string(sum.Role.Role.Category)
	}
	return nil, out, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
