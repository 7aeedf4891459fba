package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/lintclimate/lintclimate/internal/adapters/outbound/config"
	"github.com/lintclimate/lintclimate/internal/adapters/outbound/publish"
)

// registerResources registers all lintclimate MCP resources on the given server.
func registerResources(s *server.MCPServer, projectPath string) {
	s.AddResource(
		mcplib.NewResource(
			"lintclimate://options",
			"Run Options",
			mcplib.WithResourceDescription("Effective lint run options for the project"),
			mcplib.WithMIMEType("application/json"),
		),
		handleOptionsResource(projectPath),
	)

	s.AddResourceTemplate(
		mcplib.NewResourceTemplate(
			"lintclimate://reports/{namespace}",
			"Published Report",
			mcplib.WithTemplateDescription("Run summary published under an output_report namespace"),
			mcplib.WithTemplateMIMEType("application/json"),
		),
		handleReportResource(projectPath),
	)
}

func handleOptionsResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		opts, err := config.New().Load(projectPath)
		if err != nil {
			return nil, fmt.Errorf("loading options: %w", err)
		}
		return jsonResource(request.Params.URI, opts)
	}
}

func handleReportResource(projectPath string) server.ResourceTemplateHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		namespace := templateArg(request.Params.Arguments["namespace"])
		if namespace == "" {
			return nil, fmt.Errorf("namespace is required")
		}

		report, err := publish.New(projectPath).Load(namespace)
		if err != nil {
			return nil, fmt.Errorf("loading report: %w", err)
		}
		if report == nil {
			return nil, fmt.Errorf("no report published under %q", namespace)
		}
		return jsonResource(request.Params.URI, report)
	}
}

// templateArg unwraps a URI template variable, which arrives either as a
// string or as a single-element list.
func templateArg(v any) string {
	switch a := v.(type) {
	case string:
		return a
	case []string:
		if len(a) > 0 {
			return a[0]
		}
	}
	return ""
}

func jsonResource(uri string, v any) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling resource: %w", err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
