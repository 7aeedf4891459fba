package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/lintclimate/lintclimate/internal/adapters/outbound/analyzer"
	"github.com/lintclimate/lintclimate/internal/adapters/outbound/config"
	"github.com/lintclimate/lintclimate/internal/adapters/outbound/filesystem"
	"github.com/lintclimate/lintclimate/internal/adapters/outbound/resolver"
	"github.com/lintclimate/lintclimate/internal/adapters/outbound/scanner"
	"github.com/lintclimate/lintclimate/internal/adapters/outbound/tui"
	"github.com/lintclimate/lintclimate/internal/application"
	"github.com/lintclimate/lintclimate/internal/domain"
)

// registerTools registers all lintclimate MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	s.AddTool(
		mcplib.NewTool("lintclimate_lint",
			mcplib.WithDescription("Lint files in order and return the run summary, including fingerprinted issues when code_climate is set"),
			mcplib.WithString("files",
				mcplib.Required(),
				mcplib.Description("Comma-separated file paths, directories or glob patterns relative to the project"),
			),
			mcplib.WithString("formatter", mcplib.Description("Line format: prose, json, msbuild or verbose")),
			mcplib.WithBoolean("code_climate", mcplib.Description("Translate findings into fingerprinted issues")),
		),
		handleLint(projectPath),
	)

	s.AddTool(
		mcplib.NewTool("lintclimate_fingerprint",
			mcplib.WithDescription("Compute the code-climate fingerprint of an issue"),
			mcplib.WithString("description", mcplib.Required(), mcplib.Description("Issue message")),
			mcplib.WithNumber("offset", mcplib.Required(), mcplib.Description("0-indexed start offset of the issue")),
			mcplib.WithString("path", mcplib.Required(), mcplib.Description("File path as reported by the linter")),
		),
		handleFingerprint(),
	)
}

// lintResponse is what lintclimate_lint returns.
type lintResponse struct {
	Summary *domain.RunSummary `json:"summary"`
	Log     []string           `json:"log,omitempty"`
}

func handleLint(projectPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		filesArg, err := request.RequireString("files")
		if err != nil {
			return errorResult("files parameter is required"), nil
		}

		opts, err := config.New().Load(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading options: %v", err)), nil
		}
		args := request.GetArguments()
		if formatter, ok := args["formatter"].(string); ok && formatter != "" {
			opts.Formatter = formatter
		}
		if cc, ok := args["code_climate"].(bool); ok {
			opts.CodeClimate = cc
		}
		opts = opts.WithDefaults()
		if opts.CodeClimateFile != "" && !filepath.IsAbs(opts.CodeClimateFile) {
			opts.CodeClimateFile = filepath.Join(projectPath, opts.CodeClimateFile)
		}
		if opts.OutputFile != "" && !filepath.IsAbs(opts.OutputFile) {
			opts.OutputFile = filepath.Join(projectPath, opts.OutputFile)
		}

		files, err := scanner.New().Expand(projectPath, splitCSV(filesArg))
		if err != nil {
			return errorResult(fmt.Sprintf("expanding files: %v", err)), nil
		}

		res := resolver.New()
		defer res.Close()

		var log bytes.Buffer
		svc := application.NewLintService(
			analyzer.New(opts.Linter),
			analyzer.NewProjectLoader(),
			res,
			filesystem.New(),
			tui.NewConsole(&log, &log),
		)

		summary, err := svc.Run(ctx, files, opts)
		if err != nil {
			return errorResult(fmt.Sprintf("lint run failed: %v", err)), nil
		}

		return jsonResult(lintResponse{Summary: summary, Log: splitLines(log.String())})
	}
}

func handleFingerprint() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		description, err := request.RequireString("description")
		if err != nil {
			return errorResult("description parameter is required"), nil
		}
		offset, err := request.RequireFloat("offset")
		if err != nil {
			return errorResult("offset parameter is required"), nil
		}
		path, err := request.RequireString("path")
		if err != nil {
			return errorResult("path parameter is required"), nil
		}
		return textResult(domain.Fingerprint(description, int(offset), path)), nil
	}
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func splitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// jsonResult marshals v as indented JSON into a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns an error content result.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
