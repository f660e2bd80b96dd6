package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/antoineschaller/cortex-skills/internal/adapters/outbound/gitinfo"
	"github.com/antoineschaller/cortex-skills/internal/adapters/outbound/rules"
	"github.com/antoineschaller/cortex-skills/internal/adapters/outbound/snapshot"
	"github.com/antoineschaller/cortex-skills/internal/application"
)

// registerTools registers the compliance tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	s.AddTool(
		mcplib.NewTool("standards_validate",
			mcplib.WithDescription("Validate the project against engineering standards and return the full compliance report as JSON"),
			mcplib.WithString("rules", mcplib.Description("Path to a rules YAML file (defaults to the built-in standards)")),
		),
		handleValidate(projectPath),
	)

	s.AddTool(
		mcplib.NewTool("standards_report",
			mcplib.WithDescription("Generate a rendered compliance report for the project"),
			mcplib.WithString("format", mcplib.Description("Output format: md, html, or json (default: md)")),
			mcplib.WithString("rules", mcplib.Description("Path to a rules YAML file (defaults to the built-in standards)")),
		),
		handleReport(projectPath),
	)
}

func newValidateService() *application.ValidateService {
	return application.NewValidateService(snapshot.New(), rules.New(), gitinfo.New())
}

func handleValidate(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		rulesPath, _ := request.GetArguments()["rules"].(string)

		rep, _, err := newValidateService().Validate(projectPath, rulesPath)
		if err != nil {
			return errorResult(fmt.Sprintf("validation failed: %v", err)), nil
		}
		return jsonResult(rep)
	}
}

func handleReport(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		args := request.GetArguments()
		rulesPath, _ := args["rules"].(string)
		format, _ := args["format"].(string)
		if format == "" {
			format = application.FormatMarkdown
		}

		svc := application.NewReportService(newValidateService())
		out, _, err := svc.Generate(projectPath, rulesPath, format)
		if err != nil {
			return errorResult(fmt.Sprintf("report failed: %v", err)), nil
		}
		return textResult(out), nil
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
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

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
