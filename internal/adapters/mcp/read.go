package mcp

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"taxnav/internal/application/commands"
	"taxnav/internal/domain"
	"taxnav/internal/ports"
)

// RegisterReadTools adds the read-only taxonomy tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, store ports.TaxonStore, root string) {
	s.AddTool(searchTool(), searchHandler(store, root))
	s.AddTool(pathTool(), pathHandler(store, root))
	s.AddTool(infoTool(), infoHandler(store, root))
	s.AddTool(ranksTool(), ranksHandler())
}

// --- search ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("Search descendant nodes of a taxonomy node. Query arguments: -d<num> for a distance, -d<num1>..<num2> for a distance range, -l<rank> for a rank, any other word as a case-insensitive name pattern. Defaults to the direct children."),
		mcp.WithString("at",
			mcp.Description("Node path relative to the taxonomy root. Omit for the root itself."),
		),
		mcp.WithString("query",
			mcp.Description("Whitespace-separated query arguments (e.g. \"-d1..3 -lkingdom anim\")."),
		),
	)
}

func searchHandler(store ports.TaxonStore, root string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dir := resolve(root, req.GetString("at", ""))
		args := strings.Fields(req.GetString("query", ""))

		nodes, err := commands.NewSearchCommand(store, dir, args).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatNodes(nodes, root)
	}
}

// --- path ---

func pathTool() mcp.Tool {
	return mcp.NewTool("path",
		mcp.WithDescription("Show the chain from the taxonomy root through a node."),
		mcp.WithString("at",
			mcp.Description("Node path relative to the taxonomy root."),
		),
	)
}

func pathHandler(store ports.TaxonStore, root string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dir := resolve(root, req.GetString("at", ""))

		chain, err := commands.NewPathCommand(store, dir).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		parts := make([]string, 0, len(chain))
		for _, n := range chain {
			parts = append(parts, n.Label())
		}
		return mcp.NewToolResultText(strings.Join(parts, " -> ")), nil
	}
}

// --- info ---

func infoTool() mcp.Tool {
	return mcp.NewTool("info",
		mcp.WithDescription("Show the free-text description of a taxonomy node."),
		mcp.WithString("at",
			mcp.Description("Node path relative to the taxonomy root."),
		),
	)
}

func infoHandler(store ports.TaxonStore, root string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dir := resolve(root, req.GetString("at", ""))

		node, err := commands.NewInfoCommand(store, dir).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if node.Description == "" {
			return mcp.NewToolResultText(fmt.Sprintf("No info for %s.", node.Name)), nil
		}
		return mcp.NewToolResultText(node.Description), nil
	}
}

// --- ranks ---

func ranksTool() mcp.Tool {
	return mcp.NewTool("ranks",
		mcp.WithDescription("List the classification rank vocabulary with numeric order and short code."),
	)
}

func ranksHandler() server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var sb strings.Builder
		for _, r := range domain.Ranks() {
			fmt.Fprintf(&sb, "%2d  %-2s  %s\n", r.Order(), r.Code(), r)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func resolve(root, at string) string {
	if at == "" {
		return root
	}
	if filepath.IsAbs(at) {
		return at
	}
	return filepath.Join(root, at)
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatNodes(nodes []*domain.Node, root string) (*mcp.CallToolResult, error) {
	if len(nodes) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, n := range nodes {
		line := n.Label()
		if rel, err := filepath.Rel(root, n.Path); err == nil {
			line += "  (" + rel + ")"
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}
