package main

import (
	"context"
	"flag"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"taxnav/internal/adapters/filesystem"
	mcpadapter "taxnav/internal/adapters/mcp"
	"taxnav/internal/config"
)

func main() {
	rootFlag := flag.String("root", config.RootPath(), "path to the taxonomy root")
	flag.Parse()

	store := filesystem.NewStore()

	mcpServer := server.NewMCPServer(
		"taxnav-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, store, *rootFlag)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatal("taxnav-mcp", "err", err)
	}
}
