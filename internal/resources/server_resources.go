package resources

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/hamzabenaggoh/Engineering-Patent-App/internal/server"
)

const serverInfoText = `🤖 IP Assistant MCP Server

This server helps Daimler engineers move inventions through the IP pipeline.

📋 Available Tools:

1. search_patents
   - Search for patents and prior art using Perplexity AI

2. schedule_meeting
   - Create Google Calendar events

3. find_available_times
   - Check calendar availability

4. list_upcoming_meetings
   - View upcoming meetings
`

// RegisterServerResources registers the server info and health resources.
func RegisterServerResources(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	infoResource := mcp.NewResource(
		"server://info",
		"Server Information",
		mcp.WithResourceDescription("Information about this MCP server and its capabilities"),
		mcp.WithMIMEType("text/plain"),
	)

	s.AddResource(infoResource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return handleServerInfo(ctx, request)
	})

	healthResource := mcp.NewResource(
		"server://health",
		"Server Health",
		mcp.WithResourceDescription("Health status of the server and its upstream dependencies"),
		mcp.WithMIMEType("text/plain"),
	)

	s.AddResource(healthResource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return handleServerHealth(ctx, request, sc)
	})

	return nil
}

// handleServerInfo returns the static tool catalog.
func handleServerInfo(_ context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		&mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "text/plain",
			Text:     serverInfoText,
		},
	}, nil
}

// handleServerHealth reports configuration status for both upstream services.
// Missing credentials show up here, not as a failed resource read.
func handleServerHealth(_ context.Context, request mcp.ReadResourceRequest, sc *server.ServerContext) ([]mcp.ResourceContents, error) {
	perplexityStatus := "❌ API key missing"
	if sc.SearchConfig().Configured() {
		perplexityStatus = "✅ Connected"
	}

	calendarStatus := "❌ Not authenticated"
	if sc.GoogleConfigured() {
		calendarStatus = "✅ Configured"
	}

	text := fmt.Sprintf(`🏥 Health Status

Perplexity API: %s
Google Calendar: %s

Server: Running
Transport: HTTP
`, perplexityStatus, calendarStatus)

	return []mcp.ResourceContents{
		&mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "text/plain",
			Text:     text,
		},
	}, nil
}
