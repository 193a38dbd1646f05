package search_tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/hamzabenaggoh/Engineering-Patent-App/internal/instrumentation"
	"github.com/hamzabenaggoh/Engineering-Patent-App/internal/search"
	"github.com/hamzabenaggoh/Engineering-Patent-App/internal/server"
	"github.com/hamzabenaggoh/Engineering-Patent-App/internal/tools/common"
)

// RegisterSearchTools registers the patent search tool with the MCP server.
func RegisterSearchTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	searchPatentsTool := mcp.NewTool("search_patents",
		mcp.WithDescription("Search for patents and prior art using Perplexity AI"),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("What to search for, e.g. an invention summary or technical concept"),
		),
		mcp.WithString("focus",
			mcp.Description("Search focus: 'patents' for patent-specific results (default), anything else for general technical information"),
		),
	)

	s.AddTool(searchPatentsTool, common.InstrumentedToolHandlerWithService(
		"search_patents", instrumentation.ServiceSearch, "chat_completion", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleSearchPatents(ctx, request, sc)
		}))

	return nil
}

func handleSearchPatents(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	query, ok := args["query"].(string)
	if !ok || query == "" {
		return mcp.NewToolResultError("query is required"), nil
	}

	focus, ok := args["focus"].(string)
	if !ok || focus == "" {
		focus = search.FocusPatents
	}

	if !sc.SearchConfig().Configured() {
		return mcp.NewToolResultError("Error: Perplexity API key not configured. Set PERPLEXITY_API_KEY."), nil
	}

	upstreamCtx, span := instrumentation.StartUpstreamSpan(ctx, instrumentation.ServiceSearch, "chat_completion")
	result, err := sc.SearchClient().Search(upstreamCtx, query, focus)
	if err != nil {
		instrumentation.SetSpanError(span, err)
		span.End()
		return mcp.NewToolResultError(common.SearchToolError(err)), nil
	}
	instrumentation.SetSpanSuccess(span)
	span.End()

	return mcp.NewToolResultText(result), nil
}
