package common

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"go.opentelemetry.io/otel/attribute"

	"github.com/hamzabenaggoh/Engineering-Patent-App/internal/instrumentation"
	"github.com/hamzabenaggoh/Engineering-Patent-App/internal/server"
)

// InstrumentedToolHandlerWithService wraps a tool handler with tracing,
// metrics and audit logging, tagged with the upstream service and operation
// the tool talks to.
//
// Each invocation records:
// - a tool span carrying the tool name and final status
// - MCP tool invocation metrics (mcp_tool_invocations_total, mcp_tool_duration_seconds)
// - Upstream API operation metrics (upstream_api_operations_total, upstream_api_operation_duration_seconds)
// - an audit log entry linked to the span via trace and span IDs
//
// Usage:
//
//	s.AddTool(myTool, common.InstrumentedToolHandlerWithService("my_tool", "calendar", "list", sc, handler))
func InstrumentedToolHandlerWithService(
	toolName string,
	serviceName string,
	operation string,
	sc *server.ServerContext,
	handler func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error),
) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		metrics := sc.Metrics()
		auditLogger := sc.Audit()

		ctx, span := instrumentation.StartToolSpan(ctx, toolName)
		defer span.End()

		start := time.Now()
		invocation := instrumentation.NewToolInvocation(toolName).
			WithSpanContext(ctx).
			WithService(serviceName, operation)

		// Scheduling tools carry the attendee in the arguments
		args := request.GetArguments()
		if attendee, ok := args["attendee_email"].(string); ok && attendee != "" {
			invocation.WithAttendee(attendee)
		}

		result, err := handler(ctx, request)
		duration := time.Since(start)

		status := instrumentation.StatusSuccess
		if err != nil || (result != nil && result.IsError) {
			status = instrumentation.StatusError
			if err != nil {
				instrumentation.SetSpanError(span, err)
				invocation.CompleteWithError(err)
			} else {
				invocation.Complete(false, nil)
			}
		} else {
			instrumentation.SetSpanSuccess(span)
			invocation.CompleteSuccess()
		}
		span.SetAttributes(attribute.String(instrumentation.SpanAttrStatus, status))

		metrics.RecordToolInvocation(ctx, toolName, status, duration)
		metrics.RecordUpstreamOperation(ctx, serviceName, operation, status, duration)
		auditLogger.LogToolInvocation(invocation)

		return result, err
	}
}
