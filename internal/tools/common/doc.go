// Package common provides shared utilities for MCP tool implementations:
// instrumentation wrappers for handlers and the error-to-reply rendering
// shared by the calendar and search tools.
package common
