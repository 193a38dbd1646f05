// Package server provides the MCP server context, the worker pool for
// blocking calendar calls, and the HTTP transport for the IP assistant.
//
// # Key Components
//
// ServerContext manages the upstream clients with lazy initialization and
// caching. The Calendar client is built from refresh-token credentials in
// the environment on first use; the search client is constructed from the
// configuration captured at startup.
//
// WorkerPool bounds the number of concurrent calendar calls so a burst of
// tool invocations cannot open an unbounded number of upstream connections.
//
// HTTPServer serves the MCP protocol over streamable HTTP on /mcp and
// registers the health endpoints next to it. MetricsServer exposes
// Prometheus metrics on a dedicated port, isolated from application traffic.
//
// HealthChecker answers /health for load balancers plus /healthz and /readyz
// for Kubernetes probes.
package server
