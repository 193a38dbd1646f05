// Package search_tools provides the MCP (Model Context Protocol) tool for
// patent and prior-art research via the Perplexity API.
package search_tools
