// Package resources registers the MCP resources exposed by the IP assistant:
// server://info with the tool catalog and server://health with the
// configuration status of both upstream services.
package resources
