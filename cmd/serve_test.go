package cmd

import (
	"context"
	"testing"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/require"

	"github.com/hamzabenaggoh/Engineering-Patent-App/internal/server"
)

func TestRegisterAllTools(t *testing.T) {
	mcpSrv := mcpserver.NewMCPServer("ip-assistant", "test",
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithResourceCapabilities(false, false),
	)

	sc := server.NewServerContext(context.Background(), nil, nil)
	defer func() { _ = sc.Shutdown() }()

	require.NoError(t, registerAllTools(mcpSrv, sc))
}

func TestNewServeCmdDefaults(t *testing.T) {
	cmd := newServeCmd()

	transport, err := cmd.Flags().GetString("transport")
	require.NoError(t, err)
	require.Equal(t, "stdio", transport)

	httpAddr, err := cmd.Flags().GetString("http-addr")
	require.NoError(t, err)
	require.Equal(t, DefaultHTTPAddr, httpAddr)

	metricsEnabled, err := cmd.Flags().GetBool("metrics-enabled")
	require.NoError(t, err)
	require.True(t, metricsEnabled)
}
