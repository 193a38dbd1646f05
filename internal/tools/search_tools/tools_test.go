package search_tools

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamzabenaggoh/Engineering-Patent-App/internal/search"
	"github.com/hamzabenaggoh/Engineering-Patent-App/internal/server"
)

func callRequest(args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.NotEmpty(t, result.Content)
	text, ok := mcp.AsTextContent(result.Content[0])
	require.True(t, ok)
	return text.Text
}

func TestHandleSearchPatentsMissingQuery(t *testing.T) {
	sc := server.NewServerContext(context.Background(), nil, nil)
	defer func() { _ = sc.Shutdown() }()

	result, err := handleSearchPatents(context.Background(), callRequest(map[string]interface{}{}), sc)

	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Equal(t, "query is required", resultText(t, result))
}

func TestHandleSearchPatentsNoAPIKey(t *testing.T) {
	sc := server.NewServerContext(context.Background(), nil, nil)
	defer func() { _ = sc.Shutdown() }()
	sc.SetSearchConfig(search.Config{})

	result, err := handleSearchPatents(context.Background(), callRequest(map[string]interface{}{
		"query": "self-sealing fuel tank",
	}), sc)

	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "PERPLEXITY_API_KEY")
}

func TestHandleSearchPatentsSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices": [{"message": {"role": "assistant", "content": "US 2,404,334 is the closest prior art."}}]}`))
	}))
	defer srv.Close()

	sc := server.NewServerContext(context.Background(), nil, nil)
	defer func() { _ = sc.Shutdown() }()
	sc.SetSearchConfig(search.Config{APIKey: "pplx-test", BaseURL: srv.URL})

	result, err := handleSearchPatents(context.Background(), callRequest(map[string]interface{}{
		"query": "self-sealing fuel tank",
	}), sc)

	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Equal(t, "US 2,404,334 is the closest prior art.", resultText(t, result))
}

func TestHandleSearchPatentsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	sc := server.NewServerContext(context.Background(), nil, nil)
	defer func() { _ = sc.Shutdown() }()
	sc.SetSearchConfig(search.Config{APIKey: "pplx-test", BaseURL: srv.URL})

	result, err := handleSearchPatents(context.Background(), callRequest(map[string]interface{}{
		"query": "anything",
	}), sc)

	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Equal(t, "Error: Perplexity API returned status 502", resultText(t, result))
}
