package search

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigConfigured(t *testing.T) {
	assert.False(t, Config{}.Configured())
	assert.True(t, Config{APIKey: "pplx-test"}.Configured())
}

func TestClientSearch(t *testing.T) {
	var gotAuth string
	var gotBody chatRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/chat/completions", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "US 9,876,543 covers this."}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	client := NewClient(Config{APIKey: "pplx-test", BaseURL: srv.URL})

	result, err := client.Search(context.Background(), "widget hinge", FocusPatents)
	require.NoError(t, err)
	assert.Equal(t, "US 9,876,543 covers this.", result)

	assert.Equal(t, "Bearer pplx-test", gotAuth)
	assert.Equal(t, DefaultModel, gotBody.Model)
	assert.Equal(t, DefaultMaxTokens, gotBody.MaxTokens)
	require.Len(t, gotBody.Messages, 2)
	assert.Equal(t, "system", gotBody.Messages[0].Role)
	assert.Equal(t, systemPrompt, gotBody.Messages[0].Content)
	assert.Equal(t, "user", gotBody.Messages[1].Role)
	assert.Contains(t, gotBody.Messages[1].Content, "widget hinge")
}

func TestClientSearchNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(Config{APIKey: "pplx-test", BaseURL: srv.URL})

	_, err := client.Search(context.Background(), "anything", FocusPatents)
	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusTooManyRequests, upstream.StatusCode)
	assert.False(t, upstream.Timeout)
}

func TestClientSearchTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := NewClient(Config{
		APIKey:  "pplx-test",
		BaseURL: srv.URL,
		Timeout: 20 * time.Millisecond,
	})

	_, err := client.Search(context.Background(), "anything", FocusPatents)
	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.True(t, upstream.Timeout)
}

func TestClientSearchEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices": []}`))
	}))
	defer srv.Close()

	client := NewClient(Config{APIKey: "pplx-test", BaseURL: srv.URL})

	_, err := client.Search(context.Background(), "anything", FocusPatents)
	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Zero(t, upstream.StatusCode)
	assert.False(t, upstream.Timeout)
}

func TestUpstreamErrorMessages(t *testing.T) {
	assert.Equal(t, "search request timed out", (&UpstreamError{Timeout: true}).Error())
	assert.Equal(t, "search API returned status 502", (&UpstreamError{StatusCode: 502}).Error())
	assert.Contains(t, (&UpstreamError{Err: errors.New("boom")}).Error(), "boom")
}
