package search

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
)

// EnvAPIKey is the environment variable holding the Perplexity API key.
const EnvAPIKey = "PERPLEXITY_API_KEY"

// Fixed request policy: low temperature for determinism, bounded response
// length, single attempt with a hard timeout.
const (
	DefaultBaseURL     = "https://api.perplexity.ai"
	DefaultModel       = "sonar"
	DefaultTemperature = 0.2
	DefaultMaxTokens   = 1500
	DefaultTimeout     = 30 * time.Second

	completionsPath = "/chat/completions"
)

// UpstreamError reports a failed search call: a non-success status, a
// timeout, or a transport fault.
type UpstreamError struct {
	StatusCode int
	Timeout    bool
	Err        error
}

func (e *UpstreamError) Error() string {
	switch {
	case e.Timeout:
		return "search request timed out"
	case e.StatusCode != 0:
		return fmt.Sprintf("search API returned status %d", e.StatusCode)
	default:
		return fmt.Sprintf("search request failed: %v", e.Err)
	}
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Config holds the search client configuration, passed explicitly at
// construction time rather than read from globals.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

// ConfigFromEnv returns the default configuration with the API key read from
// the environment.
func ConfigFromEnv() Config {
	return Config{
		APIKey:      os.Getenv(EnvAPIKey),
		BaseURL:     DefaultBaseURL,
		Model:       DefaultModel,
		Temperature: DefaultTemperature,
		MaxTokens:   DefaultMaxTokens,
		Timeout:     DefaultTimeout,
	}
}

// Configured reports whether an API key is present.
func (c Config) Configured() bool {
	return c.APIKey != ""
}

// Client issues search requests against the chat-completions API.
type Client struct {
	config Config
	http   *resty.Client
}

// NewClient creates a search client. Zero-valued config fields fall back to
// the package defaults.
func NewClient(config Config) *Client {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Model == "" {
		config.Model = DefaultModel
	}
	if config.MaxTokens == 0 {
		config.MaxTokens = DefaultMaxTokens
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}

	httpClient := resty.New().
		SetBaseURL(config.BaseURL).
		SetTimeout(config.Timeout).
		SetHeader("Content-Type", "application/json")

	return &Client{
		config: config,
		http:   httpClient,
	}
}

// Search runs a single search and returns the first completion's content
// verbatim. All failures come back as *UpstreamError.
func (c *Client) Search(ctx context.Context, query, focus string) (string, error) {
	body := chatRequest{
		Model: c.config.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: BuildPrompt(query, focus)},
		},
		Temperature: c.config.Temperature,
		MaxTokens:   c.config.MaxTokens,
	}

	var result chatResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(c.config.APIKey).
		SetBody(body).
		SetResult(&result).
		Post(completionsPath)
	if err != nil {
		if isTimeout(err) {
			return "", &UpstreamError{Timeout: true, Err: err}
		}
		return "", &UpstreamError{Err: err}
	}

	if resp.StatusCode() != 200 {
		return "", &UpstreamError{StatusCode: resp.StatusCode()}
	}

	if len(result.Choices) == 0 {
		return "", &UpstreamError{Err: errors.New("response contained no choices")}
	}

	return result.Choices[0].Message.Content, nil
}

// isTimeout reports whether err is a deadline or network timeout.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
