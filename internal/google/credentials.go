package google

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
	calendar "google.golang.org/api/calendar/v3"
)

// Environment variables holding the calendar OAuth credentials.
const (
	EnvClientID     = "GOOGLE_CLIENT_ID"
	EnvClientSecret = "GOOGLE_CLIENT_SECRET"
	EnvRefreshToken = "GOOGLE_REFRESH_TOKEN"
)

// Scopes requested for the calendar access token.
var Scopes = []string{
	calendar.CalendarEventsScope,
}

// AuthError reports a credential refresh failure. It is operator-correctable:
// the refresh token or client credentials need to be re-provisioned.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("failed to refresh Google credentials: %v", e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// Credentials holds the long-lived secrets used to mint calendar access
// tokens. They are read once at startup and passed explicitly to the
// components that need them.
type Credentials struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
}

// CredentialsFromEnv reads credentials from the environment. Missing values
// are not an error here; call Configured to check completeness.
func CredentialsFromEnv() Credentials {
	return Credentials{
		ClientID:     os.Getenv(EnvClientID),
		ClientSecret: os.Getenv(EnvClientSecret),
		RefreshToken: os.Getenv(EnvRefreshToken),
	}
}

// Configured reports whether all credential parts are present.
func (c Credentials) Configured() bool {
	return c.ClientID != "" && c.ClientSecret != "" && c.RefreshToken != ""
}

// config returns the OAuth2 configuration for the calendar scopes.
func (c Credentials) config() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		Endpoint:     googleoauth.Endpoint,
		Scopes:       Scopes,
	}
}

// TokenSource returns an OAuth2 token source backed by the refresh token.
// The initial refresh is performed eagerly so that invalid credentials are
// reported as an AuthError instead of failing on the first API call.
func (c Credentials) TokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	if !c.Configured() {
		return nil, &AuthError{Err: fmt.Errorf("Google Calendar credentials are not configured (set %s, %s and %s)",
			EnvClientID, EnvClientSecret, EnvRefreshToken)}
	}

	conf := c.config()
	ts := conf.TokenSource(ctx, &oauth2.Token{RefreshToken: c.RefreshToken})

	if _, err := ts.Token(); err != nil {
		return nil, &AuthError{Err: err}
	}

	// Wrap in a reusing source so the refreshed token is cached until expiry.
	return oauth2.ReuseTokenSource(nil, ts), nil
}

// HTTPClient returns an HTTP client that authenticates with the refreshed
// token. The client is pinned to HTTP/1.1 to avoid HTTP/2 protocol errors
// against the Google APIs.
func (c Credentials) HTTPClient(ctx context.Context) (*http.Client, error) {
	ts, err := c.TokenSource(ctx)
	if err != nil {
		return nil, err
	}

	client := oauth2.NewClient(ctx, ts)

	// Force HTTP/1.1 by disabling HTTP/2
	if transport, ok := client.Transport.(*oauth2.Transport); ok {
		transport.Base = &http.Transport{
			ForceAttemptHTTP2: false,
		}
	}

	return client, nil
}
