// Package google provides OAuth2 credentials for the Google Calendar API.
//
// Credentials are sourced from the environment (client id, client secret and
// a long-lived refresh token provisioned by the operator) and exchanged for
// short-lived access tokens on demand. A missing or revoked refresh token
// surfaces as an AuthError; the absence of credentials is detectable without
// failing, so the server can start and report its configuration status.
package google
