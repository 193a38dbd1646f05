package common

import (
	"errors"
	"fmt"

	"github.com/hamzabenaggoh/Engineering-Patent-App/internal/schedule"
	"github.com/hamzabenaggoh/Engineering-Patent-App/internal/search"
)

// CalendarToolError renders an error from a calendar tool as the reply text.
// Validation failures carry a user-facing message already; everything else
// (auth failures, upstream API errors) gets the action-specific prefix.
//
// action reads like a gerund phrase: "creating meeting", "checking
// availability", "listing meetings".
func CalendarToolError(action string, err error) string {
	var validationErr *schedule.ValidationError
	if errors.As(err, &validationErr) {
		return "❌ " + validationErr.Error()
	}
	return fmt.Sprintf("❌ Error %s: %v", action, err)
}

// SearchToolError renders an error from the search tool as the reply text.
// Timeouts and upstream status codes get dedicated messages so the caller
// knows whether retrying is worthwhile.
func SearchToolError(err error) string {
	var upstreamErr *search.UpstreamError
	if errors.As(err, &upstreamErr) {
		switch {
		case upstreamErr.Timeout:
			return "Error: Search request timed out. Please try again."
		case upstreamErr.StatusCode != 0:
			return fmt.Sprintf("Error: Perplexity API returned status %d", upstreamErr.StatusCode)
		}
	}
	return fmt.Sprintf("Error searching patents: %v", err)
}
