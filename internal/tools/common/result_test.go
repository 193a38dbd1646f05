package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hamzabenaggoh/Engineering-Patent-App/internal/schedule"
	"github.com/hamzabenaggoh/Engineering-Patent-App/internal/search"
)

func TestCalendarToolError(t *testing.T) {
	_, verr := schedule.ParseDate("not-a-date")
	assert.Error(t, verr)

	tests := []struct {
		name   string
		action string
		err    error
		want   string
	}{
		{
			name:   "validation error keeps its own message",
			action: "checking availability",
			err:    verr,
			want:   "❌ Invalid date format. Use YYYY-MM-DD. Got: not-a-date",
		},
		{
			name:   "generic error gets the action prefix",
			action: "creating meeting",
			err:    errors.New("googleapi: Error 403: rate limit"),
			want:   "❌ Error creating meeting: googleapi: Error 403: rate limit",
		},
		{
			name:   "listing action",
			action: "listing meetings",
			err:    errors.New("connection reset"),
			want:   "❌ Error listing meetings: connection reset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalendarToolError(tt.action, tt.err))
		})
	}
}

func TestSearchToolError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "timeout",
			err:  &search.UpstreamError{Timeout: true},
			want: "Error: Search request timed out. Please try again.",
		},
		{
			name: "upstream status",
			err:  &search.UpstreamError{StatusCode: 429},
			want: "Error: Perplexity API returned status 429",
		},
		{
			name: "transport fault",
			err:  &search.UpstreamError{Err: errors.New("connection refused")},
			want: "Error searching patents: search request failed: connection refused",
		},
		{
			name: "unclassified error",
			err:  errors.New("boom"),
			want: "Error searching patents: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SearchToolError(tt.err))
		})
	}
}
