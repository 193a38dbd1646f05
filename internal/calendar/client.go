package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/hamzabenaggoh/Engineering-Patent-App/internal/google"
	"github.com/hamzabenaggoh/Engineering-Patent-App/internal/schedule"
)

// PrimaryCalendarID addresses the authenticated user's primary calendar.
const PrimaryCalendarID = "primary"

// conferenceRequestPrefix namespaces the per-call conference request ids.
const conferenceRequestPrefix = "ip-assistant"

// Fixed reminder policy for scheduled meetings: an email a day before and a
// popup half an hour before. Not configurable per call.
const (
	reminderEmailMinutes = 24 * 60
	reminderPopupMinutes = 30
)

// Client wraps the Google Calendar service
type Client struct {
	svc *calendar.Service
}

// NewClient creates a Calendar client authenticated with the given
// credentials. Credential refresh happens eagerly, so a misconfigured or
// revoked refresh token is reported here as a google.AuthError.
func NewClient(ctx context.Context, creds google.Credentials) (*Client, error) {
	httpClient, err := creds.HTTPClient(ctx)
	if err != nil {
		return nil, err
	}

	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create Calendar service: %w", err)
	}

	return &Client{svc: svc}, nil
}

// ListEvents lists events overlapping [timeMin, timeMax), recurring events
// expanded to single instances and ordered by start time ascending. The
// ordering is load-bearing: callers render busy slots in the order received.
func (c *Client) ListEvents(calendarID string, timeMin, timeMax time.Time, maxResults int64) ([]EventSummary, error) {
	call := c.svc.Events.List(calendarID).
		TimeMin(timeMin.Format(time.RFC3339)).
		TimeMax(timeMax.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime")

	if maxResults > 0 {
		call = call.MaxResults(maxResults)
	}

	events, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	var summaries []EventSummary
	for _, event := range events.Items {
		summaries = append(summaries, toEventSummary(event))
	}

	return summaries, nil
}

// ScheduleMeeting inserts a validated meeting into the calendar. The event
// carries the single attendee, the fixed reminder overrides and a request
// for an auto-generated Google Meet link; update notifications are sent to
// all attendees.
func (c *Client) ScheduleMeeting(calendarID string, m *schedule.Meeting) (*CreatedEvent, error) {
	event := &calendar.Event{
		Summary:     m.Title,
		Description: m.Description,
		Start: &calendar.EventDateTime{
			DateTime: m.Start.Format(time.RFC3339),
			TimeZone: schedule.BusinessTimeZone,
		},
		End: &calendar.EventDateTime{
			DateTime: m.End.Format(time.RFC3339),
			TimeZone: schedule.BusinessTimeZone,
		},
		Attendees: []*calendar.EventAttendee{
			{Email: m.AttendeeEmail},
		},
		Reminders: &calendar.EventReminders{
			UseDefault:      false,
			ForceSendFields: []string{"UseDefault"},
			Overrides: []*calendar.EventReminder{
				{Method: "email", Minutes: reminderEmailMinutes},
				{Method: "popup", Minutes: reminderPopupMinutes},
			},
		},
		ConferenceData: &calendar.ConferenceData{
			CreateRequest: &calendar.CreateConferenceRequest{
				// Unique per call so a retried insert reuses the same
				// conference instead of creating a second one.
				RequestId: fmt.Sprintf("%s-%s", conferenceRequestPrefix, uuid.NewString()),
				ConferenceSolutionKey: &calendar.ConferenceSolutionKey{
					Type: "hangoutsMeet",
				},
			},
		},
	}

	created, err := c.svc.Events.Insert(calendarID, event).
		ConferenceDataVersion(1).
		SendUpdates("all").
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	result := toCreatedEvent(created)
	return &result, nil
}
