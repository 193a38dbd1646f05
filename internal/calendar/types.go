package calendar

import (
	"time"

	calendar "google.golang.org/api/calendar/v3"

	"github.com/hamzabenaggoh/Engineering-Patent-App/internal/schedule"
)

// EventSummary is a simplified calendar event for availability and listing.
// AllDay is true when the source event carried only a date, no time of day.
type EventSummary struct {
	ID       string
	Summary  string
	Start    time.Time
	End      time.Time
	AllDay   bool
	HTMLLink string
	MeetLink string
}

// ScheduleEvent converts the summary into the shape the schedule package
// formats.
func (e EventSummary) ScheduleEvent() schedule.Event {
	return schedule.Event{
		Summary: e.Summary,
		Start:   e.Start,
		End:     e.End,
		AllDay:  e.AllDay,
	}
}

// CreatedEvent is the slice of an insert response the confirmation message
// needs. Links may be empty when the API omitted them.
type CreatedEvent struct {
	ID       string
	Summary  string
	HTMLLink string
	MeetLink string
}

// toEventSummary converts a Google Calendar event to an EventSummary
func toEventSummary(event *calendar.Event) EventSummary {
	summary := EventSummary{
		ID:       event.Id,
		Summary:  event.Summary,
		HTMLLink: event.HtmlLink,
		MeetLink: meetLink(event),
	}

	// A DateTime start means a timed event; a Date start means all-day.
	if event.Start != nil {
		if event.Start.DateTime != "" {
			if t, err := time.Parse(time.RFC3339, event.Start.DateTime); err == nil {
				summary.Start = t
			}
		} else if event.Start.Date != "" {
			if t, err := time.ParseInLocation("2006-01-02", event.Start.Date, schedule.Location()); err == nil {
				summary.Start = t
				summary.AllDay = true
			}
		}
	}

	if event.End != nil {
		if event.End.DateTime != "" {
			if t, err := time.Parse(time.RFC3339, event.End.DateTime); err == nil {
				summary.End = t
			}
		} else if event.End.Date != "" {
			if t, err := time.ParseInLocation("2006-01-02", event.End.Date, schedule.Location()); err == nil {
				summary.End = t
			}
		}
	}

	return summary
}

// toCreatedEvent converts an insert response to a CreatedEvent
func toCreatedEvent(event *calendar.Event) CreatedEvent {
	return CreatedEvent{
		ID:       event.Id,
		Summary:  event.Summary,
		HTMLLink: event.HtmlLink,
		MeetLink: meetLink(event),
	}
}

// meetLink extracts the Google Meet link from an event, preferring the
// hangoutLink field and falling back to the conference entry points.
func meetLink(event *calendar.Event) string {
	if event.HangoutLink != "" {
		return event.HangoutLink
	}
	if event.ConferenceData != nil {
		for _, ep := range event.ConferenceData.EntryPoints {
			if ep.EntryPointType == "video" {
				return ep.Uri
			}
		}
	}
	return ""
}
