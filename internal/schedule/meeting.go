package schedule

import (
	"fmt"
	"strings"
	"time"
)

// DefaultDescription is used when a meeting request carries no description.
const DefaultDescription = "IP Intake Meeting"

// Placeholder links for events where the calendar response omitted them.
const (
	NoCalendarLink = "No calendar link"
	NoVideoLink    = "No video link"
)

// MeetingRequest is the raw input of a schedule_meeting call. It is
// constructed per call and never persisted.
type MeetingRequest struct {
	Title           string
	AttendeeEmail   string
	Date            string // YYYY-MM-DD
	Time            string // HH:MM, 24-hour
	DurationMinutes int
	Description     string
}

// Meeting is a validated meeting ready to be submitted to the calendar.
type Meeting struct {
	Title           string
	Description     string
	AttendeeEmail   string
	Start           time.Time
	End             time.Time
	DurationMinutes int
}

// NewMeeting validates a request and resolves its start/end instants in the
// business timezone. Malformed date, time or duration yields a
// ValidationError without touching the calendar.
func NewMeeting(req MeetingRequest) (*Meeting, error) {
	start, err := ParseMeetingStart(req.Date, req.Time)
	if err != nil {
		return nil, err
	}

	if err := ValidateDuration(req.DurationMinutes); err != nil {
		return nil, err
	}

	description := req.Description
	if description == "" {
		description = DefaultDescription
	}

	return &Meeting{
		Title:           req.Title,
		Description:     description,
		AttendeeEmail:   req.AttendeeEmail,
		Start:           start,
		End:             start.Add(time.Duration(req.DurationMinutes) * time.Minute),
		DurationMinutes: req.DurationMinutes,
	}, nil
}

// FormatScheduled renders the confirmation message for a scheduled meeting.
// Missing links fall back to fixed placeholder strings.
func FormatScheduled(m *Meeting, calendarLink, meetLink string) string {
	if calendarLink == "" {
		calendarLink = NoCalendarLink
	}
	if meetLink == "" {
		meetLink = NoVideoLink
	}

	var b strings.Builder
	b.WriteString("✅ Meeting scheduled successfully!\n")
	fmt.Fprintf(&b, "📅 %s\n", m.Title)
	fmt.Fprintf(&b, "👤 Attendee: %s\n", m.AttendeeEmail)
	fmt.Fprintf(&b, "🕐 %s at %s (%d minutes)\n", FormatDay(m.Start), FormatClock(m.Start), m.DurationMinutes)
	fmt.Fprintf(&b, "🔗 Calendar: %s\n", calendarLink)
	fmt.Fprintf(&b, "📹 Google Meet: %s", meetLink)
	return b.String()
}
