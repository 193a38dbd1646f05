package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMeeting(t *testing.T) {
	meeting, err := NewMeeting(MeetingRequest{
		Title:           "IP Review",
		AttendeeEmail:   "engineer@example.com",
		Date:            "2025-06-10",
		Time:            "14:00",
		DurationMinutes: 60,
	})

	require.NoError(t, err)
	assert.Equal(t, "IP Review", meeting.Title)
	assert.Equal(t, "engineer@example.com", meeting.AttendeeEmail)
	assert.Equal(t, DefaultDescription, meeting.Description)
	assert.Equal(t, time.Date(2025, time.June, 10, 14, 0, 0, 0, Location()), meeting.Start)
	assert.Equal(t, meeting.Start.Add(60*time.Minute), meeting.End)
}

func TestNewMeetingKeepsDescription(t *testing.T) {
	meeting, err := NewMeeting(MeetingRequest{
		Title:           "IP Review",
		AttendeeEmail:   "engineer@example.com",
		Date:            "2025-06-10",
		Time:            "14:00",
		DurationMinutes: 30,
		Description:     "Discuss the new sensor housing",
	})

	require.NoError(t, err)
	assert.Equal(t, "Discuss the new sensor housing", meeting.Description)
	assert.Equal(t, 30*time.Minute, meeting.End.Sub(meeting.Start))
}

func TestNewMeetingInvalidDuration(t *testing.T) {
	tests := []struct {
		name    string
		minutes int
		want    string
	}{
		{
			name:    "zero",
			minutes: 0,
			want:    "Invalid duration. Must be a positive number of minutes. Got: 0",
		},
		{
			name:    "negative",
			minutes: -15,
			want:    "Invalid duration. Must be a positive number of minutes. Got: -15",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMeeting(MeetingRequest{
				Title:           "IP Review",
				AttendeeEmail:   "engineer@example.com",
				Date:            "2025-06-10",
				Time:            "14:00",
				DurationMinutes: tt.minutes,
			})

			require.Error(t, err)
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestNewMeetingInvalidStart(t *testing.T) {
	_, err := NewMeeting(MeetingRequest{
		Title:           "IP Review",
		AttendeeEmail:   "engineer@example.com",
		Date:            "2025-06-10",
		Time:            "2pm",
		DurationMinutes: 60,
	})

	require.Error(t, err)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestFormatScheduled(t *testing.T) {
	meeting, err := NewMeeting(MeetingRequest{
		Title:           "IP Review",
		AttendeeEmail:   "engineer@example.com",
		Date:            "2025-06-10",
		Time:            "14:00",
		DurationMinutes: 60,
	})
	require.NoError(t, err)

	got := FormatScheduled(meeting, "https://calendar.example.com/event/1", "https://meet.example.com/abc")

	want := "✅ Meeting scheduled successfully!\n" +
		"📅 IP Review\n" +
		"👤 Attendee: engineer@example.com\n" +
		"🕐 Tuesday, June 10, 2025 at 02:00 PM (60 minutes)\n" +
		"🔗 Calendar: https://calendar.example.com/event/1\n" +
		"📹 Google Meet: https://meet.example.com/abc"
	assert.Equal(t, want, got)
}

func TestFormatScheduledMissingLinks(t *testing.T) {
	meeting, err := NewMeeting(MeetingRequest{
		Title:           "IP Review",
		AttendeeEmail:   "engineer@example.com",
		Date:            "2025-06-10",
		Time:            "14:00",
		DurationMinutes: 60,
	})
	require.NoError(t, err)

	got := FormatScheduled(meeting, "", "")

	assert.Contains(t, got, "🔗 Calendar: "+NoCalendarLink)
	assert.Contains(t, got, "📹 Google Meet: "+NoVideoLink)
}
