package schedule

import (
	"fmt"
	"sync"
	"time"
)

// Input layouts accepted from tool calls.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Display layouts used in tool output.
const (
	ClockLayout     = "03:04 PM"
	DayLayout       = "Monday, January 02, 2006"
	DayHeaderLayout = "Monday, January 02"
)

// BusinessTimeZone is the fixed timezone in which all wall-clock input is
// interpreted. Callers cannot supply their own timezone; multi-timezone
// attendees are not modeled.
const BusinessTimeZone = "America/New_York"

// Business hours bound the availability window for a single day.
const (
	BusinessDayStartHour = 9
	BusinessDayEndHour   = 17
)

// DefaultDurationMinutes is used when a tool call omits the meeting duration.
const DefaultDurationMinutes = 60

var (
	locationOnce sync.Once
	location     *time.Location
)

// Location returns the business timezone. The zone database lookup happens
// once; if the zone is unavailable the logic falls back to UTC rather than
// failing every call.
func Location() *time.Location {
	locationOnce.Do(func() {
		loc, err := time.LoadLocation(BusinessTimeZone)
		if err != nil {
			loc = time.UTC
		}
		location = loc
	})
	return location
}

// ValidationError reports malformed caller input. The message is shown to the
// calling agent verbatim and always echoes the literal value that was
// received, so the agent can correct it.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// ParseDate parses a YYYY-MM-DD date in the business timezone. The result
// anchors a day, not an instant: it is midnight at the start of that day.
func ParseDate(date string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, date, Location())
	if err != nil {
		return time.Time{}, validationErrorf("Invalid date format. Use YYYY-MM-DD. Got: %s", date)
	}
	return t, nil
}

// ParseMeetingStart parses a YYYY-MM-DD date and a 24-hour HH:MM time into a
// single instant in the business timezone.
func ParseMeetingStart(date, clock string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout+" "+TimeLayout, date+" "+clock, Location())
	if err != nil {
		return time.Time{}, validationErrorf(
			"Invalid date/time format. Use YYYY-MM-DD for date and HH:MM for time. Got: %s %s", date, clock)
	}
	return t, nil
}

// ValidateDuration checks that a meeting duration is a positive number of
// minutes. Shared by meeting creation and availability queries.
func ValidateDuration(minutes int) error {
	if minutes <= 0 {
		return validationErrorf("Invalid duration. Must be a positive number of minutes. Got: %d", minutes)
	}
	return nil
}

// BusinessWindow returns the [09:00, 17:00) availability window for the day
// containing t, in t's location.
func BusinessWindow(t time.Time) (start, end time.Time) {
	year, month, day := t.Date()
	start = time.Date(year, month, day, BusinessDayStartHour, 0, 0, 0, t.Location())
	end = time.Date(year, month, day, BusinessDayEndHour, 0, 0, 0, t.Location())
	return start, end
}

// FormatClock formats an instant as a 12-hour wall-clock time, e.g. "02:30 PM".
func FormatClock(t time.Time) string {
	return t.In(Location()).Format(ClockLayout)
}

// FormatDay formats an instant as a full day, e.g. "Tuesday, June 10, 2025".
func FormatDay(t time.Time) string {
	return t.In(Location()).Format(DayLayout)
}

// FormatDayHeader formats an instant as a day group header, e.g. "Tuesday, June 10".
func FormatDayHeader(t time.Time) string {
	return t.In(Location()).Format(DayHeaderLayout)
}
