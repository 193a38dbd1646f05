package schedule

import (
	"fmt"
	"strings"
	"time"
)

// Event is the slice of a calendar event this package cares about. The
// calendar layer converts API events into this shape; AllDay marks events
// whose source value carried only a date, no time of day.
type Event struct {
	Summary string
	Start   time.Time
	End     time.Time
	AllDay  bool
}

// BusySlot is a rendered busy interval, derived per call and never stored.
type BusySlot struct {
	Start  time.Time
	End    time.Time
	AllDay bool
	Label  string
}

// suggestedTimes is the fixed heuristic offered when a day is fully open.
// The candidates are not computed from gaps.
var suggestedTimes = []struct {
	Clock string
	Label string
}{
	{"10:00 AM", "mid-morning"},
	{"1:00 PM", "early afternoon"},
	{"3:00 PM", "mid-afternoon"},
}

// BusySlots derives busy slots from events in the order received. The
// ordering is load-bearing: the calendar returns events sorted by start time
// and the output must present them chronologically.
func BusySlots(events []Event) []BusySlot {
	slots := make([]BusySlot, 0, len(events))
	for _, ev := range events {
		label := ev.Summary
		if label == "" {
			label = "Busy"
		}
		slots = append(slots, BusySlot{
			Start:  ev.Start,
			End:    ev.End,
			AllDay: ev.AllDay,
			Label:  label,
		})
	}
	return slots
}

// String renders a busy slot as a single display line.
func (s BusySlot) String() string {
	if s.AllDay {
		return fmt.Sprintf("All day: %s", s.Label)
	}
	return fmt.Sprintf("%s - %s: %s", FormatClock(s.Start), FormatClock(s.End), s.Label)
}

// FormatAvailability renders the availability report for one day.
//
// With no events the day is reported as fully open along with the fixed
// suggested times. With events, each becomes one busy line in arrival order,
// followed by a hint to look for a gap of the requested duration. Free gaps
// are deliberately not computed.
func FormatAvailability(day time.Time, durationMinutes int, events []Event) string {
	if len(events) == 0 {
		var b strings.Builder
		fmt.Fprintf(&b, "✅ Fully available on %s (9:00 AM - 5:00 PM).\n\nSuggested times:\n", FormatDay(day))
		for i, s := range suggestedTimes {
			fmt.Fprintf(&b, "• %s (%s)", s.Clock, s.Label)
			if i < len(suggestedTimes)-1 {
				b.WriteString("\n")
			}
		}
		return b.String()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📅 Schedule for %s:\n\nBusy times:\n", FormatDay(day))
	for _, slot := range BusySlots(events) {
		fmt.Fprintf(&b, "• %s\n", slot)
	}
	fmt.Fprintf(&b, "\n💡 Look for an open gap of at least %d minutes for your meeting.", durationMinutes)
	return b.String()
}
