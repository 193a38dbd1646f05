package schedule

import (
	"fmt"
	"strings"
)

// FormatUpcoming renders the upcoming-meetings listing for events fetched in
// the [now, now+daysAhead) window.
//
// Only timed events are shown; all-day events are silently excluded. Events
// arrive sorted by start time, and consecutive events are grouped under a day
// header while preserving arrival order within each group.
func FormatUpcoming(daysAhead int, events []Event) string {
	if len(events) == 0 {
		return fmt.Sprintf("📭 No upcoming meetings in the next %d days.", daysAhead)
	}

	var order []string
	groups := make(map[string][]string)
	for _, ev := range events {
		if ev.AllDay {
			continue
		}
		key := FormatDayHeader(ev.Start)
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		label := ev.Summary
		if label == "" {
			label = "No title"
		}
		groups[key] = append(groups[key], fmt.Sprintf("  • %s: %s", FormatClock(ev.Start), label))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📅 Upcoming meetings (next %d days):\n", daysAhead)
	for _, key := range order {
		fmt.Fprintf(&b, "\n%s:\n", key)
		for _, line := range groups[key] {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
