package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatUpcomingEmpty(t *testing.T) {
	got := FormatUpcoming(7, nil)

	assert.Equal(t, "📭 No upcoming meetings in the next 7 days.", got)
}

func TestFormatUpcomingGroupsByDay(t *testing.T) {
	tuesday := time.Date(2025, time.June, 10, 0, 0, 0, 0, Location())
	wednesday := tuesday.AddDate(0, 0, 1)
	events := []Event{
		{Summary: "Standup", Start: tuesday.Add(10 * time.Hour), End: tuesday.Add(11 * time.Hour)},
		{Summary: "IP Review", Start: tuesday.Add(14 * time.Hour), End: tuesday.Add(15 * time.Hour)},
		{Summary: "Patent filing sync", Start: wednesday.Add(9 * time.Hour), End: wednesday.Add(10 * time.Hour)},
	}

	got := FormatUpcoming(7, events)

	want := "📅 Upcoming meetings (next 7 days):\n" +
		"\n" +
		"Tuesday, June 10:\n" +
		"  • 10:00 AM: Standup\n" +
		"  • 02:00 PM: IP Review\n" +
		"\n" +
		"Wednesday, June 11:\n" +
		"  • 09:00 AM: Patent filing sync"
	assert.Equal(t, want, got)
}

func TestFormatUpcomingSkipsAllDayEvents(t *testing.T) {
	tuesday := time.Date(2025, time.June, 10, 0, 0, 0, 0, Location())
	events := []Event{
		{Summary: "Offsite", Start: tuesday, End: tuesday.AddDate(0, 0, 1), AllDay: true},
		{Summary: "Standup", Start: tuesday.Add(10 * time.Hour), End: tuesday.Add(11 * time.Hour)},
	}

	got := FormatUpcoming(3, events)

	assert.NotContains(t, got, "Offsite")
	assert.Contains(t, got, "  • 10:00 AM: Standup")
}

func TestFormatUpcomingUntitledEvent(t *testing.T) {
	tuesday := time.Date(2025, time.June, 10, 0, 0, 0, 0, Location())
	events := []Event{
		{Summary: "", Start: tuesday.Add(10 * time.Hour), End: tuesday.Add(11 * time.Hour)},
	}

	got := FormatUpcoming(7, events)

	assert.Contains(t, got, "  • 10:00 AM: No title")
}
