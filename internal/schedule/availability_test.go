package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBusySlots(t *testing.T) {
	day := time.Date(2025, time.June, 10, 0, 0, 0, 0, Location())
	events := []Event{
		{Summary: "Standup", Start: day.Add(10 * time.Hour), End: day.Add(11 * time.Hour)},
		{Summary: "", Start: day.Add(13 * time.Hour), End: day.Add(14 * time.Hour)},
		{Summary: "Offsite", Start: day, End: day.AddDate(0, 0, 1), AllDay: true},
	}

	slots := BusySlots(events)

	assert.Len(t, slots, 3)
	assert.Equal(t, "10:00 AM - 11:00 AM: Standup", slots[0].String())
	assert.Equal(t, "01:00 PM - 02:00 PM: Busy", slots[1].String())
	assert.Equal(t, "All day: Offsite", slots[2].String())
}

func TestFormatAvailabilityFullyOpen(t *testing.T) {
	day := time.Date(2025, time.June, 10, 0, 0, 0, 0, Location())

	got := FormatAvailability(day, 60, nil)

	want := "✅ Fully available on Tuesday, June 10, 2025 (9:00 AM - 5:00 PM).\n" +
		"\n" +
		"Suggested times:\n" +
		"• 10:00 AM (mid-morning)\n" +
		"• 1:00 PM (early afternoon)\n" +
		"• 3:00 PM (mid-afternoon)"
	assert.Equal(t, want, got)
}

func TestFormatAvailabilityBusyDay(t *testing.T) {
	day := time.Date(2025, time.June, 10, 0, 0, 0, 0, Location())
	events := []Event{
		{Summary: "Standup", Start: day.Add(10 * time.Hour), End: day.Add(10*time.Hour + 30*time.Minute)},
		{Summary: "Design review", Start: day.Add(14 * time.Hour), End: day.Add(15 * time.Hour)},
	}

	got := FormatAvailability(day, 45, events)

	want := "📅 Schedule for Tuesday, June 10, 2025:\n" +
		"\n" +
		"Busy times:\n" +
		"• 10:00 AM - 10:30 AM: Standup\n" +
		"• 02:00 PM - 03:00 PM: Design review\n" +
		"\n" +
		"💡 Look for an open gap of at least 45 minutes for your meeting."
	assert.Equal(t, want, got)
}

func TestFormatAvailabilityAllDayEvent(t *testing.T) {
	day := time.Date(2025, time.June, 10, 0, 0, 0, 0, Location())
	events := []Event{
		{Summary: "Offsite", Start: day, End: day.AddDate(0, 0, 1), AllDay: true},
	}

	got := FormatAvailability(day, 60, events)

	assert.Contains(t, got, "• All day: Offsite")
}
