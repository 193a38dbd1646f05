package calendar_tools

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/hamzabenaggoh/Engineering-Patent-App/internal/calendar"
	"github.com/hamzabenaggoh/Engineering-Patent-App/internal/instrumentation"
	"github.com/hamzabenaggoh/Engineering-Patent-App/internal/schedule"
	"github.com/hamzabenaggoh/Engineering-Patent-App/internal/server"
	"github.com/hamzabenaggoh/Engineering-Patent-App/internal/tools/common"
)

// upcomingMeetingsMaxResults caps how many events a listing fetches.
const upcomingMeetingsMaxResults = 20

// intArg reads an integer argument that JSON decoding delivers as float64.
// Returns fallback when the argument is absent.
func intArg(args map[string]interface{}, name string, fallback int) int {
	if v, ok := args[name].(float64); ok {
		return int(v)
	}
	return fallback
}

// RegisterCalendarTools registers the scheduling tools with the MCP server.
func RegisterCalendarTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	scheduleMeetingTool := mcp.NewTool("schedule_meeting",
		mcp.WithDescription("Schedule a meeting on Google Calendar with a Google Meet link and an invitation for the attendee"),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Meeting title"),
		),
		mcp.WithString("attendee_email",
			mcp.Required(),
			mcp.Description("Email address of the attendee to invite"),
		),
		mcp.WithString("date",
			mcp.Required(),
			mcp.Description("Meeting date (YYYY-MM-DD)"),
		),
		mcp.WithString("time",
			mcp.Required(),
			mcp.Description("Meeting start time (HH:MM, 24-hour)"),
		),
		mcp.WithNumber("duration_minutes",
			mcp.Description("Meeting duration in minutes (default: 60)"),
		),
		mcp.WithString("description",
			mcp.Description("Meeting description (default: 'IP Intake Meeting')"),
		),
	)

	s.AddTool(scheduleMeetingTool, common.InstrumentedToolHandlerWithService(
		"schedule_meeting", instrumentation.ServiceCalendar, "insert", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleScheduleMeeting(ctx, request, sc)
		}))

	findAvailableTimesTool := mcp.NewTool("find_available_times",
		mcp.WithDescription("Check calendar availability within business hours (9 AM - 5 PM) on a specific date"),
		mcp.WithString("date",
			mcp.Required(),
			mcp.Description("Date to check (YYYY-MM-DD)"),
		),
		mcp.WithNumber("duration_minutes",
			mcp.Description("Desired meeting duration in minutes (default: 60)"),
		),
	)

	s.AddTool(findAvailableTimesTool, common.InstrumentedToolHandlerWithService(
		"find_available_times", instrumentation.ServiceCalendar, "list", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleFindAvailableTimes(ctx, request, sc)
		}))

	listUpcomingMeetingsTool := mcp.NewTool("list_upcoming_meetings",
		mcp.WithDescription("List upcoming meetings in the next N days, grouped by day"),
		mcp.WithNumber("days_ahead",
			mcp.Description("How many days ahead to look (default: 7)"),
		),
	)

	s.AddTool(listUpcomingMeetingsTool, common.InstrumentedToolHandlerWithService(
		"list_upcoming_meetings", instrumentation.ServiceCalendar, "list", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListUpcomingMeetings(ctx, request, sc)
		}))

	return nil
}

func handleScheduleMeeting(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	title, ok := args["title"].(string)
	if !ok || title == "" {
		return mcp.NewToolResultError("title is required"), nil
	}

	attendeeEmail, ok := args["attendee_email"].(string)
	if !ok || attendeeEmail == "" {
		return mcp.NewToolResultError("attendee_email is required"), nil
	}

	date, ok := args["date"].(string)
	if !ok || date == "" {
		return mcp.NewToolResultError("date is required"), nil
	}

	startTime, ok := args["time"].(string)
	if !ok || startTime == "" {
		return mcp.NewToolResultError("time is required"), nil
	}

	description, _ := args["description"].(string)

	meeting, err := schedule.NewMeeting(schedule.MeetingRequest{
		Title:           title,
		AttendeeEmail:   attendeeEmail,
		Date:            date,
		Time:            startTime,
		DurationMinutes: intArg(args, "duration_minutes", schedule.DefaultDurationMinutes),
		Description:     description,
	})
	if err != nil {
		return mcp.NewToolResultError(common.CalendarToolError("creating meeting", err)), nil
	}

	client, err := sc.CalendarClient()
	if err != nil {
		return mcp.NewToolResultError(common.CalendarToolError("creating meeting", err)), nil
	}

	upstreamCtx, span := instrumentation.StartUpstreamSpan(ctx, instrumentation.ServiceCalendar, "insert")
	var created *calendar.CreatedEvent
	err = sc.Workers().Do(upstreamCtx, func() error {
		var insertErr error
		created, insertErr = client.ScheduleMeeting(calendar.PrimaryCalendarID, meeting)
		return insertErr
	})
	if err != nil {
		instrumentation.SetSpanError(span, err)
		span.End()
		return mcp.NewToolResultError(common.CalendarToolError("creating meeting", err)), nil
	}
	instrumentation.SetSpanSuccess(span)
	span.End()

	return mcp.NewToolResultText(schedule.FormatScheduled(meeting, created.HTMLLink, created.MeetLink)), nil
}

func handleFindAvailableTimes(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	date, ok := args["date"].(string)
	if !ok || date == "" {
		return mcp.NewToolResultError("date is required"), nil
	}
	durationMinutes := intArg(args, "duration_minutes", schedule.DefaultDurationMinutes)
	if err := schedule.ValidateDuration(durationMinutes); err != nil {
		return mcp.NewToolResultError(common.CalendarToolError("checking availability", err)), nil
	}

	day, err := schedule.ParseDate(date)
	if err != nil {
		return mcp.NewToolResultError(common.CalendarToolError("checking availability", err)), nil
	}

	client, err := sc.CalendarClient()
	if err != nil {
		return mcp.NewToolResultError(common.CalendarToolError("checking availability", err)), nil
	}

	windowStart, windowEnd := schedule.BusinessWindow(day)

	upstreamCtx, span := instrumentation.StartUpstreamSpan(ctx, instrumentation.ServiceCalendar, "list")
	var summaries []calendar.EventSummary
	err = sc.Workers().Do(upstreamCtx, func() error {
		var listErr error
		summaries, listErr = client.ListEvents(calendar.PrimaryCalendarID, windowStart, windowEnd, 0)
		return listErr
	})
	if err != nil {
		instrumentation.SetSpanError(span, err)
		span.End()
		return mcp.NewToolResultError(common.CalendarToolError("checking availability", err)), nil
	}
	instrumentation.SetSpanSuccess(span)
	span.End()

	return mcp.NewToolResultText(schedule.FormatAvailability(day, durationMinutes, scheduleEvents(summaries))), nil
}

func handleListUpcomingMeetings(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	daysAhead := intArg(args, "days_ahead", 7)
	if daysAhead <= 0 {
		return mcp.NewToolResultError("days_ahead must be a positive number of days"), nil
	}

	client, err := sc.CalendarClient()
	if err != nil {
		return mcp.NewToolResultError(common.CalendarToolError("listing meetings", err)), nil
	}

	now := time.Now().In(schedule.Location())
	until := now.AddDate(0, 0, daysAhead)

	upstreamCtx, span := instrumentation.StartUpstreamSpan(ctx, instrumentation.ServiceCalendar, "list")
	var summaries []calendar.EventSummary
	err = sc.Workers().Do(upstreamCtx, func() error {
		var listErr error
		summaries, listErr = client.ListEvents(calendar.PrimaryCalendarID, now, until, upcomingMeetingsMaxResults)
		return listErr
	})
	if err != nil {
		instrumentation.SetSpanError(span, err)
		span.End()
		return mcp.NewToolResultError(common.CalendarToolError("listing meetings", err)), nil
	}
	instrumentation.SetSpanSuccess(span)
	span.End()

	return mcp.NewToolResultText(schedule.FormatUpcoming(daysAhead, scheduleEvents(summaries))), nil
}

// scheduleEvents converts API event summaries into schedule events,
// preserving the upstream ordering.
func scheduleEvents(summaries []calendar.EventSummary) []schedule.Event {
	events := make([]schedule.Event, 0, len(summaries))
	for _, s := range summaries {
		events = append(events, s.ScheduleEvent())
	}
	return events
}
