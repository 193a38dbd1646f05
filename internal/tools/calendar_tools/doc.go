// Package calendar_tools provides the MCP (Model Context Protocol) tools for
// Google Calendar scheduling: schedule_meeting, find_available_times, and
// list_upcoming_meetings.
//
// Validation and formatting live in the schedule package; handlers here only
// parse arguments, run the blocking Calendar calls through the server's
// worker pool, and render the results. Failures come back as error results
// with descriptive text, never as protocol errors.
package calendar_tools
