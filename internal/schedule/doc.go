// Package schedule contains the scheduling logic for the IP assistant:
// date/time validation, meeting construction, business-hours availability
// and the display formatting for tool output.
//
// Everything in this package is pure: it never talks to the Calendar API.
// Inputs arrive as primitive strings from tool calls, are validated against
// the fixed YYYY-MM-DD / HH:MM formats, and are interpreted in the single
// business timezone. The package produces either a typed ValidationError
// (whose message echoes the offending input) or a value ready to hand to
// the calendar client.
package schedule
