// Package logging provides structured logging utilities for the IP assistant.
//
// This package centralizes logging patterns to ensure consistent, structured
// logging throughout the codebase using the standard library's slog package.
//
// # Usage Patterns
//
// Create a logger with standard attributes:
//
//	logger := logging.WithTool(slog.Default(), "schedule_meeting")
//	logger.Info("meeting scheduled",
//	    logging.Status("success"))
//
// Sanitize sensitive data before logging:
//
//	logger.Info("invitation sent",
//	    logging.UserHash(attendeeEmail))
//
// # Security Considerations
//
// Attendee emails are hashed before logging to prevent PII leakage while
// still allowing correlation across log entries.
package logging
