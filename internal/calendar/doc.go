// Package calendar provides a client for interacting with the Google Calendar API.
//
// The client covers the two operations the IP assistant needs: listing the
// events overlapping a time window (recurring events expanded, sorted by
// start time) and inserting a meeting built by the schedule package, with
// attendee notifications, reminder overrides and an auto-generated Google
// Meet link.
//
// Authentication uses the environment-sourced refresh-token credentials from
// the google package; every API failure is wrapped so the tool layer can
// classify it.
package calendar
