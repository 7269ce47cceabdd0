package model

import "time"

// Event is a single calendar entry extracted from an ICS document.
// Events are read-only once parsed; their lifetime is bounded to one
// convert pass.
type Event struct {
	UID     string // iCalendar UID, empty when the source omits it
	Summary string // event name as written in SUMMARY

	// Start is the begin instant. The parser guarantees it carries an
	// explicit location (UTC designator, resolved TZID, or UTC midnight
	// for date-only values), so comparing it against another instant is
	// always well defined.
	Start time.Time

	AllDay  bool   // true when DTSTART is a DATE value
	StartTZ string // TZID parameter on DTSTART, if any
}
