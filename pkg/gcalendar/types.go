package gcalendar

import "time"

// CreateEventRequest is the input for creating a Google Calendar event.
// StartTime and EndTime must already be absolute instants; they are sent
// to the API as UTC RFC3339.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Recurrence  []string // provider recurrence rules, e.g. "RRULE:FREQ=WEEKLY"
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID        string
	Summary   string
	HtmlLink  string
	StartTime time.Time
	EndTime   time.Time
}
