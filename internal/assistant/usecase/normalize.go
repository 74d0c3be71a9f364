package usecase

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"personal-task-assistant/internal/model"
)

// Wall-clock layouts accepted from the classifier.
const (
	layoutDateTime    = "2006-01-02T15:04:05"
	layoutDateTimeMin = "2006-01-02T15:04"
	layoutDate        = "2006-01-02"
)

// newTaskFromPayload builds a canonical Task from a classified payload.
// Priority falls back to medium when the classifier left it empty.
func newTaskFromPayload(p model.TaskPayload, now time.Time) model.Task {
	priority := p.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}

	return model.Task{
		ID:          uuid.NewString(),
		Description: p.Description,
		Completed:   false,
		Priority:    priority,
		DueDate:     p.DueDate,
		Recurrence:  p.Recurrence,
		CreatedAt:   now,
	}
}

// newEventFromPayload builds a canonical CalendarEvent. End defaults to
// Start when omitted; classifier-derived events are always confirmed.
func newEventFromPayload(p model.EventPayload) model.CalendarEvent {
	end := p.End
	if end == "" {
		end = p.Start
	}

	return model.CalendarEvent{
		ID:          uuid.NewString(),
		Summary:     p.Summary,
		Start:       p.Start,
		End:         end,
		Recurrence:  p.Recurrence,
		IsConfirmed: true,
	}
}

// sortEventsByStart keeps the event collection ordered ascending by the
// parsed start instant. Unparseable starts map to the zero instant and
// sink to the front; insertion order breaks ties (stable sort).
func sortEventsByStart(events []model.CalendarEvent, loc *time.Location) {
	sort.SliceStable(events, func(i, j int) bool {
		return parseWallClock(events[i].Start, loc).Before(parseWallClock(events[j].Start, loc))
	})
}

// parseWallClock interprets a classifier date string in the given
// location. It accepts date-time at second or minute precision, date-only
// and RFC3339 forms; anything else yields the zero instant.
func parseWallClock(v string, loc *time.Location) time.Time {
	if t, err := time.ParseInLocation(layoutDateTime, v, loc); err == nil {
		return t
	}
	if t, err := time.ParseInLocation(layoutDateTimeMin, v, loc); err == nil {
		return t
	}
	if t, err := time.ParseInLocation(layoutDate, v, loc); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t
	}
	return time.Time{}
}
