package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/teambition/rrule-go"

	"personal-task-assistant/internal/assistant"
	"personal-task-assistant/internal/model"
	"personal-task-assistant/pkg/gcalendar"
)

// Default time window projected onto date-only items.
const (
	defaultStartHour = 9
	defaultEndHour   = 10
)

// exportItem is one entry of the unified export list: events as-is, plus
// eligible tasks projected into an event shape.
type exportItem struct {
	id         string
	summary    string
	start      string
	end        string
	recurrence model.Recurrence
}

// Export converts the current snapshot into calendar create calls against
// one linked account. Items are uploaded sequentially, best-effort: a
// failed item is recorded and skipped, never aborts the batch, and nothing
// is rolled back. The local store stays authoritative regardless.
func (uc *implUseCase) Export(ctx context.Context, input assistant.ExportInput) (assistant.ExportOutput, error) {
	uc.mu.Lock()
	account, ok := uc.findAccount(input.Email)
	items := uc.buildExportItems(input.IncludeCompleted)
	uc.mu.Unlock()

	if !ok {
		return assistant.ExportOutput{}, assistant.ErrUnknownAccount
	}

	cal, err := uc.dialCalendar(ctx, account)
	if err != nil {
		return assistant.ExportOutput{}, fmt.Errorf("failed to build calendar client for %s: %w", account.Email, err)
	}

	out := assistant.ExportOutput{Attempted: len(items)}

	for _, item := range items {
		result := assistant.ExportItemResult{ID: item.id, Summary: item.summary}

		if err := uc.limiter.Wait(ctx); err != nil {
			// Caller gone; record the remaining item and keep the
			// accounting honest without spinning on a dead context.
			result.Error = err.Error()
			out.Items = append(out.Items, result)
			continue
		}

		req := gcalendar.CreateEventRequest{
			CalendarID: "primary",
			Summary:    item.summary,
			StartTime:  normalizeInstant(item.start, defaultStartHour, uc.loc),
			EndTime:    normalizeInstant(item.end, defaultEndHour, uc.loc),
			Recurrence: recurrenceRule(item.recurrence),
		}

		if _, err := cal.CreateEvent(ctx, req); err != nil {
			uc.l.Warnf(ctx, "Export: item %q failed (continuing): %v", item.summary, err)
			result.Error = err.Error()
		} else {
			out.Succeeded++
		}
		out.Items = append(out.Items, result)
	}

	uc.l.Infof(ctx, "Export: %d/%d items exported to %s", out.Succeeded, out.Attempted, account.Email)
	return out, nil
}

// findAccount returns the first non-expired roster entry for email.
// Caller holds uc.mu.
func (uc *implUseCase) findAccount(email string) (model.GoogleAccount, bool) {
	now := time.Now()
	for _, acc := range uc.accounts {
		if acc.Email == email && !acc.Expired(now) {
			return acc, true
		}
	}
	return model.GoogleAccount{}, false
}

// buildExportItems assembles the unified list: every event, plus every
// eligible task that carries a due date. Caller holds uc.mu.
func (uc *implUseCase) buildExportItems(includeCompleted bool) []exportItem {
	items := make([]exportItem, 0, len(uc.events)+len(uc.tasks))

	for _, e := range uc.events {
		items = append(items, exportItem{
			id:         e.ID,
			summary:    e.Summary,
			start:      e.Start,
			end:        e.End,
			recurrence: e.Recurrence,
		})
	}

	for _, t := range uc.tasks {
		if t.Completed && !includeCompleted {
			continue
		}
		if t.DueDate == "" {
			continue
		}
		items = append(items, exportItem{
			id:         t.ID,
			summary:    t.Description,
			start:      t.DueDate,
			end:        t.DueDate,
			recurrence: t.Recurrence,
		})
	}

	return items
}

// normalizeInstant turns a classifier wall-clock string into an absolute
// UTC instant. Values carrying a time component are interpreted in loc and
// converted; date-only values get defaultHour local first. An unparseable
// value maps to the zero instant.
func normalizeInstant(v string, defaultHour int, loc *time.Location) time.Time {
	if strings.Contains(v, "T") {
		return parseWallClock(v, loc).UTC()
	}

	day, err := time.ParseInLocation(layoutDate, v, loc)
	if err != nil {
		return time.Time{}
	}
	return day.Add(time.Duration(defaultHour) * time.Hour).UTC()
}

// recurrenceRule translates the domain recurrence into provider rules.
// Absent or "none" yields no field at all.
func recurrenceRule(r model.Recurrence) []string {
	var freq rrule.Frequency
	switch r {
	case model.RecurrenceDaily:
		freq = rrule.DAILY
	case model.RecurrenceWeekly:
		freq = rrule.WEEKLY
	case model.RecurrenceMonthly:
		freq = rrule.MONTHLY
	default:
		return nil
	}

	rule, err := rrule.NewRRule(rrule.ROption{Freq: freq})
	if err != nil {
		return nil
	}
	return []string{"RRULE:" + rule.String()}
}
