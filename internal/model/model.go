package model

import "time"

// Environment represents the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Priority is the urgency bucket assigned to a task.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// Recurrence is the repetition frequency of a task or event.
type Recurrence string

const (
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
	RecurrenceNone    Recurrence = "none"
)

// Repeats reports whether the recurrence denotes actual repetition.
func (r Recurrence) Repeats() bool {
	return r == RecurrenceDaily || r == RecurrenceWeekly || r == RecurrenceMonthly
}

// Task is a to-do record created from a classified user utterance.
// New tasks are prepended to the collection (most-recent-first).
type Task struct {
	ID          string     `json:"id"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed"`
	Priority    Priority   `json:"priority"`
	DueDate     string     `json:"dueDate,omitempty"` // YYYY-MM-DD, no time component
	Recurrence  Recurrence `json:"recurrence,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// CalendarEvent is a scheduled record. The event collection is kept sorted
// ascending by the parsed Start instant.
type CalendarEvent struct {
	ID          string     `json:"id"`
	Summary     string     `json:"summary"`
	Start       string     `json:"start"` // YYYY-MM-DD or YYYY-MM-DDTHH:mm:ss
	End         string     `json:"end"`
	Recurrence  Recurrence `json:"recurrence,omitempty"`
	IsConfirmed bool       `json:"isConfirmed"`
}

// GoogleAccount is an authorized calendar export target. Expired accounts
// are purged lazily at load time, never refreshed in place.
type GoogleAccount struct {
	Email       string    `json:"email"`
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// Expired reports whether the account credential is no longer usable at t.
func (a GoogleAccount) Expired(t time.Time) bool {
	return !a.ExpiresAt.After(t)
}

// Role is the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatMessage is one entry of the append-only conversation transcript.
// Assistant messages carry the raw classifier result for traceability.
type ChatMessage struct {
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Data      *Intent   `json:"data,omitempty"`
}
