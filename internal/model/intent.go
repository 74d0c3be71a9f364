package model

// IntentKind tags the classified meaning of a user utterance.
type IntentKind string

const (
	IntentTask          IntentKind = "task"
	IntentEvent         IntentKind = "event"
	IntentQuery         IntentKind = "query"
	IntentCompletion    IntentKind = "completion"
	IntentEmail         IntentKind = "email"
	IntentClarification IntentKind = "clarification"
)

// Valid reports whether k is one of the known intent kinds.
func (k IntentKind) Valid() bool {
	switch k {
	case IntentTask, IntentEvent, IntentQuery, IntentCompletion, IntentEmail, IntentClarification:
		return true
	}
	return false
}

// Intent is the classifier output, validated once at the classifier
// boundary. Only the payload matching Kind is non-nil; downstream code
// branches on Kind instead of probing optional fields.
type Intent struct {
	Kind         IntentKind    `json:"type"`
	TextResponse string        `json:"textResponse"`
	Event        *EventPayload `json:"calendarData,omitempty"`
	Task         *TaskPayload  `json:"taskData,omitempty"`
	Email        *EmailPayload `json:"emailData,omitempty"`
}

// EventPayload is the kind-specific payload for "event" intents.
type EventPayload struct {
	Summary    string     `json:"summary"`
	Start      string     `json:"start"`
	End        string     `json:"end,omitempty"`
	Recurrence Recurrence `json:"recurrence,omitempty"`
}

// TaskPayload is the kind-specific payload for "task" intents.
type TaskPayload struct {
	Description string     `json:"description"`
	Priority    Priority   `json:"priority"`
	DueDate     string     `json:"dueDate,omitempty"`
	Recurrence  Recurrence `json:"recurrence,omitempty"`
}

// EmailPayload is the kind-specific payload for "email" intents. It is
// carried on the transcript only; no record is created from it.
type EmailPayload struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
