package assistant

import "personal-task-assistant/internal/model"

// ProcessMessageInput is the input for processing one user utterance.
type ProcessMessageInput struct {
	Text string
}

// ProcessMessageOutput is the result of processing one utterance: the
// assistant reply, plus the record created from it, if any.
type ProcessMessageOutput struct {
	Reply        model.ChatMessage
	CreatedTask  *model.Task
	CreatedEvent *model.CalendarEvent
}

// SnapshotOutput is the current dashboard state.
type SnapshotOutput struct {
	Tasks  []model.Task
	Events []model.CalendarEvent
}

// LinkAccountInput is the input for adding a calendar account to the
// roster. The token arrives already minted by the identity provider.
type LinkAccountInput struct {
	Email       string
	AccessToken string
	ExpiresIn   int // seconds until the token expires
}

// ExportInput selects the roster account and task filter for an export run.
type ExportInput struct {
	Email            string
	IncludeCompleted bool
}

// ExportItemResult is the outcome of one calendar create call. Error is
// empty on success.
type ExportItemResult struct {
	ID      string
	Summary string
	Error   string
}

// ExportOutput is the aggregate result of a best-effort export run.
type ExportOutput struct {
	Attempted int
	Succeeded int
	Items     []ExportItemResult
}
