package assistant

import (
	"context"

	"personal-task-assistant/internal/model"
)

// UseCase defines the business logic interface for the assistant domain.
type UseCase interface {
	// ProcessMessage classifies one user utterance, creates the resulting
	// record (if any) and appends both sides to the transcript.
	ProcessMessage(ctx context.Context, input ProcessMessageInput) (ProcessMessageOutput, error)

	// Snapshot returns the current task and event collections.
	Snapshot(ctx context.Context) (SnapshotOutput, error)

	// Transcript returns the conversation so far.
	Transcript(ctx context.Context) ([]model.ChatMessage, error)

	// ToggleTask flips the completed flag. A missing id is a no-op.
	ToggleTask(ctx context.Context, id string) error

	// DeleteTask removes a task. A missing id is a no-op.
	DeleteTask(ctx context.Context, id string) error

	// DeleteEvent removes an event. A missing id is a no-op.
	DeleteEvent(ctx context.Context, id string) error

	// LinkAccount adds a calendar account to the roster.
	LinkAccount(ctx context.Context, input LinkAccountInput) (model.GoogleAccount, error)

	// ListAccounts returns the non-expired account roster.
	ListAccounts(ctx context.Context) ([]model.GoogleAccount, error)

	// PruneExpiredAccounts drops expired accounts and reports how many.
	PruneExpiredAccounts(ctx context.Context) (int, error)

	// Export pushes the current snapshot to one linked calendar account,
	// best-effort, and reports per-item outcomes.
	Export(ctx context.Context, input ExportInput) (ExportOutput, error)
}
