package usecase

import (
	"context"

	"personal-task-assistant/internal/assistant"
	"personal-task-assistant/internal/model"
)

// ToggleTask flips the completed flag on the matching task. A missing id
// is a no-op, not an error.
func (uc *implUseCase) ToggleTask(ctx context.Context, id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	for i := range uc.tasks {
		if uc.tasks[i].ID == id {
			uc.tasks[i].Completed = !uc.tasks[i].Completed
			uc.persistState(ctx)
			return nil
		}
	}
	return nil
}

// DeleteTask removes the matching task. A missing id is a no-op.
func (uc *implUseCase) DeleteTask(ctx context.Context, id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	for i := range uc.tasks {
		if uc.tasks[i].ID == id {
			uc.tasks = append(uc.tasks[:i], uc.tasks[i+1:]...)
			uc.persistState(ctx)
			return nil
		}
	}
	return nil
}

// DeleteEvent removes the matching event. A missing id is a no-op.
func (uc *implUseCase) DeleteEvent(ctx context.Context, id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	for i := range uc.events {
		if uc.events[i].ID == id {
			uc.events = append(uc.events[:i], uc.events[i+1:]...)
			uc.persistState(ctx)
			return nil
		}
	}
	return nil
}

// Snapshot returns copies of the current collections.
func (uc *implUseCase) Snapshot(ctx context.Context) (assistant.SnapshotOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	tasks := make([]model.Task, len(uc.tasks))
	copy(tasks, uc.tasks)
	events := make([]model.CalendarEvent, len(uc.events))
	copy(events, uc.events)

	return assistant.SnapshotOutput{Tasks: tasks, Events: events}, nil
}

// Transcript returns a copy of the append-only conversation log.
func (uc *implUseCase) Transcript(ctx context.Context) ([]model.ChatMessage, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	messages := make([]model.ChatMessage, len(uc.messages))
	copy(messages, uc.messages)
	return messages, nil
}
