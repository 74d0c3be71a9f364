package usecase

import (
	"context"
	"strings"
	"time"

	"personal-task-assistant/internal/assistant"
	"personal-task-assistant/internal/model"
)

// ProcessMessage runs the full pipeline for one utterance: classify,
// normalize, reconcile, transcript. While the classification request is
// outstanding the use case reports busy and rejects further submissions;
// an in-flight request cannot be aborted.
func (uc *implUseCase) ProcessMessage(ctx context.Context, input assistant.ProcessMessageInput) (assistant.ProcessMessageOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return assistant.ProcessMessageOutput{}, assistant.ErrEmptyInput
	}

	uc.mu.Lock()
	if uc.busy {
		uc.mu.Unlock()
		return assistant.ProcessMessageOutput{}, assistant.ErrBusy
	}
	uc.busy = true
	uc.messages = append(uc.messages, model.ChatMessage{
		Role:      model.RoleUser,
		Content:   text,
		Timestamp: time.Now(),
	})
	uc.mu.Unlock()

	contextHint := "TODAY: " + time.Now().In(uc.loc).Format(layoutDate)
	intent := uc.classifier.Classify(ctx, text, contextHint)

	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.busy = false

	out := assistant.ProcessMessageOutput{}

	switch intent.Kind {
	case model.IntentTask:
		if intent.Task != nil {
			task := newTaskFromPayload(*intent.Task, time.Now())
			uc.tasks = append([]model.Task{task}, uc.tasks...)
			uc.persistState(ctx)
			out.CreatedTask = &task
			uc.l.Infof(ctx, "ProcessMessage: created task %s %q", task.ID, task.Description)
		}
	case model.IntentEvent:
		if intent.Event != nil {
			event := newEventFromPayload(*intent.Event)
			uc.events = append(uc.events, event)
			sortEventsByStart(uc.events, uc.loc)
			uc.persistState(ctx)
			out.CreatedEvent = &event
			uc.l.Infof(ctx, "ProcessMessage: created event %s %q start=%s", event.ID, event.Summary, event.Start)
		}
	default:
		// query / completion / email / clarification: transcript only.
	}

	reply := model.ChatMessage{
		Role:      model.RoleAssistant,
		Content:   intent.TextResponse,
		Timestamp: time.Now(),
		Data:      &intent,
	}
	uc.messages = append(uc.messages, reply)
	out.Reply = reply

	return out, nil
}
