package usecase_test

import (
	"context"
	"testing"

	"personal-task-assistant/internal/assistant/repository"
	"personal-task-assistant/internal/model"
)

func seededRepo() *mockRepo {
	return &mockRepo{state: repository.State{
		Tasks: []model.Task{
			{ID: "t1", Description: "Buy milk", Priority: model.PriorityMedium},
			{ID: "t2", Description: "Call mom", Priority: model.PriorityHigh},
		},
		Events: []model.CalendarEvent{
			{ID: "e1", Summary: "Dentist", Start: "2024-05-01T09:00:00", End: "2024-05-01T10:00:00"},
		},
	}}
}

func TestToggleTask(t *testing.T) {
	ctx := context.Background()

	t.Run("Flips completed", func(t *testing.T) {
		repo := seededRepo()
		uc := newTestUC(t, repo, &scriptedClassifier{}, &fakeCalendar{})

		if err := uc.ToggleTask(ctx, "t1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		snap, _ := uc.Snapshot(ctx)
		if !snap.Tasks[0].Completed {
			t.Error("expected t1 completed after toggle")
		}

		uc.ToggleTask(ctx, "t1")
		snap, _ = uc.Snapshot(ctx)
		if snap.Tasks[0].Completed {
			t.Error("expected t1 incomplete after second toggle")
		}
		if repo.stateSaves != 2 {
			t.Errorf("expected 2 persists, got %d", repo.stateSaves)
		}
	})

	t.Run("Missing id is a no-op", func(t *testing.T) {
		repo := seededRepo()
		uc := newTestUC(t, repo, &scriptedClassifier{}, &fakeCalendar{})

		if err := uc.ToggleTask(ctx, "nope"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.stateSaves != 0 {
			t.Errorf("expected no persist, got %d", repo.stateSaves)
		}
	})
}

func TestDeleteTask(t *testing.T) {
	ctx := context.Background()

	t.Run("Removes the matching task", func(t *testing.T) {
		repo := seededRepo()
		uc := newTestUC(t, repo, &scriptedClassifier{}, &fakeCalendar{})

		if err := uc.DeleteTask(ctx, "t1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		snap, _ := uc.Snapshot(ctx)
		if len(snap.Tasks) != 1 || snap.Tasks[0].ID != "t2" {
			t.Errorf("unexpected tasks after delete: %+v", snap.Tasks)
		}
	})

	t.Run("Missing id is a no-op", func(t *testing.T) {
		repo := seededRepo()
		uc := newTestUC(t, repo, &scriptedClassifier{}, &fakeCalendar{})

		if err := uc.DeleteTask(ctx, "nope"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		snap, _ := uc.Snapshot(ctx)
		if len(snap.Tasks) != 2 {
			t.Errorf("expected both tasks kept, got %d", len(snap.Tasks))
		}
		if repo.stateSaves != 0 {
			t.Errorf("expected no persist, got %d", repo.stateSaves)
		}
	})
}

func TestDeleteEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("Removes the matching event", func(t *testing.T) {
		repo := seededRepo()
		uc := newTestUC(t, repo, &scriptedClassifier{}, &fakeCalendar{})

		if err := uc.DeleteEvent(ctx, "e1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		snap, _ := uc.Snapshot(ctx)
		if len(snap.Events) != 0 {
			t.Errorf("expected no events, got %d", len(snap.Events))
		}
	})

	t.Run("Missing id is a no-op", func(t *testing.T) {
		repo := seededRepo()
		uc := newTestUC(t, repo, &scriptedClassifier{}, &fakeCalendar{})

		if err := uc.DeleteEvent(ctx, "nope"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.stateSaves != 0 {
			t.Errorf("expected no persist, got %d", repo.stateSaves)
		}
	})
}

func TestSnapshotReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := seededRepo()
	uc := newTestUC(t, repo, &scriptedClassifier{}, &fakeCalendar{})

	snap, _ := uc.Snapshot(ctx)
	snap.Tasks[0].Description = "mutated"

	again, _ := uc.Snapshot(ctx)
	if again.Tasks[0].Description != "Buy milk" {
		t.Error("snapshot must not expose internal state")
	}
}
