package classifier_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"personal-task-assistant/internal/classifier"
	"personal-task-assistant/internal/model"
	"personal-task-assistant/pkg/gemini"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func candidateJSON(t *testing.T, intent string) []byte {
	t.Helper()
	wrapped := map[string]any{
		"candidates": []any{
			map[string]any{
				"content": map[string]any{
					"parts": []any{map[string]any{"text": intent}},
				},
			},
		},
	}
	raw, err := json.Marshal(wrapped)
	if err != nil {
		t.Fatal(err)
	}
	return raw
}

func TestClassify(t *testing.T) {
	var calls atomic.Int64

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)

		var req gemini.GenerateRequest
		json.NewDecoder(r.Body).Decode(&req)
		prompt := req.Contents[0].Parts[0].Text

		switch {
		case strings.Contains(prompt, "buy milk"):
			w.Write(candidateJSON(t, `{"type":"task","textResponse":"Noted!","taskData":{"description":"Buy milk","priority":"high","dueDate":"2024-05-10"}}`))
		case strings.Contains(prompt, "dentist"):
			w.Write(candidateJSON(t, `{"type":"event","textResponse":"Booked!","calendarData":{"summary":"Dentist","start":"2024-05-10T14:00:00","recurrence":"none"}}`))
		case strings.Contains(prompt, "half task"):
			w.Write(candidateJSON(t, `{"type":"task","textResponse":"Hmm","taskData":{"description":"","priority":"low"}}`))
		case strings.Contains(prompt, "weird kind"):
			w.Write(candidateJSON(t, `{"type":"banana","textResponse":"??"}`))
		case strings.Contains(prompt, "bad json"):
			w.Write(candidateJSON(t, `this is not json`))
		case strings.Contains(prompt, "boom"):
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.Write(candidateJSON(t, `{"type":"query","textResponse":"Here you go"}`))
		}
	}))
	defer ts.Close()

	newClassifier := func(key string) *classifier.LLMClassifier {
		llm := gemini.NewClient(key)
		llm.SetAPIURL(ts.URL)
		return classifier.New(llm, &mockLogger{}, time.Minute)
	}

	ctx := context.Background()

	t.Run("Task intent", func(t *testing.T) {
		res := newClassifier("k").Classify(ctx, "buy milk tomorrow", "TODAY: 2024-05-09")
		if res.Kind != model.IntentTask {
			t.Fatalf("expected task kind, got %s", res.Kind)
		}
		if res.Task == nil || res.Task.Description != "Buy milk" {
			t.Errorf("expected task payload, got %+v", res.Task)
		}
	})

	t.Run("Event intent", func(t *testing.T) {
		res := newClassifier("k").Classify(ctx, "dentist at 2pm", "")
		if res.Kind != model.IntentEvent {
			t.Fatalf("expected event kind, got %s", res.Kind)
		}
		if res.Event == nil || res.Event.Start != "2024-05-10T14:00:00" {
			t.Errorf("expected event payload, got %+v", res.Event)
		}
	})

	t.Run("Incomplete payload dropped", func(t *testing.T) {
		res := newClassifier("k").Classify(ctx, "half task", "")
		if res.Kind != model.IntentTask {
			t.Fatalf("expected task kind, got %s", res.Kind)
		}
		if res.Task != nil {
			t.Errorf("expected payload without description to be dropped, got %+v", res.Task)
		}
	})

	t.Run("Unknown kind degrades to clarification", func(t *testing.T) {
		res := newClassifier("k").Classify(ctx, "weird kind", "")
		if res.Kind != model.IntentClarification {
			t.Errorf("expected clarification, got %s", res.Kind)
		}
	})

	t.Run("Transport failure degrades to clarification", func(t *testing.T) {
		res := newClassifier("k").Classify(ctx, "boom", "")
		if res.Kind != model.IntentClarification {
			t.Errorf("expected clarification, got %s", res.Kind)
		}
		if res.TextResponse == "" {
			t.Error("expected non-empty apology text")
		}
	})

	t.Run("Parse failure degrades to clarification", func(t *testing.T) {
		res := newClassifier("k").Classify(ctx, "bad json", "")
		if res.Kind != model.IntentClarification {
			t.Errorf("expected clarification, got %s", res.Kind)
		}
	})

	t.Run("Missing key short-circuits without a call", func(t *testing.T) {
		before := calls.Load()
		res := newClassifier("").Classify(ctx, "anything", "")
		if res.Kind != model.IntentClarification {
			t.Errorf("expected clarification, got %s", res.Kind)
		}
		if calls.Load() != before {
			t.Error("expected no upstream call without an API key")
		}
	})

	t.Run("Cache hit avoids second call", func(t *testing.T) {
		cls := newClassifier("k")
		cls.Classify(ctx, "buy milk please", "TODAY: 2024-05-09")
		before := calls.Load()
		cls.Classify(ctx, "buy milk please", "TODAY: 2024-05-09")
		if calls.Load() != before {
			t.Error("expected cached result on identical input")
		}
	})
}
