package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"personal-task-assistant/internal/assistant"
	"personal-task-assistant/internal/assistant/repository"
	"personal-task-assistant/internal/assistant/usecase"
	"personal-task-assistant/internal/model"
	"personal-task-assistant/pkg/gcalendar"
)

// mock dependencies

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

type mockRepo struct {
	state    repository.State
	accounts []model.GoogleAccount

	stateSaves   int
	accountSaves int
}

func (m *mockRepo) Load(ctx context.Context) (repository.State, error) {
	return m.state, nil
}

func (m *mockRepo) SaveState(ctx context.Context, state repository.State) error {
	m.state = state
	m.stateSaves++
	return nil
}

func (m *mockRepo) LoadAccounts(ctx context.Context) ([]model.GoogleAccount, error) {
	return m.accounts, nil
}

func (m *mockRepo) SaveAccounts(ctx context.Context, accounts []model.GoogleAccount) error {
	m.accounts = accounts
	m.accountSaves++
	return nil
}

// scriptedClassifier replays queued intents, then repeats the last one.
type scriptedClassifier struct {
	queue []model.Intent
}

func (s *scriptedClassifier) Classify(ctx context.Context, userText, contextHint string) model.Intent {
	if len(s.queue) == 0 {
		return model.Intent{Kind: model.IntentClarification, TextResponse: "say again?"}
	}
	next := s.queue[0]
	if len(s.queue) > 1 {
		s.queue = s.queue[1:]
	}
	return next
}

// fakeCalendar records every create call and fails on scripted indexes.
type fakeCalendar struct {
	requests []gcalendar.CreateEventRequest
	failOn   map[int]bool
}

func (f *fakeCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	idx := len(f.requests)
	f.requests = append(f.requests, req)
	if f.failOn[idx] {
		return nil, errors.New("provider said no")
	}
	return &gcalendar.Event{ID: "created", Summary: req.Summary}, nil
}

func dialerFor(cal usecase.CalendarClient) usecase.CalendarDialer {
	return func(ctx context.Context, account model.GoogleAccount) (usecase.CalendarClient, error) {
		return cal, nil
	}
}

func newTestUC(t *testing.T, repo *mockRepo, cls *scriptedClassifier, cal usecase.CalendarClient) assistant.UseCase {
	t.Helper()
	uc, err := usecase.New(&mockLogger{}, cls, repo, dialerFor(cal), time.UTC, 6000)
	if err != nil {
		t.Fatalf("usecase.New: %v", err)
	}
	return uc
}

func freshAccount(email string) model.GoogleAccount {
	return model.GoogleAccount{
		Email:       email,
		AccessToken: "tok",
		ExpiresAt:   time.Now().Add(time.Hour),
	}
}
