package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"personal-task-assistant/internal/assistant"
	"personal-task-assistant/internal/model"
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

// mockUseCase returns canned outputs and records the ids it was called with.
type mockUseCase struct {
	processErr error
	exportErr  error

	toggledID string
	deletedID string
}

func (m *mockUseCase) ProcessMessage(ctx context.Context, input assistant.ProcessMessageInput) (assistant.ProcessMessageOutput, error) {
	if m.processErr != nil {
		return assistant.ProcessMessageOutput{}, m.processErr
	}
	return assistant.ProcessMessageOutput{
		Reply: model.ChatMessage{Role: model.RoleAssistant, Content: "Noted!", Timestamp: time.Now()},
		CreatedTask: &model.Task{
			ID:          "t1",
			Description: input.Text,
			Priority:    model.PriorityMedium,
			CreatedAt:   time.Now(),
		},
	}, nil
}

func (m *mockUseCase) Snapshot(ctx context.Context) (assistant.SnapshotOutput, error) {
	return assistant.SnapshotOutput{
		Tasks:  []model.Task{{ID: "t1", Description: "Buy milk", Priority: model.PriorityLow}},
		Events: []model.CalendarEvent{{ID: "e1", Summary: "Dentist", Start: "2024-05-01T09:00:00"}},
	}, nil
}

func (m *mockUseCase) Transcript(ctx context.Context) ([]model.ChatMessage, error) {
	return []model.ChatMessage{{Role: model.RoleAssistant, Content: "Hi!", Timestamp: time.Now()}}, nil
}

func (m *mockUseCase) ToggleTask(ctx context.Context, id string) error {
	m.toggledID = id
	return nil
}

func (m *mockUseCase) DeleteTask(ctx context.Context, id string) error {
	m.deletedID = id
	return nil
}

func (m *mockUseCase) DeleteEvent(ctx context.Context, id string) error {
	m.deletedID = id
	return nil
}

func (m *mockUseCase) LinkAccount(ctx context.Context, input assistant.LinkAccountInput) (model.GoogleAccount, error) {
	return model.GoogleAccount{
		Email:       input.Email,
		AccessToken: input.AccessToken,
		ExpiresAt:   time.Now().Add(time.Duration(input.ExpiresIn) * time.Second),
	}, nil
}

func (m *mockUseCase) ListAccounts(ctx context.Context) ([]model.GoogleAccount, error) {
	return []model.GoogleAccount{{Email: "me@example.com", AccessToken: "tok", ExpiresAt: time.Now().Add(time.Hour)}}, nil
}

func (m *mockUseCase) PruneExpiredAccounts(ctx context.Context) (int, error) {
	return 0, nil
}

func (m *mockUseCase) Export(ctx context.Context, input assistant.ExportInput) (assistant.ExportOutput, error) {
	if m.exportErr != nil {
		return assistant.ExportOutput{}, m.exportErr
	}
	return assistant.ExportOutput{
		Attempted: 1,
		Succeeded: 1,
		Items:     []assistant.ExportItemResult{{ID: "e1", Summary: "Dentist"}},
	}, nil
}

func newTestRouter(uc assistant.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	h := New(&mockLogger{}, uc)
	RegisterRoutes(engine.Group("/api/v1"), h)
	return engine
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestProcessMessageHandler(t *testing.T) {
	t.Run("Happy path", func(t *testing.T) {
		router := newTestRouter(&mockUseCase{})

		w := doJSON(router, http.MethodPost, "/api/v1/assistant/messages", `{"text":"buy milk"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), `"task"`) {
			t.Errorf("expected created task in body: %s", w.Body.String())
		}
	})

	t.Run("Missing text is a bad request", func(t *testing.T) {
		router := newTestRouter(&mockUseCase{})

		w := doJSON(router, http.MethodPost, "/api/v1/assistant/messages", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Busy maps to conflict", func(t *testing.T) {
		router := newTestRouter(&mockUseCase{processErr: assistant.ErrBusy})

		w := doJSON(router, http.MethodPost, "/api/v1/assistant/messages", `{"text":"buy milk"}`)
		if w.Code != http.StatusConflict {
			t.Errorf("expected 409, got %d", w.Code)
		}
	})
}

func TestSnapshotHandler(t *testing.T) {
	router := newTestRouter(&mockUseCase{})

	w := doJSON(router, http.MethodGet, "/api/v1/assistant/snapshot", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Buy milk") || !strings.Contains(body, "Dentist") {
		t.Errorf("expected both collections in body: %s", body)
	}
}

func TestToggleTaskHandler(t *testing.T) {
	uc := &mockUseCase{}
	router := newTestRouter(uc)

	w := doJSON(router, http.MethodPatch, "/api/v1/tasks/t1/toggle", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if uc.toggledID != "t1" {
		t.Errorf("expected toggle of t1, got %q", uc.toggledID)
	}
}

func TestLinkAccountHandler(t *testing.T) {
	t.Run("Happy path never echoes the token", func(t *testing.T) {
		router := newTestRouter(&mockUseCase{})

		w := doJSON(router, http.MethodPost, "/api/v1/accounts",
			`{"email":"me@example.com","access_token":"secret-token","expires_in":3600}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if strings.Contains(w.Body.String(), "secret-token") {
			t.Error("access token must not appear in the response")
		}
	})

	t.Run("Invalid email is a bad request", func(t *testing.T) {
		router := newTestRouter(&mockUseCase{})

		w := doJSON(router, http.MethodPost, "/api/v1/accounts",
			`{"email":"not-an-email","access_token":"tok","expires_in":3600}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestExportHandler(t *testing.T) {
	t.Run("Happy path", func(t *testing.T) {
		router := newTestRouter(&mockUseCase{})

		w := doJSON(router, http.MethodPost, "/api/v1/export", `{"email":"me@example.com"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), `"attempted":1`) {
			t.Errorf("expected export accounting in body: %s", w.Body.String())
		}
	})

	t.Run("Unknown account maps to 404", func(t *testing.T) {
		router := newTestRouter(&mockUseCase{exportErr: assistant.ErrUnknownAccount})

		w := doJSON(router, http.MethodPost, "/api/v1/export", `{"email":"me@example.com"}`)
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})
}
