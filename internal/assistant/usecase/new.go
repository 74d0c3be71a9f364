package usecase

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"personal-task-assistant/internal/assistant"
	"personal-task-assistant/internal/assistant/repository"
	"personal-task-assistant/internal/classifier"
	"personal-task-assistant/internal/model"
	"personal-task-assistant/pkg/gcalendar"
	pkgLog "personal-task-assistant/pkg/log"
)

// CalendarClient is the slice of pkg/gcalendar the export pipeline needs.
type CalendarClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// CalendarDialer builds a calendar client for one roster account.
type CalendarDialer func(ctx context.Context, account model.GoogleAccount) (CalendarClient, error)

const greeting = "Hi! Your assistant is ready. Link a Google account whenever you want calendar export."

// implUseCase owns the whole application state: tasks, events, accounts
// and the transcript. Mutations are serialized behind mu, and each one
// persists the affected blob wholesale.
type implUseCase struct {
	l            pkgLog.Logger
	classifier   classifier.Classifier
	repo         repository.StateRepository
	dialCalendar CalendarDialer
	loc          *time.Location
	limiter      *rate.Limiter

	mu       sync.Mutex
	busy     bool // a classification request is outstanding
	tasks    []model.Task
	events   []model.CalendarEvent
	accounts []model.GoogleAccount
	messages []model.ChatMessage
}

var _ assistant.UseCase = (*implUseCase)(nil)

// New creates the assistant UseCase, loading persisted state from the
// repository and seeding the transcript with a greeting. exportPerMin
// paces the sequential export loop.
func New(
	l pkgLog.Logger,
	cls classifier.Classifier,
	repo repository.StateRepository,
	dialCalendar CalendarDialer,
	loc *time.Location,
	exportPerMin int,
) (*implUseCase, error) {
	ctx := context.Background()

	state, err := repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	accounts, err := repo.LoadAccounts(ctx)
	if err != nil {
		return nil, err
	}

	if loc == nil {
		loc = time.UTC
	}
	if exportPerMin <= 0 {
		exportPerMin = 60
	}

	uc := &implUseCase{
		l:            l,
		classifier:   cls,
		repo:         repo,
		dialCalendar: dialCalendar,
		loc:          loc,
		limiter:      rate.NewLimiter(rate.Limit(float64(exportPerMin)/60.0), 1),
		tasks:        state.Tasks,
		events:       state.Events,
		accounts:     accounts,
	}

	uc.messages = append(uc.messages, model.ChatMessage{
		Role:      model.RoleAssistant,
		Content:   greeting,
		Timestamp: time.Now(),
	})

	return uc, nil
}

// persistState writes the task/event blob. Failures are logged, not
// propagated: the in-memory state already advanced and the next mutation
// retries the write.
func (uc *implUseCase) persistState(ctx context.Context) {
	state := repository.State{Tasks: uc.tasks, Events: uc.events}
	if err := uc.repo.SaveState(ctx, state); err != nil {
		uc.l.Errorf(ctx, "persist state failed: %v", err)
	}
}

func (uc *implUseCase) persistAccounts(ctx context.Context) {
	if err := uc.repo.SaveAccounts(ctx, uc.accounts); err != nil {
		uc.l.Errorf(ctx, "persist accounts failed: %v", err)
	}
}
