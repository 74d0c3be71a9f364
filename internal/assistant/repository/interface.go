package repository

import (
	"context"

	"personal-task-assistant/internal/model"
)

// State is the persisted task/event blob, written wholesale on every
// relevant mutation.
type State struct {
	Tasks  []model.Task          `json:"tasks"`
	Events []model.CalendarEvent `json:"events"`
}

// StateRepository is the durable key-value persistence contract. Loads
// fail soft: corrupt or missing data yields empty collections, never a
// parse error, so the application always starts usable.
type StateRepository interface {
	Load(ctx context.Context) (State, error)
	SaveState(ctx context.Context, state State) error

	// LoadAccounts returns the roster with expired accounts already
	// dropped (lazy eviction at load time).
	LoadAccounts(ctx context.Context) ([]model.GoogleAccount, error)
	SaveAccounts(ctx context.Context, accounts []model.GoogleAccount) error
}
