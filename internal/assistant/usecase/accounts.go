package usecase

import (
	"context"
	"time"

	"personal-task-assistant/internal/assistant"
	"personal-task-assistant/internal/model"
)

// LinkAccount adds an already-authorized calendar account to the roster.
// Duplicate emails are allowed; export picks the first match.
func (uc *implUseCase) LinkAccount(ctx context.Context, input assistant.LinkAccountInput) (model.GoogleAccount, error) {
	if input.Email == "" || input.AccessToken == "" || input.ExpiresIn <= 0 {
		return model.GoogleAccount{}, assistant.ErrInvalidAccount
	}

	account := model.GoogleAccount{
		Email:       input.Email,
		AccessToken: input.AccessToken,
		ExpiresAt:   time.Now().Add(time.Duration(input.ExpiresIn) * time.Second),
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.accounts = append(uc.accounts, account)
	uc.persistAccounts(ctx)

	uc.l.Infof(ctx, "LinkAccount: linked %s, expires %s", account.Email, account.ExpiresAt.Format(time.RFC3339))
	return account, nil
}

// ListAccounts returns the roster with expired entries filtered out.
func (uc *implUseCase) ListAccounts(ctx context.Context) ([]model.GoogleAccount, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	now := time.Now()
	var out []model.GoogleAccount
	for _, acc := range uc.accounts {
		if !acc.Expired(now) {
			out = append(out, acc)
		}
	}
	return out, nil
}

// PruneExpiredAccounts drops expired accounts from the roster and persists
// the result when anything changed. Returns the number pruned.
func (uc *implUseCase) PruneExpiredAccounts(ctx context.Context) (int, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	now := time.Now()
	kept := uc.accounts[:0]
	for _, acc := range uc.accounts {
		if !acc.Expired(now) {
			kept = append(kept, acc)
		}
	}

	pruned := len(uc.accounts) - len(kept)
	if pruned > 0 {
		uc.accounts = kept
		uc.persistAccounts(ctx)
		uc.l.Infof(ctx, "PruneExpiredAccounts: dropped %d expired account(s)", pruned)
	}
	return pruned, nil
}
