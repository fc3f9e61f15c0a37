package ports

import (
	"context"

	"github.com/everettroeth/vitalis-sub000/internal/domain"
)

// UsersService exposes the current user, their account and preferences.
type UsersService interface {
	Me(ctx context.Context) (domain.User, error)
	UpdateMe(ctx context.Context, patch domain.UserPatch) (domain.User, error)
	Account(ctx context.Context) (domain.Account, error)
	Preferences(ctx context.Context) (domain.UserPreferences, error)
	UpdatePreferences(ctx context.Context, patch domain.UserPreferencesPatch) (domain.UserPreferences, error)
}
