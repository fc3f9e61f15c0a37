package api

import (
	"context"

	"github.com/everettroeth/vitalis-sub000/internal/domain"
	"github.com/everettroeth/vitalis-sub000/internal/infra/httpclient"
	"github.com/everettroeth/vitalis-sub000/internal/ports"
)

type Users struct {
	rc *httpclient.Client
}

var _ ports.UsersService = (*Users)(nil)

func (s *Users) Me(ctx context.Context) (domain.User, error) {
	var out domain.User
	err := s.rc.Get(ctx, "/users/me", &out)
	return out, err
}

func (s *Users) UpdateMe(ctx context.Context, patch domain.UserPatch) (domain.User, error) {
	var out domain.User
	if err := checkPayload("users.update_me", patch); err != nil {
		return out, err
	}
	err := s.rc.Patch(ctx, "/users/me", patch, &out)
	return out, err
}

func (s *Users) Account(ctx context.Context) (domain.Account, error) {
	var out domain.Account
	err := s.rc.Get(ctx, "/users/me/account", &out)
	return out, err
}

func (s *Users) Preferences(ctx context.Context) (domain.UserPreferences, error) {
	var out domain.UserPreferences
	err := s.rc.Get(ctx, "/users/me/preferences", &out)
	return out, err
}

func (s *Users) UpdatePreferences(ctx context.Context, patch domain.UserPreferencesPatch) (domain.UserPreferences, error) {
	var out domain.UserPreferences
	if err := checkPayload("users.update_preferences", patch); err != nil {
		return out, err
	}
	err := s.rc.Patch(ctx, "/users/me/preferences", patch, &out)
	return out, err
}
