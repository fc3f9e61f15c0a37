package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everettroeth/vitalis-sub000/internal/domain"
)

func TestMe(t *testing.T) {
	svcs, _ := newTestServices(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/users/me", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":"u1","account_id":"acc1","email":"a@b.com","name":"Ana","role":"owner"}`))
	})

	user, err := svcs.Users.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, domain.RoleOwner, user.Role)
}

func TestUpdatePreferencesOmitsAbsentFields(t *testing.T) {
	var raw []byte
	svcs, _ := newTestServices(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		raw, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(`{"user_id":"u1","unit_system":"metric","time_format":"24h","week_start":"monday","glucose_unit":"mmol_l"}`))
	})

	metric := domain.UnitMetric
	_, err := svcs.Users.UpdatePreferences(context.Background(), domain.UserPreferencesPatch{
		UnitSystem: &metric,
	})
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, map[string]any{"unit_system": "metric"}, body)
}

func TestUpdatePreferencesRejectsOutOfSetValue(t *testing.T) {
	called := false
	svcs, _ := newTestServices(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	bad := domain.UnitSystem("stone")
	_, err := svcs.Users.UpdatePreferences(context.Background(), domain.UserPreferencesPatch{
		UnitSystem: &bad,
	})
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindInvalidPayload))
	assert.False(t, called, "request must not reach the wire")
}

func TestAccountShape(t *testing.T) {
	svcs, _ := newTestServices(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/users/me/account", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":"acc1","subscription_tier":"family","subscription_status":"active","max_members":5}`))
	})

	acc, err := svcs.Users.Account(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.TierFamily, acc.SubscriptionTier)
	assert.Equal(t, 5, acc.MaxMembers)
}
