package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vaughan-dsouza/jobboard/internal/function"
	"github.com/vaughan-dsouza/jobboard/internal/models"
	"github.com/vaughan-dsouza/jobboard/internal/utils"
	"go.uber.org/zap/zaptest"
)

const secret = "test-secret"

func eventWithAuth(v string) function.Event {
	return function.Event{Headers: map[string]string{"X-Authorization": v}}
}

func TestIdentify(t *testing.T) {
	a := NewAuthenticator(secret, zaptest.NewLogger(t))

	valid, _, err := utils.GenerateToken(9, "e@x.com", "employer", secret, time.Now())
	require.NoError(t, err)
	expired, _, err := utils.GenerateToken(9, "e@x.com", "employer", secret, time.Now().Add(-8*24*time.Hour))
	require.NoError(t, err)
	foreign, _, err := utils.GenerateToken(9, "e@x.com", "admin", "other", time.Now())
	require.NoError(t, err)

	tests := []struct {
		name   string
		event  function.Event
		status AuthStatus
	}{
		{"no headers", function.Event{}, AuthAbsent},
		{"empty header", eventWithAuth(""), AuthAbsent},
		{"no bearer prefix", eventWithAuth(valid), AuthMalformed},
		{"lowercase scheme", eventWithAuth("bearer " + valid), AuthMalformed},
		{"empty token", eventWithAuth("Bearer "), AuthMalformed},
		{"garbage token", eventWithAuth("Bearer abc.def.ghi"), AuthInvalid},
		{"wrong secret", eventWithAuth("Bearer " + foreign), AuthInvalid},
		{"expired", eventWithAuth("Bearer " + expired), AuthExpired},
		{"valid", eventWithAuth("Bearer " + valid), AuthOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, status := a.Identify(tt.event)
			assert.Equal(t, tt.status, status)
			if tt.status == AuthOK {
				require.NotNil(t, id)
				assert.Equal(t, int64(9), id.UserID)
				assert.Equal(t, "e@x.com", id.Email)
				assert.Equal(t, models.RoleEmployer, id.Role)
			} else {
				assert.Nil(t, id)
			}
		})
	}
}

func TestIdentify_IgnoresCookie(t *testing.T) {
	a := NewAuthenticator(secret, zaptest.NewLogger(t))
	ev := function.Event{Headers: map[string]string{"X-Cookie": "session_token=abc"}}

	id, status := a.Identify(ev)
	assert.Nil(t, id)
	assert.Equal(t, AuthAbsent, status)
}

func TestIdentity_HasRole(t *testing.T) {
	var anon *Identity
	assert.False(t, anon.HasRole(models.RoleAdmin))

	id := &Identity{Role: models.RoleEmployer}
	assert.True(t, id.HasRole(models.RoleAdmin, models.RoleEmployer))
	assert.False(t, id.HasRole(models.RoleAdmin))
}

func TestAuthStatus_String(t *testing.T) {
	assert.Equal(t, "expired", AuthExpired.String())
	assert.Equal(t, "unknown", AuthStatus(99).String())
}
