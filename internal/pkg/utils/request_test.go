package utils

import (
	"afiatrack-service/internal/pkg/constvars"
	"afiatrack-service/internal/pkg/exceptions"
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveUserID(t *testing.T) {
	sessionCtx := context.WithValue(context.Background(), constvars.CONTEXT_SESSION_USER_ID_KEY, "user-1")

	t.Run("Query Only", func(t *testing.T) {
		userID, err := ResolveUserID(context.Background(), "user-2")
		require.NoError(t, err)
		assert.Equal(t, "user-2", userID)
	})

	t.Run("Session Fallback", func(t *testing.T) {
		userID, err := ResolveUserID(sessionCtx, "")
		require.NoError(t, err)
		assert.Equal(t, "user-1", userID, "session user should be used when userId is omitted")
	})

	t.Run("Session Mismatch", func(t *testing.T) {
		_, err := ResolveUserID(sessionCtx, "user-2")
		require.Error(t, err)
		assert.Equal(t, constvars.StatusForbidden, exceptions.StatusCodeOf(err))
	})

	t.Run("Missing Both", func(t *testing.T) {
		_, err := ResolveUserID(context.Background(), "")
		require.Error(t, err)
		assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCodeOf(err))
	})
}

func TestParseDaysQuery(t *testing.T) {
	cases := map[string]int{
		"/report":           constvars.DefaultReportWindowInDays,
		"/report?days=7":    7,
		"/report?days=-1":   constvars.DefaultReportWindowInDays,
		"/report?days=abc":  constvars.DefaultReportWindowInDays,
		"/report?days=9999": constvars.MaxReportWindowInDays,
	}
	for target, expected := range cases {
		r := httptest.NewRequest("GET", target, nil)
		assert.Equal(t, expected, ParseDaysQuery(r), target)
	}
}
