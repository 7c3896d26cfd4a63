package utils

import (
	"afiatrack-service/internal/pkg/constvars"
	"afiatrack-service/internal/pkg/exceptions"
	"context"
	"net/http"
	"strconv"
)

// ResolveUserID decides which user a request acts on. The userId named by
// the client wins when there is no session; with a session it must match
// the session user, and an omitted userId falls back to the session user.
func ResolveUserID(ctx context.Context, requestedUserID string) (string, error) {
	sessionUserID, _ := ctx.Value(constvars.CONTEXT_SESSION_USER_ID_KEY).(string)

	switch {
	case sessionUserID != "" && requestedUserID != "" && sessionUserID != requestedUserID:
		return "", exceptions.ErrSessionUserMismatch(nil, sessionUserID, requestedUserID)
	case requestedUserID != "":
		return requestedUserID, nil
	case sessionUserID != "":
		return sessionUserID, nil
	default:
		return "", exceptions.ErrMissingUserID(nil)
	}
}

// ResolveQueryUserID is ResolveUserID fed from the userId query parameter.
func ResolveQueryUserID(r *http.Request) (string, error) {
	return ResolveUserID(r.Context(), r.URL.Query().Get(constvars.URLQueryParamUserID))
}

func ParseDaysQuery(r *http.Request) int {
	days, err := strconv.Atoi(r.URL.Query().Get(constvars.URLQueryParamDays))
	if err != nil || days <= 0 {
		return constvars.DefaultReportWindowInDays
	}
	if days > constvars.MaxReportWindowInDays {
		return constvars.MaxReportWindowInDays
	}
	return days
}
