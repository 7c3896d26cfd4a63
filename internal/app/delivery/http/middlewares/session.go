package middlewares

import (
	"afiatrack-service/internal/app/services/shared/jwtmanager"
	"afiatrack-service/internal/pkg/constvars"
	"afiatrack-service/internal/pkg/exceptions"
	"afiatrack-service/internal/pkg/utils"
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// SessionOptional accepts requests without a bearer token. When one is sent
// it must be valid, and its subject becomes the session user.
func (m *Middlewares) SessionOptional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(constvars.HeaderAuthorization)
		if header == "" {
			next.ServeHTTP(w, r)
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, constvars.AuthorizationBearerPrefix))
		output, err := m.JWTManager.VerifyToken(r.Context(), &jwtmanager.VerifyTokenInput{Token: token})
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if !output.Valid {
			requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			m.Log.Info("Middlewares.SessionOptional rejected token",
				zap.String(constvars.LoggingRequestIDKey, requestID),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(nil))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_USER_ID_KEY, output.Subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
