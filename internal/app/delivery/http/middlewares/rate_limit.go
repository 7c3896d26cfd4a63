package middlewares

import (
	"afiatrack-service/internal/pkg/exceptions"
	"afiatrack-service/internal/pkg/utils"
	"net"
	"net/http"
)

// LimitByClientIP throttles a route group per remote address with the
// configured auth limiter, which is redis backed when redis is enabled.
func (m *Middlewares) LimitByClientIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		allowed, err := m.AuthRateLimiter.Allow(r.Context(), ip)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if !allowed {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(nil, ip))
			return
		}

		next.ServeHTTP(w, r)
	})
}
