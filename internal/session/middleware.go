package session

import (
	"context"
	"net/http"
	"net/url"

	"github.com/osse101/LondonTravel_Go/internal/domain"
	"github.com/osse101/LondonTravel_Go/internal/logger"
)

type contextKey string

const principalKey contextKey = "principal"

// WithPrincipal stores principal in ctx
func WithPrincipal(ctx context.Context, principal domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey, principal)
}

// PrincipalFromContext returns the principal stored by Middleware
func PrincipalFromContext(ctx context.Context) domain.Principal {
	p, _ := ctx.Value(principalKey).(domain.Principal)
	return p
}

// Middleware resolves the session cookie into the request context.
// Invalid cookies are cleared and the request continues anonymously.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, err := m.Principal(r)
		if err != nil {
			logger.FromContext(r.Context()).Debug(LogMsgInvalidSessionCookie, "error", err)
			m.Clear(w)
		}

		ctx := WithPrincipal(r.Context(), principal)
		if principal.IsAuthenticated() {
			ctx = logger.WithUser(ctx, principal.UserID)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuth sends anonymous browsers to the sign-in page, preserving the
// requested URL so the flow can resume afterwards.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if PrincipalFromContext(r.Context()).IsAuthenticated() {
			next.ServeHTTP(w, r)
			return
		}

		target := SignInPath + "?" + url.Values{ReturnURLParam: {r.URL.RequestURI()}}.Encode()
		http.Redirect(w, r, target, http.StatusFound)
	})
}
