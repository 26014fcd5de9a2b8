package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/Den-0786/ypg-website-sub003/internal/models"
	pkghttp "github.com/Den-0786/ypg-website-sub003/pkg/http"
)

// contextKey is a custom type for context keys
type contextKey string

// SessionContextKey is the key for storing session claims in context
const SessionContextKey contextKey = "admin_session"

// RequireAdmin validates the admin session and injects its claims into
// the request context. The token is taken from the session cookie,
// falling back to an Authorization bearer header for API clients.
func RequireAdmin(sm *SessionManager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, err := GetSessionCookie(r)
			if err != nil || tokenString == "" {
				tokenString = bearerToken(r)
			}
			if tokenString == "" {
				pkghttp.WriteUnauthorized(w, "Authentication required")
				return
			}

			claims, err := sm.ValidateSession(tokenString)
			if err != nil {
				pkghttp.WriteUnauthorized(w, "Invalid or expired session")
				return
			}

			ctx := context.WithValue(r.Context(), SessionContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext returns the session claims set by RequireAdmin,
// or nil if the request is unauthenticated.
func SessionFromContext(r *http.Request) *models.SessionClaims {
	claims, _ := r.Context().Value(SessionContextKey).(*models.SessionClaims)
	return claims
}

func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
