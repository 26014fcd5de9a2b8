package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Den-0786/ypg-website-sub003/internal/auth"
)

func protectedHandler(t *testing.T, expectUsername string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.SessionFromContext(r)
		require.NotNil(t, claims, "claims should be injected into context")
		assert.Equal(t, expectUsername, claims.Username)
		w.WriteHeader(http.StatusOK)
	}
}

func TestRequireAdmin_AcceptsSessionCookie(t *testing.T) {
	sm := auth.NewSessionManager(testSecret, time.Hour)
	token, err := sm.IssueSession("admin", time.Now())
	require.NoError(t, err)

	handler := auth.RequireAdmin(sm)(protectedHandler(t, "admin"))

	req := httptest.NewRequest("GET", "/api/auth/credentials", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: token})
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdmin_AcceptsBearerToken(t *testing.T) {
	sm := auth.NewSessionManager(testSecret, time.Hour)
	token, err := sm.IssueSession("admin", time.Now())
	require.NoError(t, err)

	handler := auth.RequireAdmin(sm)(protectedHandler(t, "admin"))

	req := httptest.NewRequest("GET", "/api/auth/credentials", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdmin_RejectsMissingToken(t *testing.T) {
	sm := auth.NewSessionManager(testSecret, time.Hour)

	handler := auth.RequireAdmin(sm)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest("GET", "/api/auth/credentials", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdmin_RejectsExpiredSession(t *testing.T) {
	sm := auth.NewSessionManager(testSecret, time.Hour)
	token, err := sm.IssueSession("admin", time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	handler := auth.RequireAdmin(sm)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest("GET", "/api/auth/credentials", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: token})
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
