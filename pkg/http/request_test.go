package http_test

import (
	"net/http/httptest"
	"testing"

	pkghttp "github.com/Den-0786/ypg-website-sub003/pkg/http"
	"github.com/stretchr/testify/assert"
)

func TestClientIP_XForwardedFor(t *testing.T) {
	req := httptest.NewRequest("POST", "/api/auth/login", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	req.RemoteAddr = "10.0.0.1:54321"

	assert.Equal(t, "203.0.113.7", pkghttp.ClientIP(req))
}

func TestClientIP_SkipsInvalidForwardedEntries(t *testing.T) {
	req := httptest.NewRequest("POST", "/api/auth/login", nil)
	req.Header.Set("X-Forwarded-For", "not-an-ip, 198.51.100.4")
	req.RemoteAddr = "10.0.0.1:54321"

	assert.Equal(t, "198.51.100.4", pkghttp.ClientIP(req))
}

func TestClientIP_XRealIP(t *testing.T) {
	req := httptest.NewRequest("POST", "/api/auth/login", nil)
	req.Header.Set("X-Real-IP", "198.51.100.9")
	req.RemoteAddr = "10.0.0.1:54321"

	assert.Equal(t, "198.51.100.9", pkghttp.ClientIP(req))
}

func TestClientIP_FallsBackToRemoteAddr(t *testing.T) {
	req := httptest.NewRequest("POST", "/api/auth/login", nil)
	req.RemoteAddr = "192.0.2.33:9999"

	assert.Equal(t, "192.0.2.33", pkghttp.ClientIP(req))
}

func TestClientIP_UnknownWhenNothingUsable(t *testing.T) {
	req := httptest.NewRequest("POST", "/api/auth/login", nil)
	req.RemoteAddr = "garbage"

	assert.Equal(t, pkghttp.UnknownIP, pkghttp.ClientIP(req))
}
