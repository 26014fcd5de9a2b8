package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Den-0786/ypg-website-sub003/internal/models"
	"github.com/Den-0786/ypg-website-sub003/internal/services"
	pkghttp "github.com/Den-0786/ypg-website-sub003/pkg/http"
	"github.com/stretchr/testify/assert"
)

// NewTestRequest creates an HTTP request with JSON body for testing
func NewTestRequest(t *testing.T, method, url string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// AssertJSONResponse checks that response has correct status and decodes JSON body
func AssertJSONResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target interface{}) {
	assert.Equal(t, expectedStatus, w.Code, "Response status mismatch")

	contentType := w.Header().Get("Content-Type")
	assert.Equal(t, "application/json", contentType, "Content-Type should be application/json")

	if target != nil {
		err := json.Unmarshal(w.Body.Bytes(), target)
		assert.NoError(t, err, "Failed to decode response JSON")
	}
}

// AssertErrorResponse checks that response is a valid error envelope
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedError string) {
	assert.Equal(t, expectedStatus, w.Code, "Response status mismatch")

	var resp pkghttp.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err, "Failed to decode error response")
	assert.False(t, resp.Success, "Error response success flag should be false")
	assert.Equal(t, expectedError, resp.Error, "Error message mismatch")
}

// MockLoginService implements LoginServiceInterface for testing
type MockLoginService struct {
	LoginFunc func(ctx context.Context, username, password, clientIP string) (*services.LoginResult, error)
}

func (m *MockLoginService) Login(ctx context.Context, username, password, clientIP string) (*services.LoginResult, error) {
	if m.LoginFunc == nil {
		return nil, models.ErrInvalidCredentials
	}
	return m.LoginFunc(ctx, username, password, clientIP)
}

// MockCredentialService implements CredentialServiceInterface for testing
type MockCredentialService struct {
	GetUsernameFunc       func(ctx context.Context) (string, error)
	UpdateCredentialsFunc func(ctx context.Context, clientIP, currentPassword, newUsername, newPassword string) error
}

func (m *MockCredentialService) GetUsername(ctx context.Context) (string, error) {
	if m.GetUsernameFunc == nil {
		return "", models.ErrNotConfigured
	}
	return m.GetUsernameFunc(ctx)
}

func (m *MockCredentialService) UpdateCredentials(ctx context.Context, clientIP, currentPassword, newUsername, newPassword string) error {
	if m.UpdateCredentialsFunc == nil {
		return models.ErrInvalidCredentials
	}
	return m.UpdateCredentialsFunc(ctx, clientIP, currentPassword, newUsername, newPassword)
}
