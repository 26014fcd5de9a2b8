package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Den-0786/ypg-website-sub003/internal/models"
)

func TestGetCredentials_ReturnsUsername(t *testing.T) {
	mock := &MockCredentialService{
		GetUsernameFunc: func(ctx context.Context) (string, error) {
			return "admin", nil
		},
	}
	handler := NewCredentialHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/credentials", nil)
	w := httptest.NewRecorder()
	handler.Get(w, req)

	var resp struct {
		Success     bool `json:"success"`
		Credentials struct {
			Username string `json:"username"`
		} `json:"credentials"`
	}
	AssertJSONResponse(t, w, http.StatusOK, &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, "admin", resp.Credentials.Username)
}

func TestGetCredentials_NotConfigured(t *testing.T) {
	handler := NewCredentialHandler(&MockCredentialService{})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/credentials", nil)
	w := httptest.NewRecorder()
	handler.Get(w, req)

	AssertErrorResponse(t, w, http.StatusInternalServerError, "Admin credentials not configured")
}

func TestUpdateCredentials_Success(t *testing.T) {
	var gotUsername, gotPassword string
	mock := &MockCredentialService{
		UpdateCredentialsFunc: func(ctx context.Context, clientIP, currentPassword, newUsername, newPassword string) error {
			gotUsername = newUsername
			gotPassword = newPassword
			assert.Equal(t, "old-pass1", currentPassword)
			return nil
		},
	}
	handler := NewCredentialHandler(mock)

	req := NewTestRequest(t, http.MethodPut, "/api/auth/credentials", UpdateCredentialsRequest{
		CurrentPassword: "old-pass1",
		NewUsername:     "steward",
		NewPassword:     "new-pass42",
	})
	w := httptest.NewRecorder()
	handler.Update(w, req)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	AssertJSONResponse(t, w, http.StatusOK, &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, "Credentials updated successfully", resp.Message)
	assert.Equal(t, "steward", gotUsername)
	assert.Equal(t, "new-pass42", gotPassword)
}

func TestUpdateCredentials_MissingCurrentPassword(t *testing.T) {
	called := false
	mock := &MockCredentialService{
		UpdateCredentialsFunc: func(ctx context.Context, clientIP, currentPassword, newUsername, newPassword string) error {
			called = true
			return nil
		},
	}
	handler := NewCredentialHandler(mock)

	req := NewTestRequest(t, http.MethodPut, "/api/auth/credentials", UpdateCredentialsRequest{
		NewUsername: "steward",
	})
	w := httptest.NewRecorder()
	handler.Update(w, req)

	AssertErrorResponse(t, w, http.StatusBadRequest, "Current password is required")
	assert.False(t, called)
}

func TestUpdateCredentials_WrongCurrentPassword(t *testing.T) {
	mock := &MockCredentialService{
		UpdateCredentialsFunc: func(ctx context.Context, clientIP, currentPassword, newUsername, newPassword string) error {
			return models.ErrInvalidCredentials
		},
	}
	handler := NewCredentialHandler(mock)

	req := NewTestRequest(t, http.MethodPut, "/api/auth/credentials", UpdateCredentialsRequest{
		CurrentPassword: "wrong-pass1",
		NewPassword:     "new-pass42",
	})
	w := httptest.NewRecorder()
	handler.Update(w, req)

	AssertErrorResponse(t, w, http.StatusBadRequest, "Current password is incorrect")
}

func TestUpdateCredentials_WeakNewPassword(t *testing.T) {
	mock := &MockCredentialService{
		UpdateCredentialsFunc: func(ctx context.Context, clientIP, currentPassword, newUsername, newPassword string) error {
			return &models.ValidationError{Message: "invalid password: must be at least 8 characters"}
		},
	}
	handler := NewCredentialHandler(mock)

	req := NewTestRequest(t, http.MethodPut, "/api/auth/credentials", UpdateCredentialsRequest{
		CurrentPassword: "old-pass1",
		NewPassword:     "short1",
	})
	w := httptest.NewRecorder()
	handler.Update(w, req)

	AssertErrorResponse(t, w, http.StatusBadRequest, "invalid password: must be at least 8 characters")
}

func TestUpdateCredentials_InvalidBody(t *testing.T) {
	handler := NewCredentialHandler(&MockCredentialService{})

	req := httptest.NewRequest(http.MethodPut, "/api/auth/credentials", nil)
	w := httptest.NewRecorder()
	handler.Update(w, req)

	AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid request body")
}
