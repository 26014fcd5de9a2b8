package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Den-0786/ypg-website-sub003/internal/auth"
	"github.com/Den-0786/ypg-website-sub003/internal/models"
	"github.com/Den-0786/ypg-website-sub003/internal/services"
	pkghttp "github.com/Den-0786/ypg-website-sub003/pkg/http"
)

// LoginServiceInterface defines the interface for the login flow
type LoginServiceInterface interface {
	Login(ctx context.Context, username, password, clientIP string) (*services.LoginResult, error)
}

// AuthHandler handles the admin login and logout endpoints
type AuthHandler struct {
	service LoginServiceInterface
	cookies auth.CookieConfig
	expiry  time.Duration
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service LoginServiceInterface, cookies auth.CookieConfig, sessionExpiry time.Duration) *AuthHandler {
	return &AuthHandler{
		service: service,
		cookies: cookies,
		expiry:  sessionExpiry,
	}
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginUser is the user payload inside a successful login response
type LoginUser struct {
	Username  string `json:"username"`
	LoginTime string `json:"loginTime"`
}

// LoginResponse is the success envelope the admin dashboard expects
type LoginResponse struct {
	Success bool      `json:"success"`
	User    LoginUser `json:"user"`
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := ValidateRequest(req); err != nil {
		pkghttp.WriteBadRequest(w, "Username and password are required")
		return
	}

	clientIP := pkghttp.ClientIP(r)

	result, err := h.service.Login(r.Context(), req.Username, req.Password, clientIP)
	if err != nil {
		h.writeLoginError(w, err)
		return
	}

	auth.SetSessionCookie(w, result.SessionToken, h.expiry, h.cookies)

	pkghttp.WriteJSON(w, http.StatusOK, LoginResponse{
		Success: true,
		User: LoginUser{
			Username:  result.Username,
			LoginTime: result.LoginTime.UTC().Format(time.RFC3339),
		},
	})
}

// Logout handles POST /api/auth/logout by clearing the session cookie
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	auth.ClearSessionCookie(w, h.cookies)
	pkghttp.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Logged out successfully",
	})
}

func (h *AuthHandler) writeLoginError(w http.ResponseWriter, err error) {
	var vErr *models.ValidationError
	var lockErr *models.LockoutError

	switch {
	case errors.As(err, &vErr):
		pkghttp.WriteBadRequest(w, vErr.Message)
	case errors.As(err, &lockErr):
		pkghttp.WriteTooManyRequests(w, lockErr.Message)
	case errors.Is(err, models.ErrInvalidCredentials):
		// Never reveal whether the username or the password was wrong.
		pkghttp.WriteUnauthorized(w, "Invalid credentials")
	case errors.Is(err, models.ErrNotConfigured):
		pkghttp.WriteInternalError(w, "Admin credentials not configured")
	default:
		pkghttp.WriteInternalError(w, "Internal server error")
	}
}
