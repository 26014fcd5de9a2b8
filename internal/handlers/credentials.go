package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Den-0786/ypg-website-sub003/internal/models"
	pkghttp "github.com/Den-0786/ypg-website-sub003/pkg/http"
)

// CredentialServiceInterface defines the interface for credential management
type CredentialServiceInterface interface {
	GetUsername(ctx context.Context) (string, error)
	UpdateCredentials(ctx context.Context, clientIP, currentPassword, newUsername, newPassword string) error
}

// CredentialHandler handles the admin credential endpoints
type CredentialHandler struct {
	service CredentialServiceInterface
}

// NewCredentialHandler creates a new CredentialHandler
func NewCredentialHandler(service CredentialServiceInterface) *CredentialHandler {
	return &CredentialHandler{service: service}
}

// UpdateCredentialsRequest represents the request body for a credential rotation
type UpdateCredentialsRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewUsername     string `json:"newUsername"`
	NewPassword     string `json:"newPassword"`
}

// Get handles GET /api/auth/credentials
func (h *CredentialHandler) Get(w http.ResponseWriter, r *http.Request) {
	username, err := h.service.GetUsername(r.Context())
	if err != nil {
		if errors.Is(err, models.ErrNotConfigured) {
			pkghttp.WriteInternalError(w, "Admin credentials not configured")
			return
		}
		pkghttp.WriteInternalError(w, "Internal server error")
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"credentials": map[string]string{
			"username": username,
		},
	})
}

// Update handles PUT /api/auth/credentials
func (h *CredentialHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateCredentialsRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := ValidateRequest(req); err != nil {
		pkghttp.WriteBadRequest(w, "Current password is required")
		return
	}

	clientIP := pkghttp.ClientIP(r)

	err := h.service.UpdateCredentials(r.Context(), clientIP, req.CurrentPassword, req.NewUsername, req.NewPassword)
	if err != nil {
		h.writeUpdateError(w, err)
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Credentials updated successfully",
	})
}

func (h *CredentialHandler) writeUpdateError(w http.ResponseWriter, err error) {
	var vErr *models.ValidationError

	switch {
	case errors.Is(err, models.ErrInvalidCredentials):
		pkghttp.WriteBadRequest(w, "Current password is incorrect")
	case errors.As(err, &vErr):
		pkghttp.WriteBadRequest(w, vErr.Message)
	case errors.Is(err, models.ErrNotConfigured):
		pkghttp.WriteInternalError(w, "Admin credentials not configured")
	default:
		pkghttp.WriteInternalError(w, "Internal server error")
	}
}
