package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Den-0786/ypg-website-sub003/internal/models"
	pkgauth "github.com/Den-0786/ypg-website-sub003/pkg/auth"
	pkglogger "github.com/Den-0786/ypg-website-sub003/pkg/logger"
)

// CredentialWriter extends CredentialStore with rotation
type CredentialWriter interface {
	CredentialStore
	Update(ctx context.Context, username, passwordHash string) error
}

// CredentialService exposes the admin credential to the settings
// screens: read the username, rotate username/password.
type CredentialService struct {
	repo        CredentialWriter
	logger      *slog.Logger
	auditLogger *pkglogger.AuditLogger
}

// NewCredentialService creates a new CredentialService
func NewCredentialService(repo CredentialWriter, logger *slog.Logger, auditLogger *pkglogger.AuditLogger) *CredentialService {
	return &CredentialService{
		repo:        repo,
		logger:      logger,
		auditLogger: auditLogger,
	}
}

// GetUsername returns the configured admin username. The hash never
// leaves the service layer.
func (s *CredentialService) GetUsername(ctx context.Context) (string, error) {
	cred, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return "", models.ErrNotConfigured
		}
		s.logger.Error("failed to load admin credential", slog.Any("error", err))
		return "", models.ErrInternalServer
	}
	return cred.Username, nil
}

// UpdateCredentials rotates the admin username and/or password after
// verifying the current password. Empty newUsername keeps the current
// one; empty newPassword keeps the current hash.
func (s *CredentialService) UpdateCredentials(ctx context.Context, clientIP, currentPassword, newUsername, newPassword string) error {
	if currentPassword == "" {
		return &models.ValidationError{Message: "Current password is required"}
	}
	if newUsername == "" && newPassword == "" {
		return &models.ValidationError{Message: "Nothing to update"}
	}

	cred, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.ErrNotConfigured
		}
		s.logger.Error("failed to load admin credential", slog.Any("error", err))
		return models.ErrInternalServer
	}

	if err := pkgauth.ComparePassword(cred.PasswordHash, currentPassword); err != nil {
		s.auditLogger.LogCredentialChange(clientIP, false)
		return models.ErrInvalidCredentials
	}

	username := cred.Username
	if newUsername != "" {
		username = newUsername
	}

	passwordHash := cred.PasswordHash
	if newPassword != "" {
		if err := pkgauth.ValidatePassword(newPassword); err != nil {
			return &models.ValidationError{Message: err.Error()}
		}
		passwordHash, err = pkgauth.HashPassword(newPassword)
		if err != nil {
			s.logger.Error("failed to hash new password", slog.Any("error", err))
			return models.ErrInternalServer
		}
	}

	if err := s.repo.Update(ctx, username, passwordHash); err != nil {
		s.logger.Error("failed to update admin credential", slog.Any("error", err))
		return models.ErrInternalServer
	}

	s.auditLogger.LogCredentialChange(clientIP, true)
	s.logger.Info("admin credentials updated")
	return nil
}
