package services

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"time"

	"github.com/Den-0786/ypg-website-sub003/internal/models"
	pkglogger "github.com/Den-0786/ypg-website-sub003/pkg/logger"
)

// AttemptLedgerRepository defines the interface for attempt ledger
// database operations
type AttemptLedgerRepository interface {
	Get(ctx context.Context, ip string) (*models.LoginAttemptRecord, error)
	IncrementAttempt(ctx context.Context, ip string, at time.Time) (int, error)
	SetLockout(ctx context.Context, ip string, until time.Time) error
	Delete(ctx context.Context, ip string) error
}

// LockoutService implements the per-IP lockout ledger: check, record,
// reset. Lockout expiry is evaluated at read time against the clock, so
// a stale is_locked flag on an expired record never keeps anyone out.
type LockoutService struct {
	repo        AttemptLedgerRepository
	logger      *slog.Logger
	auditLogger *pkglogger.AuditLogger
}

// NewLockoutService creates a new LockoutService
func NewLockoutService(repo AttemptLedgerRepository, logger *slog.Logger, auditLogger *pkglogger.AuditLogger) *LockoutService {
	return &LockoutService{
		repo:        repo,
		logger:      logger,
		auditLogger: auditLogger,
	}
}

// CheckLockout reports whether an IP is currently locked out and, if
// so, how many minutes remain (rounded up, never zero while locked).
// A lockout_until in the past or exactly now counts as expired even
// when is_locked is still set.
func (s *LockoutService) CheckLockout(ctx context.Context, ip string) (models.LockoutStatus, error) {
	rec, err := s.repo.Get(ctx, ip)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.LockoutStatus{Locked: false}, nil
		}
		return models.LockoutStatus{}, err
	}

	if !rec.IsLocked || rec.LockoutUntil == nil {
		return models.LockoutStatus{Locked: false}, nil
	}

	now := time.Now()
	if !rec.LockoutUntil.After(now) {
		return models.LockoutStatus{Locked: false}, nil
	}

	remaining := int(math.Ceil(rec.LockoutUntil.Sub(now).Minutes()))
	if remaining < 1 {
		remaining = 1
	}

	return models.LockoutStatus{Locked: true, RemainingMinutes: remaining}, nil
}

// RecordFailedAttempt increments the failure counter for an IP and
// imposes a lockout when the new count hits a policy threshold.
func (s *LockoutService) RecordFailedAttempt(ctx context.Context, ip string) (models.AttemptResult, error) {
	now := time.Now()

	count, err := s.repo.IncrementAttempt(ctx, ip, now)
	if err != nil {
		return models.AttemptResult{}, err
	}

	duration := LockoutDuration(count)
	if duration == 0 {
		return models.AttemptResult{AttemptCount: count}, nil
	}

	until := now.Add(duration)
	if err := s.repo.SetLockout(ctx, ip, until); err != nil {
		// The increment is already committed; report the lockout anyway
		// so the client sees a consistent rejection.
		s.logger.Error("failed to persist lockout",
			slog.String("ip_address", ip),
			slog.Any("error", err))
	}

	minutes := int(duration.Minutes())
	s.auditLogger.LogLockout(ip, count, minutes)

	return models.AttemptResult{
		AttemptCount:   count,
		ShouldLockout:  true,
		LockoutMessage: models.NewLockoutError(minutes).Message,
	}, nil
}

// ResetAttempts deletes the ledger record for an IP. Idempotent.
func (s *LockoutService) ResetAttempts(ctx context.Context, ip string) error {
	return s.repo.Delete(ctx, ip)
}
