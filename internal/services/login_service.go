package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Den-0786/ypg-website-sub003/internal/auth"
	"github.com/Den-0786/ypg-website-sub003/internal/models"
	pkgauth "github.com/Den-0786/ypg-website-sub003/pkg/auth"
	pkglogger "github.com/Den-0786/ypg-website-sub003/pkg/logger"
)

// CredentialStore defines the interface for reading the singleton
// admin credential
type CredentialStore interface {
	Get(ctx context.Context) (*models.AdminCredential, error)
}

// AttemptLedger defines the interface the orchestrator uses to consult
// and mutate the per-IP lockout state
type AttemptLedger interface {
	CheckLockout(ctx context.Context, ip string) (models.LockoutStatus, error)
	RecordFailedAttempt(ctx context.Context, ip string) (models.AttemptResult, error)
	ResetAttempts(ctx context.Context, ip string) error
}

// LoginResult is returned on a successful login
type LoginResult struct {
	Username     string
	LoginTime    time.Time
	SessionToken string
}

// LoginService orchestrates a login request: lockout check, credential
// verification, attempt recording, reset on success.
type LoginService struct {
	creds       CredentialStore
	ledger      AttemptLedger
	sessions    *auth.SessionManager
	delay       *auth.TimingDelay
	logger      *slog.Logger
	auditLogger *pkglogger.AuditLogger
}

// NewLoginService creates a new LoginService
func NewLoginService(
	creds CredentialStore,
	ledger AttemptLedger,
	sessions *auth.SessionManager,
	delay *auth.TimingDelay,
	logger *slog.Logger,
	auditLogger *pkglogger.AuditLogger,
) *LoginService {
	return &LoginService{
		creds:       creds,
		ledger:      ledger,
		sessions:    sessions,
		delay:       delay,
		logger:      logger,
		auditLogger: auditLogger,
	}
}

// Login verifies the supplied credentials for the caller's IP.
//
// Error taxonomy, in evaluation order:
//   - *models.ValidationError: empty username or password; never
//     recorded as an attempt
//   - *models.LockoutError: active lockout for clientIP, carrying the
//     remaining wait; the lockout itself is not re-counted
//   - models.ErrNotConfigured: no admin credential provisioned
//   - models.ErrInvalidCredentials: username or password mismatch,
//     recorded in the ledger; deliberately does not say which
func (s *LoginService) Login(ctx context.Context, username, password, clientIP string) (*LoginResult, error) {
	if username == "" || password == "" {
		return nil, &models.ValidationError{Message: "Username and password are required"}
	}

	// Lockout check must complete before any credential work begins.
	status, err := s.ledger.CheckLockout(ctx, clientIP)
	if err != nil {
		// Fail open on a ledger read failure. A rejection is only ever
		// based on a read that actually completed.
		s.logger.Error("lockout check failed",
			slog.String("ip_address", clientIP),
			slog.Any("error", err))
	} else if status.Locked {
		s.auditLogger.LogAuthAttempt(pkglogger.AuditEvent{
			EventType:     "login_rejected",
			IPAddress:     clientIP,
			FailureReason: "locked_out",
			Success:       false,
		})
		return nil, models.NewLockoutError(status.RemainingMinutes)
	}

	cred, err := s.creds.Get(ctx)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			s.logger.Error("no admin credential provisioned")
			return nil, models.ErrNotConfigured
		}
		s.logger.Error("failed to load admin credential", slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	// Case-sensitive exact match. The failure reason is logged, never
	// surfaced; the client always sees the same generic error.
	if username != cred.Username {
		return nil, s.recordFailure(ctx, clientIP, "invalid_username")
	}

	if err := pkgauth.ComparePassword(cred.PasswordHash, password); err != nil {
		return nil, s.recordFailure(ctx, clientIP, "invalid_password")
	}

	loginTime := time.Now()

	token, err := s.sessions.IssueSession(cred.Username, loginTime)
	if err != nil {
		s.logger.Error("failed to issue session token", slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	// Best-effort: a reset failure must never block the success
	// response for an already-authenticated client.
	if err := s.ledger.ResetAttempts(ctx, clientIP); err != nil {
		s.logger.Warn("failed to reset login attempts",
			slog.String("ip_address", clientIP),
			slog.Any("error", err))
	}

	s.logger.Info("admin logged in", slog.String("ip_address", clientIP))
	s.auditLogger.LogAuthAttempt(pkglogger.AuditEvent{
		EventType: "login_success",
		IPAddress: clientIP,
		Success:   true,
	})

	return &LoginResult{
		Username:     cred.Username,
		LoginTime:    loginTime,
		SessionToken: token,
	}, nil
}

// recordFailure writes the failed attempt to the ledger and picks the
// client-facing error: a lockout message when a threshold was crossed,
// otherwise the generic credentials error. The ledger write completes
// before the error is returned.
func (s *LoginService) recordFailure(ctx context.Context, clientIP, reason string) error {
	result, err := s.ledger.RecordFailedAttempt(ctx, clientIP)
	if err != nil {
		// Recording failed; the client still gets the authentication
		// error rather than a server error.
		s.logger.Error("failed to record login attempt",
			slog.String("ip_address", clientIP),
			slog.Any("error", err))
	}

	s.auditLogger.LogAuthAttempt(pkglogger.AuditEvent{
		EventType:     "login_failed",
		IPAddress:     clientIP,
		FailureReason: reason,
		Success:       false,
		AttemptCount:  result.AttemptCount,
	})

	s.delay.Wait()

	if result.ShouldLockout {
		return &models.LockoutError{Message: result.LockoutMessage}
	}
	return models.ErrInvalidCredentials
}
