package logger

import (
	"context"
	"log/slog"
	"time"
)

// AuditEvent represents a security audit event
type AuditEvent struct {
	EventType     string
	IPAddress     string
	Success       bool
	FailureReason string
	AttemptCount  int
}

// AuditLogger provides audit logging for the admin login flow
type AuditLogger struct {
	logger *slog.Logger
}

// NewAuditLogger creates a new audit logger
func NewAuditLogger(logger *slog.Logger) *AuditLogger {
	return &AuditLogger{logger: logger}
}

// LogAuthAttempt logs the outcome of a login attempt
func (al *AuditLogger) LogAuthAttempt(event AuditEvent) {
	attrs := []slog.Attr{
		slog.String("audit_type", "auth"),
		slog.String("event_type", event.EventType),
		slog.Bool("success", event.Success),
		slog.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
	}

	if event.IPAddress != "" {
		attrs = append(attrs, slog.String("ip_address", event.IPAddress))
	}
	if event.FailureReason != "" {
		attrs = append(attrs, slog.String("failure_reason", event.FailureReason))
	}
	if event.AttemptCount > 0 {
		attrs = append(attrs, slog.Int("attempt_count", event.AttemptCount))
	}

	if event.Success {
		al.logger.LogAttrs(context.Background(), slog.LevelInfo, "audit", attrs...)
	} else {
		al.logger.LogAttrs(context.Background(), slog.LevelWarn, "audit", attrs...)
	}
}

// LogLockout logs a lockout being imposed on an IP
func (al *AuditLogger) LogLockout(ipAddress string, attemptCount, durationMinutes int) {
	al.logger.LogAttrs(context.Background(), slog.LevelWarn, "audit",
		slog.String("audit_type", "lockout"),
		slog.String("event_type", "lockout_imposed"),
		slog.String("ip_address", ipAddress),
		slog.Int("attempt_count", attemptCount),
		slog.Int("duration_minutes", durationMinutes),
		slog.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
	)
}

// LogCredentialChange logs admin credential rotation events
func (al *AuditLogger) LogCredentialChange(ipAddress string, success bool) {
	level := slog.LevelInfo
	if !success {
		level = slog.LevelWarn
	}
	al.logger.LogAttrs(context.Background(), level, "audit",
		slog.String("audit_type", "credentials"),
		slog.String("event_type", "credential_change"),
		slog.Bool("success", success),
		slog.String("ip_address", ipAddress),
		slog.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
	)
}
