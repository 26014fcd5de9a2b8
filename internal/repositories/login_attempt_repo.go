package repositories

import (
	"context"
	"time"

	"github.com/Den-0786/ypg-website-sub003/internal/database"
	"github.com/Den-0786/ypg-website-sub003/internal/models"
)

// LoginAttemptRepository handles database operations for the per-IP
// attempt ledger.
type LoginAttemptRepository struct {
	db *database.DB
}

// NewLoginAttemptRepository creates a new LoginAttemptRepository
func NewLoginAttemptRepository(db *database.DB) *LoginAttemptRepository {
	return &LoginAttemptRepository{db: db}
}

// Get returns the ledger record for an IP, or models.ErrNotFound.
func (r *LoginAttemptRepository) Get(ctx context.Context, ip string) (*models.LoginAttemptRecord, error) {
	query := `
		SELECT ip_address, attempt_count, last_attempt_at, is_locked, lockout_until
		FROM login_attempts
		WHERE ip_address = $1
	`

	var rec models.LoginAttemptRecord
	err := r.db.Pool.QueryRow(ctx, query, ip).Scan(
		&rec.IPAddress,
		&rec.AttemptCount,
		&rec.LastAttemptAt,
		&rec.IsLocked,
		&rec.LockoutUntil,
	)
	if err != nil {
		return nil, database.MapPostgresError(err)
	}

	return &rec, nil
}

// IncrementAttempt bumps the failure counter for an IP and returns the
// new count. The upsert is a single statement so two concurrent
// failures cannot lose an increment.
func (r *LoginAttemptRepository) IncrementAttempt(ctx context.Context, ip string, at time.Time) (int, error) {
	query := `
		INSERT INTO login_attempts (ip_address, attempt_count, last_attempt_at, is_locked)
		VALUES ($1, 1, $2, false)
		ON CONFLICT (ip_address) DO UPDATE
		SET attempt_count = login_attempts.attempt_count + 1,
		    last_attempt_at = $2
		RETURNING attempt_count
	`

	var count int
	if err := r.db.Pool.QueryRow(ctx, query, ip, at).Scan(&count); err != nil {
		return 0, database.MapPostgresError(err)
	}

	return count, nil
}

// SetLockout marks an IP as locked until the given time
func (r *LoginAttemptRepository) SetLockout(ctx context.Context, ip string, until time.Time) error {
	query := `
		UPDATE login_attempts
		SET is_locked = true, lockout_until = $2
		WHERE ip_address = $1
	`

	_, err := r.db.Pool.Exec(ctx, query, ip, until)
	return database.MapPostgresError(err)
}

// Delete removes the ledger record for an IP. Deleting an absent
// record is a no-op.
func (r *LoginAttemptRepository) Delete(ctx context.Context, ip string) error {
	query := `DELETE FROM login_attempts WHERE ip_address = $1`

	_, err := r.db.Pool.Exec(ctx, query, ip)
	return database.MapPostgresError(err)
}

// DeleteStale removes records whose lockout has lapsed and whose last
// activity is older than the cutoff. Read-time expiry stays the source
// of truth; this just keeps the table from growing without bound.
func (r *LoginAttemptRepository) DeleteStale(ctx context.Context, before time.Time) (int64, error) {
	query := `
		DELETE FROM login_attempts
		WHERE last_attempt_at < $1
		  AND (lockout_until IS NULL OR lockout_until <= CURRENT_TIMESTAMP)
	`

	tag, err := r.db.Pool.Exec(ctx, query, before)
	if err != nil {
		return 0, database.MapPostgresError(err)
	}

	return tag.RowsAffected(), nil
}
