package models

import "time"

// LoginAttemptRecord is the per-IP failed-attempt ledger entry.
// One row per distinct client IP; deleted entirely on a successful
// login from that IP.
type LoginAttemptRecord struct {
	IPAddress     string     `db:"ip_address"`
	AttemptCount  int        `db:"attempt_count"`
	LastAttemptAt time.Time  `db:"last_attempt_at"`
	IsLocked      bool       `db:"is_locked"`
	LockoutUntil  *time.Time `db:"lockout_until"`
}

// LockoutStatus is the read-time view of an IP's lockout state.
// Expiry is evaluated against the clock, never the stored flag alone.
type LockoutStatus struct {
	Locked           bool
	RemainingMinutes int
}

// AttemptResult reports the outcome of recording a failed attempt.
type AttemptResult struct {
	AttemptCount   int
	ShouldLockout  bool
	LockoutMessage string
}
