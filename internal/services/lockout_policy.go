package services

import "time"

// LockoutDuration maps a post-increment failed-attempt count to the
// lockout it triggers. Thresholds are exact matches, not ranges: counts
// 6-8 record the failure without imposing a fresh lock even though
// count 5 did. That gap is inherited from the original site and is kept
// as-is; don't smooth it into a monotonic table.
func LockoutDuration(attemptCount int) time.Duration {
	switch {
	case attemptCount >= 9:
		return 24 * time.Hour
	case attemptCount == 5:
		return 10 * time.Minute
	case attemptCount == 3:
		return 5 * time.Minute
	default:
		return 0
	}
}
