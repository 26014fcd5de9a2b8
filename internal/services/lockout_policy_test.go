package services_test

import (
	"testing"
	"time"

	"github.com/Den-0786/ypg-website-sub003/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestLockoutDuration_Thresholds(t *testing.T) {
	cases := []struct {
		count int
		want  time.Duration
	}{
		{1, 0},
		{2, 0},
		{3, 5 * time.Minute},
		{4, 0},
		{5, 10 * time.Minute},
		{6, 0},
		{7, 0},
		{8, 0},
		{9, 24 * time.Hour},
		{10, 24 * time.Hour},
		{100, 24 * time.Hour},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, services.LockoutDuration(tc.count),
			"attempt count %d", tc.count)
	}
}

func TestLockoutDuration_ZeroAndNegative(t *testing.T) {
	assert.Equal(t, time.Duration(0), services.LockoutDuration(0))
	assert.Equal(t, time.Duration(0), services.LockoutDuration(-1))
}
