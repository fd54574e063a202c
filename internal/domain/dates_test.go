package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartAndEndOfDay(t *testing.T) {
	now := time.Date(2025, 6, 4, 15, 42, 7, 123, time.UTC)

	start := StartOfDay(now)
	assert.Equal(t, time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC), start)

	end := EndOfDay(now)
	assert.True(t, end.After(now))
	assert.True(t, end.Before(start.AddDate(0, 0, 1)))
}

func TestIsNewDay(t *testing.T) {
	now := time.Date(2025, 6, 4, 8, 0, 0, 0, time.UTC)

	assert.True(t, IsNewDay(now.AddDate(0, 0, -1), now))
	assert.False(t, IsNewDay(StartOfDay(now), now))
	assert.False(t, IsNewDay(now.Add(-time.Hour), now))
}

func TestDeadlinePassed(t *testing.T) {
	deadline := time.Date(2025, 6, 4, 9, 0, 0, 0, time.UTC)

	// Alive for the whole deadline day, regardless of the deadline's clock time
	assert.False(t, DeadlinePassed(deadline, deadline.Add(10*time.Hour)))
	assert.True(t, DeadlinePassed(deadline, deadline.AddDate(0, 0, 1)))
}

func TestDaysUntilDeadline(t *testing.T) {
	now := time.Date(2025, 6, 4, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, DaysUntilDeadline(now, now), "deadline today counts as one day left")
	assert.Equal(t, 2, DaysUntilDeadline(now.AddDate(0, 0, 1), now))
	assert.Equal(t, 0, DaysUntilDeadline(now.AddDate(0, 0, -1), now))
}
