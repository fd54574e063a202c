package domain

import "time"

// Day-granularity time helpers. Every scheduling decision in the engine
// (daily resets, deadlines) works on calendar days in the time's location.

// StartOfDay returns midnight of the day containing t
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last instant of the day containing t
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// IsNewDay reports whether lastReset happened before the day containing now
func IsNewDay(lastReset, now time.Time) bool {
	return lastReset.Before(StartOfDay(now))
}

// DeadlinePassed reports whether the deadline's calendar day has fully
// elapsed at now. A deadline set anywhere within a day keeps the task alive
// until the end of that day.
func DeadlinePassed(deadline, now time.Time) bool {
	return now.After(EndOfDay(deadline))
}

// DaysUntilDeadline returns the number of calendar days left including today.
// Returns 0 once the deadline has passed.
func DaysUntilDeadline(deadline, now time.Time) int {
	end := EndOfDay(deadline)
	if now.After(end) {
		return 0
	}
	return int(end.Sub(now).Hours()/24) + 1
}
