// Package maintenance implements the once-per-day sweep over a character's
// quests: dailies that were active yesterday and left unfinished cost their
// penalty, dailies active today get fresh flags, and deadline-bound tasks
// whose day has fully elapsed auto-fail.
//
// The sweep is a pure function of the snapshot it is handed. It accumulates
// every HP deduction against one character copy and returns the touched
// quests for the caller to persist in a single transaction.
package maintenance

import (
	"time"

	"github.com/hexlab-games/habitquest/internal/domain"
	"github.com/hexlab-games/habitquest/internal/progression"
)

// Result is the outcome of one maintenance pass
type Result struct {
	Character domain.Character
	// Touched holds every quest the sweep modified, ready to persist
	// alongside the character
	Touched []domain.Quest
	// PenaltiesApplied counts the missed dailies and expired tasks that
	// cost the character HP
	PenaltiesApplied int
}

// Run performs the daily sweep against the given snapshot. Quests that need
// no change are left out of the result. The sweep is idempotent per quest
// through the lastResetDate and autoFailed guards, so re-running it on its
// own output is a no-op.
func Run(c domain.Character, quests []domain.Quest, now time.Time) Result {
	res := Result{Character: c}

	today := domain.StartOfDay(now)
	yesterday := today.AddDate(0, 0, -1)

	for _, q := range quests {
		switch {
		case q.Daily != nil:
			if updated, penalized, changed := sweepDaily(q, today, yesterday); changed {
				if penalized {
					res.Character = progression.ApplyDamage(res.Character, q.PenaltyDamage)
					res.PenaltiesApplied++
				}
				res.Touched = append(res.Touched, updated)
			}
		case q.Task != nil:
			if updated, changed := sweepTask(q, now); changed {
				res.Character = progression.ApplyDamage(res.Character, q.PenaltyDamage)
				res.PenaltiesApplied++
				res.Touched = append(res.Touched, updated)
			}
		}
	}

	return res
}

// sweepDaily rolls one daily quest over the day boundary. A daily that was
// active yesterday and not completed is charged as missed; otherwise the
// flags are cleared only when the quest is active today.
func sweepDaily(q domain.Quest, today, yesterday time.Time) (domain.Quest, bool, bool) {
	state := *q.Daily
	if !state.LastReset.Before(today) {
		return q, false, false
	}

	missed := q.IsActiveOn(yesterday) && !q.Completed
	if missed {
		q.Completed = true
		q.Failed = true
	} else if q.IsActiveOn(today) {
		q.Completed = false
		q.Failed = false
	}

	state.LastReset = today
	q.Daily = &state
	return q, missed, true
}

// sweepTask auto-fails a deadline-bound task whose calendar day has fully
// elapsed. Already-completed or already-swept tasks are skipped.
func sweepTask(q domain.Quest, now time.Time) (domain.Quest, bool) {
	state := *q.Task
	if state.Deadline == nil || q.Completed || state.AutoFailed {
		return q, false
	}
	if !domain.DeadlinePassed(*state.Deadline, now) {
		return q, false
	}

	q.Completed = true
	q.Failed = true
	state.AutoFailed = true
	state.Overdue = true
	q.Task = &state
	return q, true
}
