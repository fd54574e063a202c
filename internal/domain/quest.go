package domain

import "time"

// QuestType identifies one of the three quest state machines
type QuestType string

const (
	QuestTypeHabit QuestType = "HABIT" // repeatable, counter-based, no terminal state
	QuestTypeDaily QuestType = "DAILY" // recurs on a fixed weekday set, reset by maintenance
	QuestTypeTask  QuestType = "TASK"  // one-shot, optionally deadline-bound
)

// Difficulty is a quest's reward/penalty tier
type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
	DifficultyEpic   Difficulty = "EPIC"
)

// RewardProfile is the reward/penalty triple a difficulty tier defines
type RewardProfile struct {
	ExpReward     int `json:"exp_reward"`
	GoldReward    int `json:"gold_reward"`
	PenaltyDamage int `json:"penalty_damage"`
}

var difficultyTable = map[Difficulty]RewardProfile{
	DifficultyEasy:   {ExpReward: 10, GoldReward: 5, PenaltyDamage: 5},
	DifficultyMedium: {ExpReward: 25, GoldReward: 15, PenaltyDamage: 10},
	DifficultyHard:   {ExpReward: 50, GoldReward: 30, PenaltyDamage: 20},
	DifficultyEpic:   {ExpReward: 100, GoldReward: 60, PenaltyDamage: 35},
}

// Rewards returns the reward profile for the tier.
// Unknown tiers fall back to MEDIUM; callers validate difficulty at the edge.
func (d Difficulty) Rewards() RewardProfile {
	if p, ok := difficultyTable[d]; ok {
		return p
	}
	return difficultyTable[DifficultyMedium]
}

// Valid reports whether d is one of the four known tiers
func (d Difficulty) Valid() bool {
	_, ok := difficultyTable[d]
	return ok
}

// HabitState is the variant payload of a HABIT quest
type HabitState struct {
	// Counter counts increments minus decrements. It has no lower bound.
	Counter int `json:"counter"`
}

// DailyState is the variant payload of a DAILY quest
type DailyState struct {
	Weekdays  []time.Weekday `json:"weekdays"`
	LastReset time.Time      `json:"last_reset"`
}

// ActiveOn reports whether the daily recurs on the weekday of t
func (d DailyState) ActiveOn(t time.Time) bool {
	wd := t.Weekday()
	for _, day := range d.Weekdays {
		if day == wd {
			return true
		}
	}
	return false
}

// TaskState is the variant payload of a TASK quest
type TaskState struct {
	Deadline   *time.Time `json:"deadline,omitempty"`
	Overdue    bool       `json:"overdue"`
	AutoFailed bool       `json:"auto_failed"`
}

// Quest is a user-declared unit of work. Shared fields live on the struct;
// exactly one of Habit/Daily/Task is non-nil, matching Type.
type Quest struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Type        QuestType  `json:"type"`
	Difficulty  Difficulty `json:"difficulty"`
	Tags        []string   `json:"tags,omitempty"`

	// Rewards are copied from the difficulty tier at creation time
	ExpReward     int `json:"exp_reward"`
	GoldReward    int `json:"gold_reward"`
	PenaltyDamage int `json:"penalty_damage"`

	Completed bool      `json:"completed"`
	Failed    bool      `json:"failed"`
	CreatedAt time.Time `json:"created_at"`

	Habit *HabitState `json:"habit,omitempty"`
	Daily *DailyState `json:"daily,omitempty"`
	Task  *TaskState  `json:"task,omitempty"`
}

// IsActiveOn reports whether the quest is active on the day of t.
// Only dailies have an activity schedule; everything else is always active.
func (q Quest) IsActiveOn(t time.Time) bool {
	if q.Type != QuestTypeDaily || q.Daily == nil {
		return true
	}
	return q.Daily.ActiveOn(t)
}

// deadline returns the task deadline, if the quest has one
func (q Quest) deadline() *time.Time {
	if q.Type == QuestTypeTask && q.Task != nil {
		return q.Task.Deadline
	}
	return nil
}

// CanBeCompleted reports whether completing the quest at now is a valid
// transition. Deadlines are day-granular: the quest stays completable until
// the end of the deadline's calendar day.
func (q Quest) CanBeCompleted(now time.Time) bool {
	if q.Completed || q.Failed {
		return false
	}
	if dl := q.deadline(); dl != nil {
		return !DeadlinePassed(*dl, now)
	}
	return true
}

// CanBeFailed reports whether failing the quest at now is a valid transition
func (q Quest) CanBeFailed(now time.Time) bool {
	if q.Completed {
		return false
	}
	if dl := q.deadline(); dl != nil {
		return !DeadlinePassed(*dl, now)
	}
	return true
}

// NeedsReset reports whether a daily has not been reset since the start of
// the day containing now
func (q Quest) NeedsReset(now time.Time) bool {
	if q.Type != QuestTypeDaily || q.Daily == nil {
		return false
	}
	return IsNewDay(q.Daily.LastReset, now)
}

// DailyStatus is the server-computed display status of a daily quest
type DailyStatus string

const (
	DailyStatusInactive  DailyStatus = "inactive_today"
	DailyStatusCompleted DailyStatus = "completed"
	DailyStatusFailed    DailyStatus = "failed"
	DailyStatusPending   DailyStatus = "pending"
)

// StatusOn computes the daily display status for the day of t
func (q Quest) StatusOn(t time.Time) DailyStatus {
	switch {
	case !q.IsActiveOn(t):
		return DailyStatusInactive
	case q.Completed:
		return DailyStatusCompleted
	case q.Failed:
		return DailyStatusFailed
	default:
		return DailyStatusPending
	}
}
